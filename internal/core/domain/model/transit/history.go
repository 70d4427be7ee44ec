package transit

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// HistoryEntry is one append-only record of a batch reaching a status.
type HistoryEntry struct {
	id         kernel.UUID
	batchID    ID
	status     Status
	actor      string
	location   *string
	recordedAt time.Time
}

// NewHistoryEntry creates an entry with a fresh id. An empty location is stored as nil.
func NewHistoryEntry(batchID ID, status Status, actor string, location *string, at time.Time) (HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), batchID, status, actor, location, at)
}

func RestoreHistoryEntry(
	id kernel.UUID,
	batchID ID,
	status Status,
	actor string,
	location *string,
	at time.Time,
) (HistoryEntry, error) {
	actor = strings.TrimSpace(actor)
	var actorErr error
	if actor == "" {
		actorErr = errs.NewValueIsRequiredError("actor")
	}
	if err := errors.Join(id.Validate(), batchID.Validate(), status.Validate(), actorErr); err != nil {
		return HistoryEntry{}, err
	}

	var loc *string
	if location != nil {
		if l := strings.TrimSpace(*location); l != "" {
			loc = &l
		}
	}

	return HistoryEntry{
		id:         id,
		batchID:    batchID,
		status:     status,
		actor:      actor,
		location:   loc,
		recordedAt: at,
	}, nil
}

func (h HistoryEntry) ID() kernel.UUID       { return h.id }
func (h HistoryEntry) BatchID() ID           { return h.batchID }
func (h HistoryEntry) Status() Status        { return h.status }
func (h HistoryEntry) Actor() string         { return h.actor }
func (h HistoryEntry) RecordedAt() time.Time { return h.recordedAt }

func (h HistoryEntry) Location() *string {
	if h.location == nil {
		return nil
	}
	l := *h.location
	return &l
}
