package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAdvanceTransitStatusCommandIsNotConstructed = errors.New(
		"AdvanceTransitStatusCommand must be created via NewAdvanceTransitStatusCommand constructor",
	)
)

// AdvanceTransitStatusCommand moves a batch one step along its lifecycle.
// Location is optional and only recorded in the history entry.
type AdvanceTransitStatusCommand struct { //nolint:recvcheck //using for validation
	identity        access.Identity
	requestedTenant kernel.TenantID
	batchID         transit.ID
	status          transit.Status
	location        *string

	guard guard.ConstructorGuard
}

func NewAdvanceTransitStatusCommand(
	identity access.Identity,
	requestedTenant kernel.TenantID,
	batchID string,
	status string,
	location *string,
) (AdvanceTransitStatusCommand, error) {
	cmd := AdvanceTransitStatusCommand{
		identity:        identity,
		requestedTenant: requestedTenant,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setStatus(status),
		identity.Role.Validate(),
	); err != nil {
		return AdvanceTransitStatusCommand{}, err
	}

	if location != nil {
		if l := strings.TrimSpace(*location); l != "" {
			cmd.location = &l
		}
	}

	return cmd, nil
}

func (c AdvanceTransitStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceTransitStatusCommandIsNotConstructed)
}

func (c AdvanceTransitStatusCommand) Identity() access.Identity {
	return c.identity
}

func (c AdvanceTransitStatusCommand) RequestedTenant() kernel.TenantID {
	return c.requestedTenant
}

func (c AdvanceTransitStatusCommand) BatchID() transit.ID {
	return c.batchID
}

func (c AdvanceTransitStatusCommand) Status() transit.Status {
	return c.status
}

func (c AdvanceTransitStatusCommand) Location() *string {
	return c.location
}

func (c *AdvanceTransitStatusCommand) setBatchID(batchID string) error {
	id, err := transit.ParseID(batchID)
	if err != nil {
		// No batch can carry a malformed id.
		return errs.NewObjectNotFoundErrorWithCause("batchId", batchID, err)
	}
	c.batchID = id
	return nil
}

func (c *AdvanceTransitStatusCommand) setStatus(status string) error {
	s, err := transit.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}
