package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/core/ports"
)

// AdvanceStatusResult is the advanced batch plus a warning for every order the
// receipt cascade could not update.
type AdvanceStatusResult struct {
	Batch    *transit.Batch
	Warnings []LinkageWarning
}

// AdvanceTransitStatusCommandHandler applies a lifecycle step to a batch.
//
// The batch row stays locked until commit. On the received step the batch's
// claims are released and each linked order is moved to its post-transit status
// inside its own savepoint; orders that cannot be moved are reported as
// warnings without undoing the batch transition.
type AdvanceTransitStatusCommandHandler struct {
	uowFactory AdvanceUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

func NewAdvanceTransitStatusCommandHandler(
	uowFactory AdvanceUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) AdvanceTransitStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AdvanceTransitStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "AdvanceTransitStatusCommandHandler"),
		now:        now,
	}
}

func (h *AdvanceTransitStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceTransitStatusCommand,
) (AdvanceStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceStatusResult{}, err
	}

	scope, err := access.Resolve(cmd.Identity(), cmd.RequestedTenant())
	if err != nil {
		return AdvanceStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AdvanceStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transitRepo := uow.TransitRepository()
	batch, err := transitRepo.GetForUpdate(ctx, cmd.BatchID(), scope)
	if err != nil {
		return AdvanceStatusResult{}, err
	}

	now := h.now().UTC()
	if err = batch.Advance(cmd.Status(), now); err != nil {
		return AdvanceStatusResult{}, err
	}
	if err = transitRepo.Update(ctx, batch); err != nil {
		return AdvanceStatusResult{}, err
	}

	entry, err := batch.RecordHistory(cmd.Identity().UserID, cmd.Location(), now)
	if err != nil {
		return AdvanceStatusResult{}, err
	}
	if err = transitRepo.AppendHistory(ctx, entry); err != nil {
		return AdvanceStatusResult{}, err
	}

	warnings := make([]LinkageWarning, 0)
	if batch.Status() == transit.Received {
		if warnings, err = h.receive(ctx, uow, batch, now); err != nil {
			return AdvanceStatusResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceStatusResult{}, err
	}

	h.logger.InfoContext(ctx, "transit batch advanced",
		"batchId", batch.ID().String(), "status", batch.Status().String(), "warnings", len(warnings))
	publishEvent(ctx, h.publisher, h.logger, ports.EventTransitStatusChanged, batch, cmd.Identity().UserID, now)

	return AdvanceStatusResult{Batch: batch, Warnings: warnings}, nil
}

// receive releases the batch's claims and cascades the receipt to its orders.
func (h *AdvanceTransitStatusCommandHandler) receive(
	ctx context.Context,
	uow AdvanceUoW,
	batch *transit.Batch,
	now time.Time,
) ([]LinkageWarning, error) {
	transitRepo := uow.TransitRepository()
	orderRepo := uow.OrderRepository()

	if err := transitRepo.ReleaseClaims(ctx, batch.ID()); err != nil {
		return nil, err
	}

	items, err := transitRepo.Items(ctx, batch.ID())
	if err != nil {
		return nil, err
	}

	warnings := make([]LinkageWarning, 0)
	for i, item := range items {
		savepoint := fmt.Sprintf("cascade_order_%d", i)
		if err = uow.SavePoint(ctx, savepoint); err != nil {
			return nil, err
		}

		cascadeErr := func() error {
			o, getErr := orderRepo.Get(ctx, item.OrderID())
			if getErr != nil {
				return getErr
			}
			if moveErr := batch.MovementType().Receive(o); moveErr != nil {
				return moveErr
			}
			return orderRepo.UpdateStatus(ctx, o, now)
		}()
		if cascadeErr == nil {
			continue
		}

		if err = uow.RollbackTo(ctx, savepoint); err != nil {
			return nil, err
		}
		warning := newLinkageWarning(item.OrderID(), cascadeErr)
		if warning.Reason == ReasonLinkFailed {
			warning.Reason = ReasonCascadeFailed
		}
		warnings = append(warnings, warning)
		h.logger.WarnContext(ctx, "order cascade skipped",
			"batchId", batch.ID().String(), "orderId", item.OrderID().String(),
			"reason", warning.Reason, "error", cascadeErr)
	}
	return warnings, nil
}
