package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CreateBatchResult is the created batch, the items that made it onto the
// batch and a warning for every order that did not.
type CreateBatchResult struct {
	Batch    *transit.Batch
	Items    []transit.Item
	Warnings []LinkageWarning
}

// CreateTransitBatchCommandHandler creates a batch and links its orders in a
// single transaction.
//
// Each order is linked inside its own savepoint: load, ownership check, claim,
// item snapshot and compare-and-set status write. When any of these fail the
// savepoint is rolled back and the order is reported as a warning, so the
// batch never references a half-linked order. If no order could be linked the
// whole transaction is abandoned.
type CreateTransitBatchCommandHandler struct {
	uowFactory  CreateUoWFactory
	idGenerator services.TransitIDGenerator
	publisher   ports.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

func NewCreateTransitBatchCommandHandler(
	uowFactory CreateUoWFactory,
	idGenerator services.TransitIDGenerator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	now func() time.Time,
) CreateTransitBatchCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateTransitBatchCommandHandler{
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
		publisher:   publisher,
		logger:      logger.With("component", "CreateTransitBatchCommandHandler"),
		now:         now,
	}
}

func (h *CreateTransitBatchCommandHandler) Handle(
	ctx context.Context,
	cmd CreateTransitBatchCommand,
) (CreateBatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateBatchResult{}, err
	}

	scope, err := access.Resolve(cmd.Identity(), cmd.RequestedTenant())
	if err != nil {
		return CreateBatchResult{}, err
	}
	tenant, err := scope.TargetTenant()
	if err != nil {
		return CreateBatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateBatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := h.idGenerator.Next(ctx, uow.SequenceRepository(), uow.FranchiseRepository(), tenant, cmd.MovementType())
	if err != nil {
		return CreateBatchResult{}, err
	}

	now := h.now().UTC()
	batch, err := transit.NewBatch(id, tenant, cmd.Metadata(), now)
	if err != nil {
		return CreateBatchResult{}, err
	}

	transitRepo := uow.TransitRepository()
	if err = transitRepo.Add(ctx, batch); err != nil {
		return CreateBatchResult{}, err
	}

	var (
		items    = make([]transit.Item, 0, len(cmd.OrderIDs()))
		warnings = make([]LinkageWarning, 0)
	)
	for i, orderID := range cmd.OrderIDs() {
		savepoint := fmt.Sprintf("link_order_%d", i)
		if err = uow.SavePoint(ctx, savepoint); err != nil {
			return CreateBatchResult{}, err
		}

		item, linkErr := h.link(ctx, uow, batch, orderID, now)
		if linkErr != nil {
			if err = uow.RollbackTo(ctx, savepoint); err != nil {
				return CreateBatchResult{}, err
			}
			warning := newLinkageWarning(orderID, linkErr)
			warnings = append(warnings, warning)
			h.logger.WarnContext(ctx, "order skipped",
				"batchId", batch.ID().String(), "orderId", orderID.String(), "reason", warning.Reason, "error", linkErr)
			continue
		}
		items = append(items, item)
	}

	if batch.ItemCount() == 0 {
		return CreateBatchResult{}, NewNoOrdersLinkedError(warnings)
	}

	if err = transitRepo.Update(ctx, batch); err != nil {
		return CreateBatchResult{}, err
	}

	entry, err := batch.RecordHistory(cmd.Identity().UserID, nil, now)
	if err != nil {
		return CreateBatchResult{}, err
	}
	if err = transitRepo.AppendHistory(ctx, entry); err != nil {
		return CreateBatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateBatchResult{}, err
	}

	h.logger.InfoContext(ctx, "transit batch created",
		"batchId", batch.ID().String(), "franchiseId", tenant.String(),
		"items", batch.ItemCount(), "skipped", len(warnings))
	publishEvent(ctx, h.publisher, h.logger, ports.EventTransitCreated, batch, cmd.Identity().UserID, now)

	return CreateBatchResult{Batch: batch, Items: items, Warnings: warnings}, nil
}

func (h *CreateTransitBatchCommandHandler) link(
	ctx context.Context,
	uow CreateUoW,
	batch *transit.Batch,
	orderID kernel.UUID,
	now time.Time,
) (transit.Item, error) {
	orderRepo := uow.OrderRepository()
	transitRepo := uow.TransitRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return transit.Item{}, err
	}

	item, err := batch.PrepareItem(o, now)
	if err != nil {
		return transit.Item{}, err
	}
	if err = transitRepo.ClaimOrder(ctx, orderID, batch.ID(), now); err != nil {
		return transit.Item{}, err
	}
	if err = transitRepo.AddItem(ctx, item); err != nil {
		return transit.Item{}, err
	}
	if err = orderRepo.UpdateStatus(ctx, o, now); err != nil {
		return transit.Item{}, err
	}
	if err = batch.AttachItem(item); err != nil {
		return transit.Item{}, err
	}
	return item, nil
}

func publishEvent(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	eventType string,
	batch *transit.Batch,
	actor string,
	at time.Time,
) {
	if publisher == nil {
		return
	}
	event := ports.TransitEvent{
		Type:         eventType,
		BatchID:      batch.ID().String(),
		TenantID:     batch.TenantID().String(),
		MovementType: batch.MovementType().String(),
		Status:       batch.Status().String(),
		ItemCount:    batch.ItemCount(),
		Actor:        actor,
		OccurredAt:   at,
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish transit event",
			"type", eventType, "batchId", event.BatchID, "error", err)
	}
}
