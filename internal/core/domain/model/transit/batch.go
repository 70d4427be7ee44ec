package transit

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch was not created through
	// NewBatch or RestoreBatch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch constructor")
	ErrBatchIsNotActive      = errors.New("batch no longer accepts items")
)

// Metadata is the free-form logistics context captured when a batch is created.
type Metadata struct {
	VehicleInfo    map[string]any
	EmployeeInfo   map[string]any
	StoreDetails   map[string]any
	FactoryDetails map[string]any
}

// Batch is a logistics movement of one or more orders between a store and the
// factory. It is the aggregate root for its items and history.
//
// Invariants:
//   - the movement type is encoded in the id and never changes
//   - status only moves forward one step at a time (see Status.Advance)
//   - itemCount equals the number of attached items
//   - items are only attached while the batch is active
type Batch struct {
	id        ID
	tenantID  kernel.TenantID
	status    Status
	itemCount int
	metadata  Metadata
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewBatch creates a batch that is already in transit: creation and dispatch
// are a single step.
func NewBatch(id ID, tenantID kernel.TenantID, metadata Metadata, now time.Time) (*Batch, error) {
	b := &Batch{
		status:        InTransit,
		metadata:      metadata,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(b.setID(id), b.setTenantID(tenantID)); err != nil {
		return nil, err
	}
	return b, nil
}

// RestoreBatch rebuilds a batch from persisted state.
func RestoreBatch(
	id ID,
	tenantID kernel.TenantID,
	status Status,
	itemCount int,
	metadata Metadata,
	createdAt, updatedAt time.Time,
) (*Batch, error) {
	b := &Batch{
		metadata:      metadata,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	var countErr error
	if itemCount < 0 {
		countErr = errs.NewValueIsInvalidErrorWithCause("item count is invalid",
			fmt.Errorf("%d is negative", itemCount))
	}

	if err := errors.Join(b.setID(id), b.setTenantID(tenantID), status.Validate(), countErr); err != nil {
		return nil, err
	}
	b.status = status
	b.itemCount = itemCount
	return b, nil
}

func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

func (b *Batch) ID() ID {
	return b.id
}

func (b *Batch) TenantID() kernel.TenantID {
	return b.tenantID
}

func (b *Batch) MovementType() MovementType {
	return b.id.MovementType()
}

func (b *Batch) Status() Status {
	return b.status
}

func (b *Batch) IsActive() bool {
	return b.status.IsActive()
}

func (b *Batch) ItemCount() int {
	return b.itemCount
}

func (b *Batch) Metadata() Metadata {
	return b.metadata
}

func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Batch) UpdatedAt() time.Time {
	return b.updatedAt
}

// PrepareItem checks that o may travel with this batch, applies the
// direction's dispatch transition to o and returns the item snapshot.
// The batch itself is unchanged until AttachItem confirms the item.
func (b *Batch) PrepareItem(o *order.Order, now time.Time) (Item, error) {
	if err := o.Validate(); err != nil {
		return Item{}, err
	}
	if !b.IsActive() {
		return Item{}, fmt.Errorf("%w: %s is %s", ErrBatchIsNotActive, b.id, b.status)
	}
	if !o.BelongsTo(b.tenantID) {
		return Item{}, fmt.Errorf("%w: order %s is owned by %s, batch by %s",
			ErrForeignOrder, o.Number(), o.TenantID(), b.tenantID)
	}
	if err := b.MovementType().Dispatch(o); err != nil {
		return Item{}, err
	}

	return Item{
		batchID:      b.id,
		orderID:      o.ID(),
		orderNumber:  o.Number(),
		customerName: o.CustomerName(),
		linkedAt:     now,
	}, nil
}

// AttachItem counts a persisted item against the batch.
func (b *Batch) AttachItem(item Item) error {
	if !item.batchID.IsEqual(b.id) {
		return errs.NewValueIsInvalidErrorWithCause("item is invalid",
			fmt.Errorf("item belongs to %s, not %s", item.batchID, b.id))
	}
	if !b.IsActive() {
		return fmt.Errorf("%w: %s is %s", ErrBatchIsNotActive, b.id, b.status)
	}
	b.itemCount++
	return nil
}

// Advance moves the batch to next, which must directly follow the current status.
func (b *Batch) Advance(next Status, now time.Time) error {
	status, err := b.status.Advance(next)
	if err != nil {
		return err
	}
	b.status = status
	b.updatedAt = now
	return nil
}

// RecordHistory returns the audit entry for the batch's current status.
func (b *Batch) RecordHistory(actor string, location *string, at time.Time) (HistoryEntry, error) {
	return NewHistoryEntry(b.id, b.status, actor, location, at)
}

func (b *Batch) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	b.tenantID = tenantID
	return nil
}
