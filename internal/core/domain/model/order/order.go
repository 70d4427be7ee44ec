package order

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrStaleStatus is returned by status writes that lost a race with another writer.
	ErrStaleStatus = errors.New("order status was changed concurrently")
)

// Details are the descriptive order fields owned by the intake CRUD paths.
// The coordinator reads them for ranking and snapshots but never writes them.
type Details struct {
	Number       string
	CustomerName string
	Fulfillment  FulfillmentType
	Priority     Priority
	IsExpress    bool
	PickupDate   *time.Time
}

// Order is the coordinator's view of a customer order. Orders are created by
// intake outside this service, so the only constructor restores one from storage.
//
// Invariants:
//   - valid id and owning tenant
//   - non-empty tenant-scoped order number
//   - status, fulfillment and priority are members of their closed enumerations
//
// The status the order had when it was loaded is retained so the repository can
// write the new status with a compare-and-set against it.
type Order struct {
	id           kernel.UUID
	tenantID     kernel.TenantID
	status       Status
	loadedStatus Status
	details      Details

	isConstructed bool
}

// RestoreOrder rebuilds an order from persisted state, validating every field.
func RestoreOrder(id kernel.UUID, tenantID kernel.TenantID, status Status, details Details) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setStatus(status),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.loadedStatus = o.status
	return o, nil
}

// Validate ensures the Order instance was properly constructed through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TenantID() kernel.TenantID {
	return o.tenantID
}

// BelongsTo reports whether the order is owned by tenant.
func (o *Order) BelongsTo(tenant kernel.TenantID) bool {
	return o.tenantID.IsEqual(tenant)
}

func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus is the status the order had when it was restored.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// StatusChanged reports whether a transition happened since the order was loaded.
func (o *Order) StatusChanged() bool {
	return o.status != o.loadedStatus
}

func (o *Order) Number() string {
	return o.details.Number
}

func (o *Order) CustomerName() string {
	return o.details.CustomerName
}

func (o *Order) Fulfillment() FulfillmentType {
	return o.details.Fulfillment
}

func (o *Order) Priority() Priority {
	return o.details.Priority
}

// IsExpressOrder returns the raw express flag as captured at intake.
func (o *Order) IsExpressOrder() bool {
	return o.details.IsExpress
}

// IsExpedited is true for express orders and for high or urgent priority ones.
// Expedited orders rank ahead of all others in transit selection.
func (o *Order) IsExpedited() bool {
	return o.details.IsExpress || o.details.Priority.IsElevated()
}

// PickupDate returns a copy of the scheduled pickup date, or nil when unscheduled.
func (o *Order) PickupDate() *time.Time {
	if o.details.PickupDate == nil {
		return nil
	}
	d := *o.details.PickupDate
	return &d
}

// DispatchToFactory moves a pending order onto a to-factory batch.
func (o *Order) DispatchToFactory() error {
	return o.apply(o.status.DispatchToFactory)
}

// ReceiveAtFactory hands a travelling order over to factory processing.
func (o *Order) ReceiveAtFactory() error {
	return o.apply(o.status.ReceiveAtFactory)
}

// DispatchToStore moves a processed order onto a return-to-store batch.
func (o *Order) DispatchToStore() error {
	return o.apply(o.status.DispatchToStore)
}

// ReceiveAtStore makes a returned order available to the customer.
func (o *Order) ReceiveAtStore() error {
	return o.apply(o.status.ReceiveAtStore)
}

func (o *Order) apply(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTenantID(tenantID kernel.TenantID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(details Details) error {
	var numberErr error
	details.Number = strings.TrimSpace(details.Number)
	if details.Number == "" {
		numberErr = errs.NewValueIsRequiredError("order number")
	}
	if details.Priority == UnknownPriority {
		details.Priority = Normal
	}
	if err := errors.Join(numberErr, details.Fulfillment.Validate(), details.Priority.Validate()); err != nil {
		return err
	}
	if details.PickupDate != nil {
		d := *details.PickupDate
		details.PickupDate = &d
	}
	o.details = details
	return nil
}
