package transit

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// Item links one order to one batch. The order number and customer name are
// snapshots taken at link time and stay as they were even if the order changes.
type Item struct {
	batchID      ID
	orderID      kernel.UUID
	orderNumber  string
	customerName string
	linkedAt     time.Time
}

// RestoreItem rebuilds an item from persisted state.
func RestoreItem(batchID ID, orderID kernel.UUID, orderNumber, customerName string, linkedAt time.Time) (Item, error) {
	if err := errors.Join(batchID.Validate(), orderID.Validate()); err != nil {
		return Item{}, err
	}
	return Item{
		batchID:      batchID,
		orderID:      orderID,
		orderNumber:  orderNumber,
		customerName: customerName,
		linkedAt:     linkedAt,
	}, nil
}

func (i Item) BatchID() ID          { return i.batchID }
func (i Item) OrderID() kernel.UUID { return i.orderID }
func (i Item) OrderNumber() string  { return i.orderNumber }
func (i Item) CustomerName() string { return i.customerName }
func (i Item) LinkedAt() time.Time  { return i.linkedAt }
