package commands

import (
	"errors"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateTransitBatchCommandIsNotConstructed = errors.New(
		"CreateTransitBatchCommand must be created via NewCreateTransitBatchCommand constructor",
	)
)

// CreateTransitBatchCommand asks for a new batch carrying orderIDs in one direction.
//
// Example:
//
//	cmd, err := NewCreateTransitBatchCommand(identity, kernel.TenantID{}, "to_factory", orderIDs, metadata)
//	if err != nil {
//	    return fmt.Errorf("invalid batch request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateTransitBatchCommand struct { //nolint:recvcheck //using for validation
	identity        access.Identity
	requestedTenant kernel.TenantID
	movement        transit.MovementType
	orderIDs        []kernel.UUID
	metadata        transit.Metadata

	guard guard.ConstructorGuard
}

// NewCreateTransitBatchCommand validates the request. Duplicate order ids are
// collapsed, keeping the first occurrence. requestedTenant may be zero.
func NewCreateTransitBatchCommand(
	identity access.Identity,
	requestedTenant kernel.TenantID,
	direction string,
	orderIDs []kernel.UUID,
	metadata transit.Metadata,
) (CreateTransitBatchCommand, error) {
	cmd := CreateTransitBatchCommand{
		identity:        identity,
		requestedTenant: requestedTenant,
		metadata:        metadata,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMovement(direction),
		cmd.setOrderIDs(orderIDs),
		identity.Role.Validate(),
	); err != nil {
		return CreateTransitBatchCommand{}, err
	}

	return cmd, nil
}

func (c CreateTransitBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransitBatchCommandIsNotConstructed)
}

func (c CreateTransitBatchCommand) Identity() access.Identity {
	return c.identity
}

func (c CreateTransitBatchCommand) RequestedTenant() kernel.TenantID {
	return c.requestedTenant
}

func (c CreateTransitBatchCommand) MovementType() transit.MovementType {
	return c.movement
}

// OrderIDs returns the de-duplicated ids in request order.
func (c CreateTransitBatchCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func (c CreateTransitBatchCommand) Metadata() transit.Metadata {
	return c.metadata
}

func (c *CreateTransitBatchCommand) setMovement(direction string) error {
	movement, err := transit.ParseMovementType(direction)
	if err != nil {
		return err
	}
	c.movement = movement
	return nil
}

func (c *CreateTransitBatchCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}

	seen := make(map[string]struct{}, len(orderIDs))
	unique := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		unique = append(unique, id)
	}

	c.orderIDs = unique
	return nil
}
