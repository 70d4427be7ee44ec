package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a complete order row. Orders are normally created by intake;
// this exists for seeding.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, errs.NewRepositoryError("get order", err)
	}

	return toDomain(dto)
}

// ListByStatus returns orders in scope with one of statuses, oldest first.
func (r *GormOrderRepository) ListByStatus(
	ctx context.Context,
	scope access.Scope,
	statuses []order.Status,
) ([]*order.Order, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	tx := r.db.WithContext(ctx).Where("status IN ?", names)
	if tenant, ok := scope.Tenant(); ok {
		tx = tx.Where("tenant_id = ?", tenant.String())
	}

	var dtos []OrderDTO
	if err := tx.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, errs.NewRepositoryError("list orders by status", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", dto.ID, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus writes the status column with a compare-and-set on the status
// the order was loaded with. Other columns are left untouched.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, at time.Time) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.StatusChanged() {
		return nil
	}

	id := aggregate.ID().Bytes()
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id, aggregate.LoadedStatus().String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		return errs.NewRepositoryError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errs.NewRepositoryError("update order status", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
		}
		return fmt.Errorf("%w: order %s is no longer %s",
			order.ErrStaleStatus, aggregate.Number(), aggregate.LoadedStatus())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}
