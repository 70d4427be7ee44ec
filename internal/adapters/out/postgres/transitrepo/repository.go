package transitrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/access"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTransitRepository implements ports.TransitRepository using GORM.
type GormTransitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormTransitRepository(db *gorm.DB, tracker aggregateTracker) *GormTransitRepository {
	return &GormTransitRepository{db: db, tracker: tracker}
}

func (r *GormTransitRepository) Add(ctx context.Context, batch *transit.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := batchFromDomain(batch)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("add transit batch", err)
	}

	r.tracker.TrackAggregate(batch.ID().String(), batch)
	return nil
}

func (r *GormTransitRepository) Update(ctx context.Context, batch *transit.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&BatchDTO{}).
		Where("id = ?", batch.ID().String()).
		Updates(map[string]any{
			"status":     batch.Status().String(),
			"item_count": batch.ItemCount(),
			"updated_at": batch.UpdatedAt(),
		})
	if result.Error != nil {
		return errs.NewRepositoryError("update transit batch", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batchId", batch.ID().String())
	}

	r.tracker.TrackAggregate(batch.ID().String(), batch)
	return nil
}

func (r *GormTransitRepository) Get(ctx context.Context, id transit.ID, scope access.Scope) (*transit.Batch, error) {
	return r.get(ctx, r.db.WithContext(ctx), id, scope)
}

// GetForUpdate locks the batch row with SELECT ... FOR UPDATE.
func (r *GormTransitRepository) GetForUpdate(
	ctx context.Context,
	id transit.ID,
	scope access.Scope,
) (*transit.Batch, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id, scope)
}

func (r *GormTransitRepository) get(
	_ context.Context,
	tx *gorm.DB,
	id transit.ID,
	scope access.Scope,
) (*transit.Batch, error) {
	if err := errors.Join(id.Validate(), scope.Validate()); err != nil {
		return nil, err
	}

	query := tx.Where("id = ?", id.String())
	if tenant, ok := scope.Tenant(); ok {
		query = query.Where("tenant_id = ?", tenant.String())
	}

	var dto BatchDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batchId", id.String())
		}
		return nil, errs.NewRepositoryError("get transit batch", err)
	}

	return batchToDomain(dto)
}

func (r *GormTransitRepository) ClaimOrder(
	ctx context.Context,
	orderID kernel.UUID,
	batchID transit.ID,
	at time.Time,
) error {
	if err := errors.Join(orderID.Validate(), batchID.Validate()); err != nil {
		return err
	}

	claim := ClaimDTO{
		OrderID:   orderID.Bytes(),
		BatchID:   batchID.String(),
		ClaimedAt: at.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&claim).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return fmt.Errorf("%w: order %s", transit.ErrOrderAlreadyClaimed, orderID)
		}
		return errs.NewRepositoryError("claim order", err)
	}
	return nil
}

func (r *GormTransitRepository) ReleaseClaims(ctx context.Context, batchID transit.ID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("batch_id = ?", batchID.String()).Delete(&ClaimDTO{}).Error; err != nil {
		return errs.NewRepositoryError("release claims", err)
	}
	return nil
}

// ClaimedOrderIDs derives the active-claim set from items of active batches.
func (r *GormTransitRepository) ClaimedOrderIDs(ctx context.Context, scope access.Scope) ([]kernel.UUID, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	active := make([]string, 0, len(transit.ActiveStatuses()))
	for _, s := range transit.ActiveStatuses() {
		active = append(active, s.String())
	}

	query := r.db.WithContext(ctx).
		Table("transit_items AS i").
		Select("DISTINCT i.order_id").
		Joins("JOIN transit_batches AS b ON b.id = i.batch_id").
		Where("b.status IN ?", active)
	if tenant, ok := scope.Tenant(); ok {
		query = query.Where("b.tenant_id = ?", tenant.String())
	}

	var raw []uuid.UUID
	if err := query.Pluck("i.order_id", &raw).Error; err != nil {
		return nil, errs.NewRepositoryError("list claimed orders", err)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, orderID)
	}
	return ids, nil
}

func (r *GormTransitRepository) AddItem(ctx context.Context, item transit.Item) error {
	if err := errors.Join(item.BatchID().Validate(), item.OrderID().Validate()); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("add transit item", err)
	}
	return nil
}

func (r *GormTransitRepository) Items(ctx context.Context, batchID transit.ID) ([]transit.Item, error) {
	if err := batchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Where("batch_id = ?", batchID.String()).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewRepositoryError("list transit items", err)
	}

	items := make([]transit.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *GormTransitRepository) AppendHistory(ctx context.Context, entry transit.HistoryEntry) error {
	if err := errors.Join(entry.ID().Validate(), entry.BatchID().Validate(), entry.Status().Validate()); err != nil {
		return err
	}

	dto := historyFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("append status history", err)
	}
	return nil
}
