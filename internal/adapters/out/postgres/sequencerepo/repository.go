// Package sequencerepo stores the per tenant, year and movement batch counters.
package sequencerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO is a row of transit_sequences.
type SequenceDTO struct {
	TenantID     string `gorm:"type:varchar(64);primaryKey"`
	Year         int    `gorm:"primaryKey;autoIncrement:false"`
	MovementType string `gorm:"type:varchar(32);primaryKey"`
	Value        int    `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "transit_sequences"
}

// nextSQL creates or increments the counter and returns it in one statement.
const nextSQL = `
INSERT INTO transit_sequences (tenant_id, year, movement_type, value)
VALUES (?, ?, ?, 1)
ON CONFLICT (tenant_id, year, movement_type)
DO UPDATE SET value = transit_sequences.value + 1
RETURNING value`

type GormSequenceRepository struct {
	db *gorm.DB
}

func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

func (r *GormSequenceRepository) Next(
	ctx context.Context,
	tenant kernel.TenantID,
	year int,
	movement transit.MovementType,
) (int, error) {
	if err := errors.Join(tenant.Validate(), movement.Validate()); err != nil {
		return 0, err
	}
	if year < 1 || year > 9999 {
		return 0, errs.NewValueIsOutOfRangeError("year", year, 1, 9999)
	}

	var value int
	row := r.db.WithContext(ctx).Raw(nextSQL, tenant.String(), year, movement.String()).Row()
	if err := row.Scan(&value); err != nil {
		return 0, errs.NewRepositoryError("next transit sequence", err)
	}
	return value, nil
}
