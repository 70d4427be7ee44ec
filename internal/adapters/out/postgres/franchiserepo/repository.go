// Package franchiserepo reads the franchise directory.
package franchiserepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics/internal/adapters/out/postgres/pgerr"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/transit"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FranchiseDTO is a row of franchises. The id is the tenant id. Branch codes
// are stored upper case and unique, since batch id prefixes are global.
type FranchiseDTO struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	Name       string `gorm:"type:varchar(255)"`
	BranchCode string `gorm:"type:varchar(8);not null;uniqueIndex"`
}

func (FranchiseDTO) TableName() string {
	return "franchises"
}

type GormFranchiseRepository struct {
	db *gorm.DB
}

func NewGormFranchiseRepository(db *gorm.DB) *GormFranchiseRepository {
	return &GormFranchiseRepository{db: db}
}

// BranchCode returns the stored code. A franchise without a row or with an
// empty code is reported as not found.
func (r *GormFranchiseRepository) BranchCode(ctx context.Context, tenant kernel.TenantID) (string, error) {
	if err := tenant.Validate(); err != nil {
		return "", err
	}

	var dto FranchiseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", tenant.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("franchiseId", tenant.String())
		}
		return "", errs.NewRepositoryError("get franchise", err)
	}

	code := strings.TrimSpace(dto.BranchCode)
	if code == "" {
		return "", errs.NewObjectNotFoundError("branchCode", tenant.String())
	}
	return code, nil
}

// Save inserts or replaces a franchise row. A branch code already held by
// another franchise is rejected, whatever its case.
func (r *GormFranchiseRepository) Save(ctx context.Context, tenant kernel.TenantID, name, branchCode string) error {
	if err := tenant.Validate(); err != nil {
		return err
	}
	code, err := transit.NormalizeBranchCode(branchCode)
	if err != nil {
		return err
	}

	dto := FranchiseDTO{ID: tenant.String(), Name: name, BranchCode: code}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "branch_code"}),
	}).Create(&dto).Error
	if pgerr.IsUniqueViolation(err) {
		return errs.NewValueIsInvalidErrorWithCause(
			"branchCode",
			fmt.Errorf("%q is already assigned to another franchise", code),
		)
	}
	if err != nil {
		return errs.NewRepositoryError("save franchise", err)
	}
	return nil
}
