package postgres

import (
	"logistics/internal/adapters/out/postgres/franchiserepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/sequencerepo"
	"logistics/internal/adapters/out/postgres/transitrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the coordinator.
func Models() []any {
	return []any{
		&franchiserepo.FranchiseDTO{},
		&orderrepo.OrderDTO{},
		&transitrepo.BatchDTO{},
		&transitrepo.ItemDTO{},
		&transitrepo.ClaimDTO{},
		&transitrepo.HistoryDTO{},
		&sequencerepo.SequenceDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
