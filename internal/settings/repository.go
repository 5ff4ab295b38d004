package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/db/models"
)

// Repository persists named option rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Get loads a single option row by name.
func (r *Repository) Get(ctx context.Context, name string) (*models.Option, error) {
	var row models.Option
	if err := r.db.WithContext(ctx).First(&row, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert writes the option value, replacing any existing row.
func (r *Repository) Upsert(ctx context.Context, name, value string) error {
	row := models.Option{Name: name, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).
		Error
}
