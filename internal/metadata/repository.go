package metadata

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/db/models"
)

// Repository persists per-product key-value metadata rows.
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

// Get loads the metadata row for the owner and key.
func (r *Repository) Get(ctx context.Context, ownerID uuid.UUID, key string) (*models.ProductMeta, error) {
	var row models.ProductMeta
	if err := r.db.WithContext(ctx).First(&row, "owner_id = ? AND meta_key = ?", ownerID, key).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert writes the value for the owner and key, replacing any existing row.
func (r *Repository) Upsert(ctx context.Context, ownerID uuid.UUID, key, value string) error {
	row := models.ProductMeta{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		MetaKey:   key,
		MetaValue: value,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "meta_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"meta_value", "updated_at"}),
		}).
		Create(&row).
		Error
}

// Delete removes the metadata row for the owner and key. Deleting a missing
// row is not an error.
func (r *Repository) Delete(ctx context.Context, ownerID uuid.UUID, key string) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND meta_key = ?", ownerID, key).
		Delete(&models.ProductMeta{}).
		Error
}
