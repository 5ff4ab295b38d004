package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/db/models"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/pagination"
)

// Repository wires together product and variation persistence.
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

// CreateProduct inserts a new product row with its variations.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates an existing product row.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product by ID. Variations cascade.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error
}

// FindProductByID loads a product with its variations.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&product, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActiveProducts returns the storefront listing, newest first. A cursor
// resumes after the (created_at, id) pair of the previous page's last row.
func (r *Repository) ListActiveProducts(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("id DESC")
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.Product
	err := query.Find(&rows).Error
	return rows, err
}

// FindVariationByID loads a single variation row.
func (r *Repository) FindVariationByID(ctx context.Context, id uuid.UUID) (*models.ProductVariation, error) {
	var variation models.ProductVariation
	if err := r.db.WithContext(ctx).First(&variation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variation, nil
}

// ReplaceVariations replaces all variations of the product.
func (r *Repository) ReplaceVariations(ctx context.Context, productID uuid.UUID, variations []models.ProductVariation) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductVariation{}).Error; err != nil {
		return err
	}
	if len(variations) == 0 {
		return nil
	}
	return tx.Create(&variations).Error
}

// DeleteMetaForOwner removes all metadata rows keyed by the owner id. Used
// when a product or variation disappears so its discount does not linger.
func (r *Repository) DeleteMetaForOwner(ctx context.Context, ownerIDs ...uuid.UUID) error {
	if len(ownerIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Delete(&models.ProductMeta{}).
		Error
}
