package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xyzcommerce/supplier-discount-backend/internal/metadata"
	"github.com/xyzcommerce/supplier-discount-backend/internal/pricing"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/currency"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/db/models"
	pkgerrors "github.com/xyzcommerce/supplier-discount-backend/pkg/errors"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/pagination"
)

// Service exposes the catalog: storefront reads priced through the pipeline
// hooks, plus the administrative product and discount operations.
type Service interface {
	ListProducts(ctx context.Context, params pagination.Params) (*ProductPage, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error)

	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	SetProductDiscount(ctx context.Context, productID uuid.UUID, rawPercent string) error
	ClearProductDiscount(ctx context.Context, productID uuid.UUID) error
	SetVariationDiscount(ctx context.Context, variationID uuid.UUID, rawPercent string) error
	ClearVariationDiscount(ctx context.Context, variationID uuid.UUID) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	meta     metadata.Service
	hooks    *pricing.Hooks
	currency *currency.Formatter
}

// NewService constructs the catalog service.
func NewService(repo *Repository, dbClient *db.Client, meta metadata.Service, hooks *pricing.Hooks, currencyFormatter *currency.Formatter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	if meta == nil {
		return nil, fmt.Errorf("metadata service required")
	}
	if hooks == nil {
		return nil, fmt.Errorf("pricing hooks required")
	}
	if currencyFormatter == nil {
		return nil, fmt.Errorf("currency formatter required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		meta:     meta,
		hooks:    hooks,
		currency: currencyFormatter,
	}, nil
}

// ListProducts returns one page of the active storefront listing with
// effective prices.
func (s *service) ListProducts(ctx context.Context, params pagination.Params) (*ProductPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	rows, err := s.repo.ListActiveProducts(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	page := &ProductPage{}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	page.Products = make([]ProductDTO, 0, len(rows))
	for i := range rows {
		page.Products = append(page.Products, s.priceProduct(ctx, &rows[i]))
	}
	if hasMore {
		last := rows[len(rows)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}
	return page, nil
}

// GetProduct returns the product detail with priced variations.
func (s *service) GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	dto := s.priceProduct(ctx, product)
	dto.Variations = s.priceVariations(ctx, product.Variations)
	return &dto, nil
}

// CreateProduct inserts a product with its variations.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	product := &models.Product{
		ID:           uuid.New(),
		SKU:          input.SKU,
		Title:        input.Title,
		Description:  input.Description,
		RegularPrice: input.RegularPrice,
		SalePrice:    input.SalePrice,
		IsActive:     input.IsActive,
		Variations:   buildVariations(uuid.Nil, input.Variations),
	}
	for i := range product.Variations {
		product.Variations[i].ProductID = product.ID
	}

	if _, err := s.repo.CreateProduct(ctx, product); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "sku already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return s.GetProduct(ctx, product.ID)
}

// UpdateProduct applies the provided mutations. A non-nil variation set
// replaces the existing variations and drops their stale metadata.
func (s *service) UpdateProduct(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if input.SKU != nil {
		product.SKU = *input.SKU
	}
	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.RegularPrice != nil {
		product.RegularPrice = *input.RegularPrice
	}
	if input.ClearSale {
		product.SalePrice = nil
	} else if input.SalePrice != nil {
		product.SalePrice = input.SalePrice
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	replacedIDs := make([]uuid.UUID, 0, len(product.Variations))
	for _, variation := range product.Variations {
		replacedIDs = append(replacedIDs, variation.ID)
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		variations := product.Variations
		product.Variations = nil
		if _, err := txRepo.UpdateProduct(ctx, product); err != nil {
			return err
		}
		product.Variations = variations

		if input.Variations == nil {
			return nil
		}
		if err := txRepo.DeleteMetaForOwner(ctx, replacedIDs...); err != nil {
			return err
		}
		return txRepo.ReplaceVariations(ctx, productID, buildVariations(productID, *input.Variations))
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "sku already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return s.GetProduct(ctx, productID)
}

// DeleteProduct removes the product, its variations, and their metadata.
func (s *service) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return err
	}

	ownerIDs := []uuid.UUID{product.ID}
	for _, variation := range product.Variations {
		ownerIDs = append(ownerIDs, variation.ID)
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.DeleteMetaForOwner(ctx, ownerIDs...); err != nil {
			return err
		}
		if err := txRepo.ReplaceVariations(ctx, productID, nil); err != nil {
			return err
		}
		return txRepo.DeleteProduct(ctx, productID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

// SetProductDiscount stores the supplier discount percent for the product.
func (s *service) SetProductDiscount(ctx context.Context, productID uuid.UUID, rawPercent string) error {
	if _, err := s.loadProduct(ctx, productID); err != nil {
		return err
	}
	return s.meta.SetDiscountPercent(ctx, productID, rawPercent)
}

// ClearProductDiscount removes the stored percent for the product.
func (s *service) ClearProductDiscount(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.loadProduct(ctx, productID); err != nil {
		return err
	}
	return s.meta.ClearDiscountPercent(ctx, productID)
}

// SetVariationDiscount stores the supplier discount percent for the variation.
func (s *service) SetVariationDiscount(ctx context.Context, variationID uuid.UUID, rawPercent string) error {
	if _, err := s.loadVariation(ctx, variationID); err != nil {
		return err
	}
	return s.meta.SetDiscountPercent(ctx, variationID, rawPercent)
}

// ClearVariationDiscount removes the stored percent for the variation.
func (s *service) ClearVariationDiscount(ctx context.Context, variationID uuid.UUID) error {
	if _, err := s.loadVariation(ctx, variationID); err != nil {
		return err
	}
	return s.meta.ClearDiscountPercent(ctx, variationID)
}

func (s *service) loadProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) loadVariation(ctx context.Context, variationID uuid.UUID) (*models.ProductVariation, error) {
	variation, err := s.repo.FindVariationByID(ctx, variationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load variation")
	}
	return variation, nil
}

// priceProduct renders the DTO with the effective price and markup after the
// pricing pipeline ran.
func (s *service) priceProduct(ctx context.Context, product *models.Product) ProductDTO {
	dto := baseProductDTO(product)

	subject := pricing.Subject{
		ID:           product.ID,
		RegularPrice: &product.RegularPrice,
		SalePrice:    product.SalePrice,
	}

	dto.SalePrice = decStringPtr(s.hooks.SalePrice(ctx, subject, product.SalePrice))

	current := product.RegularPrice
	if product.SalePrice != nil {
		current = *product.SalePrice
	}
	if price := s.hooks.ProductPrice(ctx, subject, &current); price != nil {
		dto.Price = decString(*price)
	}

	dto.PriceHTML = s.hooks.PriceHTML(ctx, subject, s.renderPriceHTML(product))
	return dto
}

// priceVariations runs the for-display variation map through the pipeline and
// renders the variation DTOs from it.
func (s *service) priceVariations(ctx context.Context, variations []models.ProductVariation) []VariationDTO {
	if len(variations) == 0 {
		return nil
	}

	subjects := make([]pricing.Subject, 0, len(variations))
	prices := make(map[uuid.UUID]decimal.Decimal, len(variations))
	for i := range variations {
		variation := &variations[i]
		subjects = append(subjects, pricing.Subject{
			ID:           variation.ID,
			RegularPrice: &variation.RegularPrice,
			SalePrice:    variation.SalePrice,
		})
		effective := variation.RegularPrice
		if variation.SalePrice != nil {
			effective = *variation.SalePrice
		}
		prices[variation.ID] = effective
	}
	prices = s.hooks.VariationPrices(ctx, subjects, prices)

	dtos := make([]VariationDTO, 0, len(variations))
	for i := range variations {
		variation := &variations[i]
		dtos = append(dtos, VariationDTO{
			ID:           variation.ID,
			SKU:          variation.SKU,
			Label:        variation.Label,
			RegularPrice: decString(variation.RegularPrice),
			SalePrice:    decStringPtr(variation.SalePrice),
			Price:        decString(prices[variation.ID]),
			IsActive:     variation.IsActive,
		})
	}
	return dtos
}

// renderPriceHTML is the unmodified markup: the plain price, or the sale pair
// when the product is on sale.
func (s *service) renderPriceHTML(product *models.Product) string {
	if product.SalePrice != nil {
		return fmt.Sprintf("<del>%s</del> <ins>%s</ins>",
			s.currency.Format(product.RegularPrice),
			s.currency.Format(*product.SalePrice),
		)
	}
	return s.currency.Format(product.RegularPrice)
}

func buildVariations(productID uuid.UUID, inputs []VariationInput) []models.ProductVariation {
	if len(inputs) == 0 {
		return nil
	}
	variations := make([]models.ProductVariation, 0, len(inputs))
	for _, input := range inputs {
		variations = append(variations, models.ProductVariation{
			ID:           uuid.New(),
			ProductID:    productID,
			SKU:          input.SKU,
			Label:        input.Label,
			RegularPrice: input.RegularPrice,
			SalePrice:    input.SalePrice,
			IsActive:     input.IsActive,
		})
	}
	return variations
}
