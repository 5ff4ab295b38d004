package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/db/models"
)

// VariationDTO is the API shape of a product variation. Price carries the
// effective per-request price after the pricing pipeline ran.
type VariationDTO struct {
	ID           uuid.UUID `json:"id"`
	SKU          string    `json:"sku"`
	Label        string    `json:"label"`
	RegularPrice string    `json:"regular_price"`
	SalePrice    *string   `json:"sale_price,omitempty"`
	Price        string    `json:"price"`
	IsActive     bool      `json:"is_active"`
}

// ProductDTO is the API shape of a product.
type ProductDTO struct {
	ID           uuid.UUID      `json:"id"`
	SKU          string         `json:"sku"`
	Title        string         `json:"title"`
	Description  *string        `json:"description,omitempty"`
	RegularPrice string         `json:"regular_price"`
	SalePrice    *string        `json:"sale_price,omitempty"`
	Price        string         `json:"price"`
	PriceHTML    string         `json:"price_html"`
	IsActive     bool           `json:"is_active"`
	Variations   []VariationDTO `json:"variations,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ProductPage is one page of the storefront listing. NextCursor is empty on
// the last page.
type ProductPage struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// VariationInput holds the validated payload for a variation.
type VariationInput struct {
	SKU          string
	Label        string
	RegularPrice decimal.Decimal
	SalePrice    *decimal.Decimal
	IsActive     bool
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	SKU          string
	Title        string
	Description  *string
	RegularPrice decimal.Decimal
	SalePrice    *decimal.Decimal
	IsActive     bool
	Variations   []VariationInput
}

// UpdateProductInput holds optional mutation values for a product. A non-nil
// Variations slice replaces the existing set.
type UpdateProductInput struct {
	SKU          *string
	Title        *string
	Description  *string
	RegularPrice *decimal.Decimal
	SalePrice    *decimal.Decimal
	ClearSale    bool
	IsActive     *bool
	Variations   *[]VariationInput
}

func decString(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func decStringPtr(value *decimal.Decimal) *string {
	if value == nil {
		return nil
	}
	s := value.StringFixed(2)
	return &s
}

func baseProductDTO(product *models.Product) ProductDTO {
	return ProductDTO{
		ID:           product.ID,
		SKU:          product.SKU,
		Title:        product.Title,
		Description:  product.Description,
		RegularPrice: decString(product.RegularPrice),
		SalePrice:    decStringPtr(product.SalePrice),
		IsActive:     product.IsActive,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
}
