package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariation is a purchasable variant of a parent product. Variations
// carry their own prices and their own metadata rows.
type ProductVariation struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID    uuid.UUID        `gorm:"column:product_id;type:uuid;not null;index"`
	SKU          string           `gorm:"column:sku;not null;uniqueIndex"`
	Label        string           `gorm:"column:label;not null"`
	RegularPrice decimal.Decimal  `gorm:"column:regular_price;type:numeric(12,2);not null"`
	SalePrice    *decimal.Decimal `gorm:"column:sale_price;type:numeric(12,2)"`
	IsActive     bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
