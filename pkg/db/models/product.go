package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing with an optional sale price.
type Product struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU          string              `gorm:"column:sku;not null;uniqueIndex"`
	Title        string              `gorm:"column:title;not null"`
	Description  *string             `gorm:"column:description"`
	RegularPrice decimal.Decimal     `gorm:"column:regular_price;type:numeric(12,2);not null"`
	SalePrice    *decimal.Decimal    `gorm:"column:sale_price;type:numeric(12,2)"`
	IsActive     bool                `gorm:"column:is_active;not null;default:true"`
	Variations   []ProductVariation  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
