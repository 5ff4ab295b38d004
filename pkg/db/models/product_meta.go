package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductMeta is a key-value metadata row keyed by product or variation id.
// The supplier discount percentage lives here as decimal text under a fixed key.
type ProductMeta struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OwnerID   uuid.UUID `gorm:"column:owner_id;type:uuid;not null;uniqueIndex:idx_product_meta_owner_key"`
	MetaKey   string    `gorm:"column:meta_key;not null;uniqueIndex:idx_product_meta_owner_key"`
	MetaValue string    `gorm:"column:meta_value;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
