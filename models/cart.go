package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one pending line in a user's cart. A user has at most one line
// per (product, size) pair; size is stored as "" when the product has no
// sizes so that absence is still part of the unique key.
type CartItem struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"uniqueIndex:idx_cart_line_key;not null" json:"user_id"`
	ProductID      string    `gorm:"uniqueIndex:idx_cart_line_key;not null" json:"product_id"`
	Size           string    `gorm:"uniqueIndex:idx_cart_line_key" json:"size,omitempty"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	CustomImageURL string    `json:"custom_image_url,omitempty"`
	AddedAt        time.Time `json:"added_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	if ci.AddedAt.IsZero() {
		ci.AddedAt = time.Now().UTC()
	}
	return nil
}
