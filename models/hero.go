package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeroImage is a storefront banner. ImageURL is opaque: either a durable
// object store URL or a self-contained data URI.
type HeroImage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Title     string    `json:"title,omitempty"`
	Subtitle  string    `json:"subtitle,omitempty"`
	LinkURL   string    `json:"link_url,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *HeroImage) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
