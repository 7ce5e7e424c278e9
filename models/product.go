package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	CategoryID     string    `gorm:"index;not null" json:"category_id"`
	SubCategoryID  string    `gorm:"index" json:"subcategory_id,omitempty"`
	Price          float64   `gorm:"not null" json:"price"`
	Sizes          []string  `gorm:"serializer:json" json:"sizes"`
	Images         []string  `gorm:"serializer:json" json:"images"`
	IsCustomizable bool      `json:"is_customizable"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
