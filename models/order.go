package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusCompleted  OrderStatus = "completed"
)

type Order struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	UserID         string      `gorm:"index;not null" json:"user_id"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount    float64     `json:"total_amount"`
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'preparing'" json:"status"`
	BillingAddress string      `json:"billing_address"`
	Phone          string      `json:"phone"`
	CreatedAt      time.Time   `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusPreparing
	}
	return nil
}

// OrderItem is an immutable snapshot of one cart line at checkout time.
// Price and title are copied from the product; later catalog edits never
// change a placed order.
type OrderItem struct {
	ID             string  `gorm:"primaryKey" json:"-"`
	OrderID        string  `gorm:"index" json:"-"`
	ProductID      string  `json:"product_id"`
	ProductTitle   string  `json:"product_title"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
	Size           string  `json:"size,omitempty"`
	CustomImageURL string  `json:"custom_image_url,omitempty"`
	Total          float64 `json:"total"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
