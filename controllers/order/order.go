package orderControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/models"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderNotFound = errors.New("order not found")
)

type PlaceOrderInput struct {
	BillingAddress string `json:"billing_address" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// Checkout converts the user's cart into an immutable order. Product price
// and title are snapshotted at this moment; a cart line whose product has
// been deleted is skipped and does not appear in the order. Order creation
// and cart purge run in one transaction, so a failed order write leaves the
// cart intact and a crash mid-checkout is safe to retry.
func Checkout(db *gorm.DB, userID, billingAddress, phone string) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var items []models.OrderItem
		var total float64
		for _, line := range lines {
			var product models.Product
			err := tx.First(&product, "id = ?", line.ProductID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("❌ Skipping cart line %s: product %s no longer exists", line.ID, line.ProductID)
				continue
			}
			if err != nil {
				return err
			}

			lineTotal := product.Price * float64(line.Quantity)
			total += lineTotal
			items = append(items, models.OrderItem{
				ProductID:      product.ID,
				ProductTitle:   product.Title,
				Quantity:       line.Quantity,
				Price:          product.Price,
				Size:           line.Size,
				CustomImageURL: line.CustomImageURL,
				Total:          lineTotal,
			})
		}

		order = models.Order{
			UserID:         userID,
			Items:          items,
			TotalAmount:    total,
			Status:         models.OrderStatusPreparing,
			BillingAddress: billingAddress,
			Phone:          phone,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Purge only after the order row is in; never the other way round.
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus sets an order's status to one of the three named states.
func UpdateStatus(db *gorm.DB, orderID string, status string) (models.Order, error) {
	st, err := mapOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}

	res := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", st)
	if res.Error != nil {
		return models.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Order{}, ErrOrderNotFound
	}

	var order models.Order
	err = db.Preload("Items").First(&order, "id = ?", orderID).Error
	return order, err
}

// ListOrders returns every order for admins, the caller's own otherwise.
func ListOrders(db *gorm.DB, userID, role string) ([]models.Order, error) {
	q := db.Preload("Items").Order("created_at DESC")
	if role != models.RoleAdmin {
		q = q.Where("user_id = ?", userID)
	}
	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPreparing, models.OrderStatusDispatched, models.OrderStatusCompleted:
		return models.OrderStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := Checkout(db, userID, input.BillingAddress, input.Phone)
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := c.GetString("user_role")

		orders, err := ListOrders(db, userID, role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/:id/status (admin)
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := UpdateStatus(db, c.Param("id"), input.Status)
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrder(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
