package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IllustraDesign/ecommerce-3/models"
)

// ErrLineNotFound means no cart line matched the (id, owner) pair.
var ErrLineNotFound = errors.New("cart item not found")

type AddItemInput struct {
	ProductID      string `json:"product_id" form:"product_id" binding:"required"`
	Quantity       int    `json:"quantity" form:"quantity"`
	Size           string `json:"size" form:"size"`
	CustomImageURL string `json:"custom_image_url" form:"custom_image_url"`
}

// AddLine merges an addition into the user's cart. Lines are keyed by
// (user, product, size); a repeated add increments the existing line's
// quantity atomically at the database instead of read-modify-write, so two
// concurrent adds for the same key never lose an increment. Identity and
// added_at of an existing line are preserved.
func AddLine(db *gorm.DB, userID, productID, size string, quantity int, customImageURL string) (models.CartItem, error) {
	line := models.CartItem{
		UserID:         userID,
		ProductID:      productID,
		Size:           size,
		Quantity:       quantity,
		CustomImageURL: customImageURL,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(&line).Error
	if err != nil {
		return models.CartItem{}, err
	}

	// The insert value is stale after a conflict; read the merged row back.
	var merged models.CartItem
	err = db.Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		First(&merged).Error
	return merged, err
}

// UpdateQuantity overwrites a line's quantity, scoped to its owner. A
// non-positive quantity deletes the line instead of persisting it.
func UpdateQuantity(db *gorm.DB, lineID, userID string, quantity int) (models.CartItem, bool, error) {
	if quantity <= 0 {
		if err := RemoveLine(db, lineID, userID); err != nil {
			return models.CartItem{}, false, err
		}
		return models.CartItem{}, true, nil
	}

	res := db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Update("quantity", quantity)
	if res.Error != nil {
		return models.CartItem{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return models.CartItem{}, false, ErrLineNotFound
	}

	var line models.CartItem
	err := db.First(&line, "id = ?", lineID).Error
	return line, false, err
}

// RemoveLine deletes a line, scoped to its owner.
func RemoveLine(db *gorm.DB, lineID, userID string) error {
	res := db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// ListLines returns every line in the user's cart.
func ListLines(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := db.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

// POST /api/cart/items (form or JSON)
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
			return
		}

		line, err := AddLine(db, userID, input.ProductID, input.Size, input.Quantity, input.CustomImageURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, line)
	}
}

// GET /api/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		lines, err := ListLines(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// PUT /api/cart/:id — quantity from query param or JSON body; a quantity of
// zero or less removes the line.
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		lineID := c.Param("id")

		quantity, err := quantityFromRequest(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		line, removed, err := UpdateQuantity(db, lineID, userID, quantity)
		if errors.Is(err, ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if removed {
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// DELETE /api/cart/:id
func DeleteCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		lineID := c.Param("id")

		err := RemoveLine(db, lineID, userID)
		if errors.Is(err, ErrLineNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

func quantityFromRequest(c *gin.Context) (int, error) {
	if q := c.Query("quantity"); q != "" {
		return strconv.Atoi(q)
	}
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return 0, err
	}
	return *body.Quantity, nil
}
