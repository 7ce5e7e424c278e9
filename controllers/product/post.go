package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/models"
)

type ProductInput struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	CategoryID     string   `json:"category_id" binding:"required"`
	SubCategoryID  string   `json:"subcategory_id"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	Sizes          []string `json:"sizes"`
	Images         []string `json:"images"`
	IsCustomizable bool     `json:"is_customizable"`
	Quantity       int      `json:"quantity"`
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Title:          input.Title,
			Description:    input.Description,
			CategoryID:     input.CategoryID,
			SubCategoryID:  input.SubCategoryID,
			Price:          input.Price,
			Sizes:          input.Sizes,
			Images:         input.Images,
			IsCustomizable: input.IsCustomizable,
			Quantity:       input.Quantity,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
