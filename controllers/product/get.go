package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/models"
)

const defaultPageSize = 20

// GET /api/products?category_id=&subcategory_id=&search=&skip=&limit=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.Product{})

		if categoryID := c.Query("category_id"); categoryID != "" {
			q = q.Where("category_id = ?", categoryID)
		}
		if subCategoryID := c.Query("subcategory_id"); subCategoryID != "" {
			q = q.Where("subcategory_id = ?", subCategoryID)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + search + "%"
			q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
		}

		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			limit = defaultPageSize
		}

		var products []models.Product
		if err := q.Offset(skip).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
