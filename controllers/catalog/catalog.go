package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type SubCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  string `json:"category_id" binding:"required"`
	Description string `json:"description"`
}

type SizeInput struct {
	Name          string `json:"name" binding:"required"`
	CategoryID    string `json:"category_id" binding:"required"`
	SubCategoryID string `json:"subcategory_id"`
}

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /api/categories (admin)
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// GET /api/subcategories?category_id=
func GetSubCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.SubCategory{})
		if categoryID := c.Query("category_id"); categoryID != "" {
			q = q.Where("category_id = ?", categoryID)
		}

		var subcategories []models.SubCategory
		if err := q.Find(&subcategories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategories"})
			return
		}
		c.JSON(http.StatusOK, subcategories)
	}
}

// POST /api/subcategories (admin)
func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		subcategory := models.SubCategory{
			Name:        input.Name,
			CategoryID:  input.CategoryID,
			Description: input.Description,
		}
		if err := db.Create(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}
		c.JSON(http.StatusCreated, subcategory)
	}
}

// GET /api/sizes?category_id=
func GetSizes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := db.Model(&models.Size{})
		if categoryID := c.Query("category_id"); categoryID != "" {
			q = q.Where("category_id = ?", categoryID)
		}

		var sizes []models.Size
		if err := q.Find(&sizes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sizes"})
			return
		}
		c.JSON(http.StatusOK, sizes)
	}
}

// POST /api/sizes (admin)
func CreateSize(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		size := models.Size{
			Name:          input.Name,
			CategoryID:    input.CategoryID,
			SubCategoryID: input.SubCategoryID,
		}
		if err := db.Create(&size).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create size"})
			return
		}
		c.JSON(http.StatusCreated, size)
	}
}
