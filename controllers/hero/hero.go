package heroControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/models"
)

type HeroImageInput struct {
	ImageURL string `json:"image_url" binding:"required"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	LinkURL  string `json:"link_url"`
}

// GET /api/hero-images — active banners only.
func GetHeroImages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var images []models.HeroImage
		if err := db.Where("is_active = ?", true).Limit(10).Find(&images).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hero images"})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// POST /api/hero-images (admin)
func CreateHeroImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HeroImageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		image := models.HeroImage{
			ImageURL: input.ImageURL,
			Title:    input.Title,
			Subtitle: input.Subtitle,
			LinkURL:  input.LinkURL,
			IsActive: true,
		}
		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hero image"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}
