package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/auth"
	"github.com/IllustraDesign/ecommerce-3/models"
)

// POST /api/initialize-demo-data — idempotent storefront seed: an admin
// account, the category tree, clothing sizes, two sample products and the
// hero banners.
func InitializeDemoData(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := seedDemoData(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize demo data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Demo data initialized successfully"})
	}
}

func seedDemoData(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}

	categories := []models.Category{
		{Name: "Clothing", Description: "Custom printed clothing items"},
		{Name: "Mugs", Description: "Personalized mugs and drinkware"},
		{Name: "Business Cards", Description: "Professional business cards"},
		{Name: "Posters", Description: "Custom posters and prints"},
		{Name: "Accessories", Description: "Custom accessories and more"},
	}
	for i := range categories {
		if err := db.Where(models.Category{Name: categories[i].Name}).
			FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}

	var clothing models.Category
	if err := db.Where("name = ?", "Clothing").First(&clothing).Error; err != nil {
		return err
	}

	subcategories := []models.SubCategory{
		{Name: "T-Shirts", CategoryID: clothing.ID},
		{Name: "Hoodies", CategoryID: clothing.ID},
		{Name: "Kids Wear", CategoryID: clothing.ID},
	}
	for i := range subcategories {
		if err := db.Where(models.SubCategory{Name: subcategories[i].Name, CategoryID: clothing.ID}).
			FirstOrCreate(&subcategories[i]).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"S", "M", "L", "XL", "XXL"} {
		size := models.Size{Name: name, CategoryID: clothing.ID}
		if err := db.Where(models.Size{Name: name, CategoryID: clothing.ID}).
			FirstOrCreate(&size).Error; err != nil {
			return err
		}
	}

	var tshirts models.SubCategory
	if err := db.Where("name = ? AND category_id = ?", "T-Shirts", clothing.ID).
		First(&tshirts).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Title:          "Custom Cotton T-Shirt",
			Description:    "High-quality cotton t-shirt perfect for custom printing. Comfortable fit and durable material.",
			CategoryID:     clothing.ID,
			SubCategoryID:  tshirts.ID,
			Price:          599.0,
			Sizes:          []string{"S", "M", "L", "XL"},
			Images:         []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab"},
			IsCustomizable: true,
			Quantity:       100,
		},
		{
			Title:          "Premium Design T-Shirt",
			Description:    "Premium quality t-shirt with pre-designed graphics. Perfect for casual wear.",
			CategoryID:     clothing.ID,
			SubCategoryID:  tshirts.ID,
			Price:          799.0,
			Sizes:          []string{"S", "M", "L", "XL"},
			Images:         []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab"},
			IsCustomizable: false,
			Quantity:       50,
		},
	}
	for i := range products {
		var existing models.Product
		err := db.Where("title = ?", products[i].Title).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&products[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	heroes := []models.HeroImage{
		{
			ImageURL: "https://images.unsplash.com/photo-1503694978374-8a2fa686963a",
			Title:    "Custom Printing Excellence",
			Subtitle: "Design Your Dreams Into Reality",
			LinkURL:  "/products",
			IsActive: true,
		},
		{
			ImageURL: "https://images.pexels.com/photos/9324380/pexels-photo-9324380.jpeg",
			Title:    "Personalized Products",
			Subtitle: "Made Just For You",
			LinkURL:  "/products",
			IsActive: true,
		},
	}
	for i := range heroes {
		var existing models.HeroImage
		err := db.Where("image_url = ?", heroes[i].ImageURL).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&heroes[i]).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	return nil
}

func seedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", "admin@illustradesign.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("DesignStudio@22")
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		Email:          "admin@illustradesign.com",
		Name:           "Admin User",
		Role:           models.RoleAdmin,
		HashedPassword: hash,
	}).Error
}
