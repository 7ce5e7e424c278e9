package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/IllustraDesign/ecommerce-3/controllers/admin"
	catalogControllers "github.com/IllustraDesign/ecommerce-3/controllers/catalog"
	heroControllers "github.com/IllustraDesign/ecommerce-3/controllers/hero"
	orderControllers "github.com/IllustraDesign/ecommerce-3/controllers/order"
	productControllers "github.com/IllustraDesign/ecommerce-3/controllers/product"
	"github.com/IllustraDesign/ecommerce-3/media"
	"github.com/IllustraDesign/ecommerce-3/middleware"
	"github.com/IllustraDesign/ecommerce-3/storage"
)

// SetupAdminRoutes registers catalog mutation, media ingestion and order
// administration. Everything here requires a valid token plus the admin role.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, store *storage.Client, ingestor *media.Ingestor) {
	admin := api.Group("")
	admin.Use(middleware.ValidateToken(db), middleware.RequireAdmin)
	{
		// ──────────────── Catalog ────────────────
		admin.POST("/categories", catalogControllers.CreateCategory(db))
		admin.POST("/subcategories", catalogControllers.CreateSubCategory(db))
		admin.POST("/sizes", catalogControllers.CreateSize(db))
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db, store))
		admin.GET("/products/export", productControllers.ExportProductsToExcel(db))

		// ──────────────── Media ────────────────
		admin.POST("/upload-image", productControllers.UploadImageHandler(ingestor))
		admin.POST("/products/:id/add-image", productControllers.AddProductImageHandler(db, ingestor))

		// ──────────────── Banners ────────────────
		admin.POST("/hero-images", heroControllers.CreateHeroImage(db))

		// ──────────────── Orders ────────────────
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		admin.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		// ──────────────── Dashboard ────────────────
		admin.GET("/dashboard/stats", adminController.DashboardStats(db))
	}
}
