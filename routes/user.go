package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/auth"
	adminController "github.com/IllustraDesign/ecommerce-3/controllers/admin"
	cartControllers "github.com/IllustraDesign/ecommerce-3/controllers/cart"
	catalogControllers "github.com/IllustraDesign/ecommerce-3/controllers/catalog"
	heroControllers "github.com/IllustraDesign/ecommerce-3/controllers/hero"
	orderControllers "github.com/IllustraDesign/ecommerce-3/controllers/order"
	paymentControllers "github.com/IllustraDesign/ecommerce-3/controllers/payment"
	productControllers "github.com/IllustraDesign/ecommerce-3/controllers/product"
	"github.com/IllustraDesign/ecommerce-3/middleware"
)

// SetupPublicRoutes registers the unauthenticated browse surface.
func SetupPublicRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/categories", catalogControllers.GetCategories(db))
	api.GET("/subcategories", catalogControllers.GetSubCategories(db))
	api.GET("/sizes", catalogControllers.GetSizes(db))
	api.GET("/products", productControllers.GetProducts(db))
	api.GET("/products/:id", productControllers.GetProductByID(db))
	api.GET("/hero-images", heroControllers.GetHeroImages(db))
	api.POST("/initialize-demo-data", adminController.InitializeDemoData(db))
}

// SetupUserRoutes registers everything a signed-in customer can do.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	user := api.Group("")
	user.Use(middleware.ValidateToken(db))
	{
		user.GET("/me", auth.MeHandler(db))

		// ──────────────── Shopping Cart ────────────────
		user.GET("/cart", cartControllers.GetCartHandler(db))
		user.POST("/cart", cartControllers.AddToCartHandler(db))
		user.POST("/cart/items", cartControllers.AddToCartHandler(db))
		user.PUT("/cart/:id", cartControllers.UpdateCartItemHandler(db))
		user.DELETE("/cart/:id", cartControllers.DeleteCartItemHandler(db))

		// ──────────────── Orders ────────────────
		user.GET("/orders", orderControllers.GetOrdersHandler(db))
		user.POST("/orders", orderControllers.PlaceOrderHandler(db))

		// ──────────────── Payments ────────────────
		user.POST("/create-razorpay-order", paymentControllers.CreateRazorpayOrder())
	}
}
