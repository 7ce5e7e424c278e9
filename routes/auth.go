package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/auth"
)

// SetupAuthRoutes registers registration and login, including the legacy
// un-prefixed aliases older clients still call.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db))

	// Backward compatibility
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db))
}
