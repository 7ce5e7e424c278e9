package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/media"
	"github.com/IllustraDesign/ecommerce-3/storage"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *storage.Client, ingestor *media.Ingestor) {
	api := r.Group("/api")

	// 1️⃣ Public routes (no middleware)
	SetupAuthRoutes(api, db)
	SetupPublicRoutes(api, db)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(api, db)

	// 3️⃣ Admin routes (JWT + role gate)
	SetupAdminRoutes(api, db, store, ingestor)
}
