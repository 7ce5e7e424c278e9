package productcontroller

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/models"
)

// ObjectRemover is the slice of storage.Client product deletion needs.
type ObjectRemover interface {
	KeyFor(url string) (string, bool)
	Delete(ctx context.Context, key string) error
}

// DELETE /api/products/:id (admin). Every image URL that points into the
// object store gets a best-effort object delete; failures are logged and the
// catalog record is removed regardless. Embedded data URIs have no object to
// clean up.
func DeleteProduct(db *gorm.DB, store ObjectRemover) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		for _, imageURL := range product.Images {
			key, ok := store.KeyFor(imageURL)
			if !ok {
				continue
			}
			if err := store.Delete(c.Request.Context(), key); err != nil {
				log.Printf("❌ Failed to delete stored image %s: %v", key, err)
				continue
			}
			log.Printf("🗑️ Deleted stored image: %s", key)
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
