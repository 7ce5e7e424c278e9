package productcontroller

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/media"
	"github.com/IllustraDesign/ecommerce-3/models"
)

// POST /api/upload-image (admin; multipart "file", optional form "folder")
func UploadImageHandler(ingestor *media.Ingestor) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, filename, ok := readImageUpload(c)
		if !ok {
			return
		}

		folder := c.PostForm("folder")
		if folder == "" {
			folder = "products"
		}

		asset, err := ingestor.Ingest(c.Request.Context(), raw, filename, folder)
		if err != nil {
			respondIngestError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_url": asset.URL})
	}
}

// POST /api/products/:id/add-image (admin)
func AddProductImageHandler(db *gorm.DB, ingestor *media.Ingestor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		raw, filename, ok := readImageUpload(c)
		if !ok {
			return
		}

		asset, err := ingestor.Ingest(c.Request.Context(), raw, filename, "products")
		if err != nil {
			respondIngestError(c, err)
			return
		}

		product.Images = append(product.Images, asset.URL)
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_url": asset.URL, "message": "Image added to product"})
	}
}

func readImageUpload(c *gin.Context) (raw []byte, filename string, ok bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return nil, "", false
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return nil, "", false
	}

	raw, err = io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return nil, "", false
	}
	return raw, header.Filename, true
}

func respondIngestError(c *gin.Context, err error) {
	if errors.Is(err, media.ErrNotImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image processing failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
