package productcontroller

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/media"
	"github.com/IllustraDesign/ecommerce-3/models"
	"github.com/IllustraDesign/ecommerce-3/storage"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "products.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

type fakeObjectStore struct {
	bucket, region string
	putErr         error
	deleted        []string
	deleteErr      error
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	return f.putErr
}

func (f *fakeObjectStore) URLFor(key string) string {
	return storage.PublicURL(f.bucket, f.region, key)
}

func (f *fakeObjectStore) KeyFor(url string) (string, bool) {
	prefix := storage.PublicURL(f.bucket, f.region, "")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.deleteErr
}

func pngUpload(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", "image/png")
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestDeleteProductCleansUpStoredImages(t *testing.T) {
	db := openTestDB(t)
	store := &fakeObjectStore{bucket: "illustra-media", region: "ap-south-1"}

	product := models.Product{
		Title:      "Shirt",
		CategoryID: "cat",
		Price:      599,
		Images: []string{
			storage.PublicURL("illustra-media", "ap-south-1", "products/2026/08/28/abc_a.jpg"),
			"https://images.unsplash.com/photo-1521572163474",
			"data:image/jpeg;base64,AAAA",
		},
	}
	require.NoError(t, db.Create(&product).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/products/:id", DeleteProduct(db, store))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/"+product.ID, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"products/2026/08/28/abc_a.jpg"}, store.deleted,
		"only durable-store URLs get an object delete")

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteProductProceedsWhenCleanupFails(t *testing.T) {
	db := openTestDB(t)
	store := &fakeObjectStore{
		bucket: "illustra-media", region: "ap-south-1",
		deleteErr: context.DeadlineExceeded,
	}

	product := models.Product{
		Title:      "Shirt",
		CategoryID: "cat",
		Price:      599,
		Images:     []string{storage.PublicURL("illustra-media", "ap-south-1", "products/x.jpg")},
	}
	require.NoError(t, db.Create(&product).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/products/:id", DeleteProduct(db, store))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/"+product.ID, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "catalog delete proceeds despite cleanup failure")

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestDeleteProductNotFound(t *testing.T) {
	db := openTestDB(t)
	store := &fakeObjectStore{bucket: "b", region: "r"}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/products/:id", DeleteProduct(db, store))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/missing", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadImageHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("durable url", func(t *testing.T) {
		store := &fakeObjectStore{bucket: "illustra-media", region: "ap-south-1"}
		r := gin.New()
		r.POST("/upload-image", UploadImageHandler(media.NewIngestor(store)))

		body, contentType := pngUpload(t, "file", "design.png")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, strings.HasPrefix(resp["image_url"], "https://illustra-media.s3."))
	})

	t.Run("embedded url when store is down", func(t *testing.T) {
		store := &fakeObjectStore{bucket: "illustra-media", region: "ap-south-1", putErr: context.DeadlineExceeded}
		r := gin.New()
		r.POST("/upload-image", UploadImageHandler(media.NewIngestor(store)))

		body, contentType := pngUpload(t, "file", "design.png")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload-image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, "store failure must not surface to the caller")

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, strings.HasPrefix(resp["image_url"], "data:image/jpeg;base64,"))
	})

	t.Run("non-image is 400", func(t *testing.T) {
		store := &fakeObjectStore{bucket: "b", region: "r"}
		r := gin.New()
		r.POST("/upload-image", UploadImageHandler(media.NewIngestor(store)))

		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="notes.txt"`)
		hdr.Set("Content-Type", "text/plain")
		part, err := w.CreatePart(hdr)
		require.NoError(t, err)
		_, err = part.Write([]byte("not pixels"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/upload-image", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddProductImageHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	store := &fakeObjectStore{bucket: "illustra-media", region: "ap-south-1"}

	product := models.Product{Title: "Shirt", CategoryID: "cat", Price: 599}
	require.NoError(t, db.Create(&product).Error)

	r := gin.New()
	r.POST("/products/:id/add-image", AddProductImageHandler(db, media.NewIngestor(store)))

	t.Run("appends to image list", func(t *testing.T) {
		body, contentType := pngUpload(t, "file", "extra.png")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID+"/add-image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var persisted models.Product
		require.NoError(t, db.First(&persisted, "id = ?", product.ID).Error)
		require.Len(t, persisted.Images, 1)
		require.True(t, strings.HasPrefix(persisted.Images[0], "https://"))
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		body, contentType := pngUpload(t, "file", "extra.png")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/products/missing/add-image", body)
		req.Header.Set("Content-Type", contentType)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
