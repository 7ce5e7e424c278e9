package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/IllustraDesign/ecommerce-3/auth"
	"github.com/IllustraDesign/ecommerce-3/middleware"
	"github.com/IllustraDesign/ecommerce-3/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", auth.RegisterHandler(db))
	r.POST("/auth/login", auth.LoginHandler(db))
	r.GET("/me", middleware.ValidateToken(db), auth.MeHandler(db))
	r.GET("/admin-only", middleware.ValidateToken(db), middleware.RequireAdmin,
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload gin.H) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	r := authRouter(db)

	w := postJSON(t, r, "/auth/register", gin.H{
		"email": "jane@example.com", "name": "Jane", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reg struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.NotEmpty(t, reg.AccessToken)
	require.Equal(t, "bearer", reg.TokenType)
	require.Equal(t, models.RoleCustomer, reg.User.Role)
	require.NotContains(t, w.Body.String(), "hunter22", "password material must never serialize")

	t.Run("duplicate email", func(t *testing.T) {
		w := postJSON(t, r, "/auth/register", gin.H{
			"email": "jane@example.com", "name": "Jane 2", "password": "other",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login with the right password", func(t *testing.T) {
		w := postJSON(t, r, "/auth/login", gin.H{"email": "jane@example.com", "password": "hunter22"})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("login with the wrong password", func(t *testing.T) {
		w := postJSON(t, r, "/auth/login", gin.H{"email": "jane@example.com", "password": "nope"})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("token resolves identity", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+reg.AccessToken)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var me models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
		require.Equal(t, reg.User.ID, me.ID)
	})

	t.Run("customer is not admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+reg.AccessToken)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMiddlewareRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	r := authRouter(db)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		user := models.User{Email: "ghost@example.com", Name: "Ghost"}
		require.NoError(t, db.Create(&user).Error)
		token, err := auth.CreateAccessToken(user.ID)
		require.NoError(t, err)
		require.NoError(t, db.Delete(&user).Error)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAdminRoleGate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	r := authRouter(db)

	hash, err := auth.HashPassword("DesignStudio@22")
	require.NoError(t, err)
	admin := models.User{Email: "admin@illustradesign.com", Name: "Admin", Role: models.RoleAdmin, HashedPassword: hash}
	require.NoError(t, db.Create(&admin).Error)

	token, err := auth.CreateAccessToken(admin.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
