package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tawonga-banda/pharmacy-pos/internal/api/middleware"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

var testKey = []byte("middleware-test-key")

func signToken(t *testing.T, key []byte, expiresAt time.Time) string {
	t.Helper()

	claims := &models.Claims{
		UserID:      1,
		Username:    "pharmacist",
		Name:        "Dr. James Banda",
		Role:        "Pharmacist",
		Permissions: []string{models.PermissionView, models.PermissionCheckout},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	assert.NoError(t, err)

	return token
}

func TestAuthenticate(t *testing.T) {

	authMiddleware := middleware.NewAuthMiddleware(testKey)

	t.Run("Valid Token Puts Claims In Context", func(t *testing.T) {
		// Arrange
		var captured *models.Claims

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = middleware.ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testKey, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, captured)
		assert.Equal(t, int64(1), captured.UserID)
		assert.Equal(t, "pharmacist", captured.Username)
	})

	t.Run("Missing Header", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong Signing Key", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, []byte("other-key"), time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		// Arrange
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testKey, time.Now().Add(-time.Hour)))
		rec := httptest.NewRecorder()

		// Act
		authMiddleware.Authenticate(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequirePermission(t *testing.T) {

	authMiddleware := middleware.NewAuthMiddleware(testKey)

	run := func(t *testing.T, permission string) *httptest.ResponseRecorder {
		t.Helper()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testKey, time.Now().Add(time.Hour)))
		rec := httptest.NewRecorder()

		authMiddleware.Authenticate(authMiddleware.RequirePermission(permission, next)).ServeHTTP(rec, req)

		return rec
	}

	t.Run("Granted", func(t *testing.T) {
		rec := run(t, models.PermissionCheckout)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Denied", func(t *testing.T) {
		rec := run(t, models.PermissionPrescribe)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("No Claims Is Unauthorized", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)
		rec := httptest.NewRecorder()

		authMiddleware.RequirePermission(models.PermissionCheckout, next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
