package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tawonga-banda/pharmacy-pos/internal/api/handlers"
	appErrors "github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
	"github.com/tawonga-banda/pharmacy-pos/internal/services/mocks"
	"github.com/tawonga-banda/pharmacy-pos/internal/testutils"
)

func TestCheckoutHandler(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		receipt := &models.Receipt{
			ID:          uuid.New(),
			Timestamp:   time.Now(),
			Cashier:     "Dr. James Banda",
			CashierRole: "Pharmacist",
			Subtotal:    14500,
		}
		result := &service.CheckoutResult{Receipt: receipt, Rendered: receipt.Render()}
		mockService.On("Checkout", mock.Anything, mock.AnythingOfType("*models.Claims")).Return(result, nil)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", nil, testutils.DefaultClaims(), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Contains(t, data["rendered"], "PHARMACY RECEIPT")
		assert.Contains(t, data["rendered"], "SUBTOTAL: MK14,500.00")

		mockService.AssertExpectations(t)
	})

	t.Run("Empty Cart", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, appErrors.EmptyCartError("Your cart is empty!"))

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", nil, testutils.DefaultClaims(), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeResponse(t, rec)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, resp.Error.Code)
		assert.Equal(t, "Your cart is empty!", resp.Error.Message)
	})

	t.Run("Missing Prescription Maps To Conflict", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		mockService.On("Checkout", mock.Anything, mock.Anything).
			Return(nil, appErrors.MissingPrescriptionError("Some prescription medications in your cart are missing prescription information."))

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", nil, testutils.DefaultClaims(), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Requires Claims", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.OrderService)
		handler := handlers.NewOrderHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/checkout", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockService.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
	})
}
