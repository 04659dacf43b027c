package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/tawonga-banda/pharmacy-pos/internal/api/middleware"
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
	"github.com/tawonga-banda/pharmacy-pos/internal/utils"
	"github.com/tawonga-banda/pharmacy-pos/internal/utils/response"
)

type AddItemRequest struct {
	MedicationID int64 `json:"medication_id" validate:"required"`
}

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cartView(cart))
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, req.MedicationID)
		if err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Item added to cart",
			slog.Int64("medicationId", req.MedicationID))
		response.Success(w, http.StatusOK, cartView(cart))
	}
}

func (h *CartHandler) Increment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withLineID(w, r, h.cartService.Increment)
	}
}

func (h *CartHandler) Decrement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withLineID(w, r, h.cartService.Decrement)
	}
}

func (h *CartHandler) Remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.withLineID(w, r, h.cartService.Remove)
	}
}

func (h *CartHandler) withLineID(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, medicationID int64) (*models.Cart, error)) {

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return
	}

	medicationID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid medication id", http.StatusBadRequest)
		return
	}

	cart, err := op(r.Context(), claims.UserID, medicationID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, cartView(cart))
}

// CartView pairs the cart with its formatted running total for the
// presentation layer.
type CartView struct {
	Cart         *models.Cart `json:"cart"`
	Subtotal     int64        `json:"subtotal"`
	DisplayTotal string       `json:"display_total"`
}

func cartView(cart *models.Cart) CartView {
	subtotal := cart.Subtotal()

	return CartView{
		Cart:         cart,
		Subtotal:     subtotal,
		DisplayTotal: models.FormatPrice(subtotal),
	}
}
