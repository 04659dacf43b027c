package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tawonga-banda/pharmacy-pos/internal/api/middleware"
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/metrics"
	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
	"github.com/tawonga-banda/pharmacy-pos/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		result, err := h.orderService.Checkout(r.Context(), claims)
		if err != nil {
			response.Error(w, err)
			return
		}

		metrics.ObserveCheckout()

		middleware.LoggerFromContext(r.Context()).Info("Order processed",
			slog.String("receiptId", result.Receipt.ID.String()),
			slog.Int64("subtotal", result.Receipt.Subtotal),
		)
		response.Success(w, http.StatusOK, result)
	}
}
