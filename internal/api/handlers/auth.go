package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/tawonga-banda/pharmacy-pos/internal/api/middleware"
	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
	"github.com/tawonga-banda/pharmacy-pos/internal/utils"
	"github.com/tawonga-banda/pharmacy-pos/internal/utils/response"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.String("username", req.Username))
			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("username", req.Username), slog.String("role", resp.Role))
		response.Success(w, http.StatusOK, resp)
	}
}

func (h *UserHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if err := h.userService.Logout(r.Context(), claims.UserID); err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("User logged out", slog.String("username", claims.Username))
		response.Success(w, http.StatusOK, map[string]string{"message": "Logged out"})
	}
}
