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

type PrescriptionHandler struct {
	prescriptionService service.PrescriptionService
	validator           *validator.Validate
}

func NewPrescriptionHandler(prescriptionService service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService, validator: validator.New()}
}

func (h *PrescriptionHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreatePrescriptionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		prescription, err := h.prescriptionService.Create(r.Context(), claims.UserID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		middleware.LoggerFromContext(r.Context()).Info("Prescription added",
			slog.String("rxNumber", prescription.RxNumber),
			slog.String("patient", prescription.PatientName),
		)
		response.Success(w, http.StatusCreated, prescription)
	}
}

func (h *PrescriptionHandler) GetActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		prescription, err := h.prescriptionService.GetActive(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, prescription)
	}
}
