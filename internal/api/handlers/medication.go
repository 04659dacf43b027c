package handlers

import (
	"net/http"
	"strconv"

	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
	"github.com/tawonga-banda/pharmacy-pos/internal/utils/response"
)

type MedicationHandler struct {
	catalogService service.CatalogService
}

func NewMedicationHandler(catalogService service.CatalogService) *MedicationHandler {
	return &MedicationHandler{catalogService: catalogService}
}

// for eg: GET /medications?category=Allergy&q=spray
func (h *MedicationHandler) ListMedications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := r.URL.Query().Get("category")
		search := r.URL.Query().Get("q")

		medications, err := h.catalogService.ListMedications(r.Context(), category, search)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, medications)
	}
}

func (h *MedicationHandler) GetMedication() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "Invalid medication id", http.StatusBadRequest)
			return
		}

		medication, err := h.catalogService.GetMedication(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, medication)
	}
}

func (h *MedicationHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.Categories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}
