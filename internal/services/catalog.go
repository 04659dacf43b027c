package service

import (
	"context"

	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
)

type CatalogService interface {
	GetMedication(ctx context.Context, id int64) (*models.MedicationResponse, error)
	ListMedications(ctx context.Context, category, search string) ([]models.MedicationResponse, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetMedication(ctx context.Context, id int64) (*models.MedicationResponse, error) {

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Medication not found").WithError(err)
	}

	resp := models.NewMedicationResponse(*item)

	return &resp, nil
}

func (s *catalogService) ListMedications(ctx context.Context, category, search string) ([]models.MedicationResponse, error) {

	items, err := s.repo.Filter(ctx, category, search)
	if err != nil {
		return nil, errors.InternalError("Failed to filter the catalog").WithError(err)
	}

	responses := make([]models.MedicationResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, models.NewMedicationResponse(item))
	}

	return responses, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, errors.InternalError("Failed to list categories").WithError(err)
	}

	return categories, nil
}
