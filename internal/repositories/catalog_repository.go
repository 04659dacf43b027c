package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

var ErrMedicationNotFound = errors.New("medication not found")

type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*models.MedicationItem, error)
	Filter(ctx context.Context, category, search string) ([]models.MedicationItem, error)
	Categories(ctx context.Context) ([]string, error)
}

// catalogRepository serves the fixed medication table loaded from
// configuration. Read-only for the lifetime of the process.
type catalogRepository struct {
	items []models.MedicationItem
	byID  map[int64]int
}

func NewCatalogRepo(items []models.MedicationItem) CatalogRepository {
	byID := make(map[int64]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}

	return &catalogRepository{items: items, byID: byID}
}

func (r *catalogRepository) GetByID(_ context.Context, id int64) (*models.MedicationItem, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrMedicationNotFound
	}

	item := r.items[i]

	return &item, nil
}

// Filter composes the category filter and the free-text search with AND.
// The search matches case-insensitively on a substring of the name OR the
// category; empty arguments mean "no filter".
func (r *catalogRepository) Filter(_ context.Context, category, search string) ([]models.MedicationItem, error) {
	search = strings.ToLower(search)

	matches := make([]models.MedicationItem, 0, len(r.items))

	for _, item := range r.items {
		if category != "" && item.Category != category {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Category), search) {
			continue
		}

		matches = append(matches, item)
	}

	return matches, nil
}

func (r *catalogRepository) Categories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool, len(r.items))
	categories := make([]string, 0, len(r.items))

	for _, item := range r.items {
		if !seen[item.Category] {
			seen[item.Category] = true

			categories = append(categories, item.Category)
		}
	}

	return categories, nil
}
