package service

import (
	"context"

	"github.com/tawonga-banda/pharmacy-pos/internal/errors"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, userID int64) (*models.Cart, error)
	AddItem(ctx context.Context, userID, medicationID int64) (*models.Cart, error)
	Increment(ctx context.Context, userID, medicationID int64) (*models.Cart, error)
	Decrement(ctx context.Context, userID, medicationID int64) (*models.Cart, error)
	Remove(ctx context.Context, userID, medicationID int64) (*models.Cart, error)
}

type cartService struct {
	catalog  repository.CatalogRepository
	sessions repository.SessionRepository
}

func NewCartService(catalog repository.CatalogRepository, sessions repository.SessionRepository) CartService {
	return &cartService{catalog: catalog, sessions: sessions}
}

func (s *cartService) GetCart(ctx context.Context, userID int64) (*models.Cart, error) {

	var cart *models.Cart

	err := s.sessions.View(ctx, userID, func(state *repository.SessionState) {
		cart = state.Cart.Snapshot()
	})
	if err != nil {
		return nil, errors.InternalError("Failed to read session").WithError(err)
	}

	return cart, nil
}

// AddItem looks the medication up in the catalog and adds it against the
// session's active prescription. The cart is untouched when the add fails.
func (s *cartService) AddItem(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {

	med, err := s.catalog.GetByID(ctx, medicationID)
	if err != nil {
		return nil, errors.NotFoundError("Medication not found").WithError(err)
	}

	return s.mutate(ctx, userID, func(state *repository.SessionState) error {
		return state.Cart.AddItem(*med, state.ActivePrescription)
	})
}

func (s *cartService) Increment(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	return s.mutate(ctx, userID, func(state *repository.SessionState) error {
		return state.Cart.Increment(medicationID)
	})
}

func (s *cartService) Decrement(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	return s.mutate(ctx, userID, func(state *repository.SessionState) error {
		return state.Cart.Decrement(medicationID)
	})
}

func (s *cartService) Remove(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	return s.mutate(ctx, userID, func(state *repository.SessionState) error {
		return state.Cart.Remove(medicationID)
	})
}

func (s *cartService) mutate(ctx context.Context, userID int64, op func(state *repository.SessionState) error) (*models.Cart, error) {

	var cart *models.Cart

	err := s.sessions.Update(ctx, userID, func(state *repository.SessionState) error {
		if err := op(state); err != nil {
			return err
		}

		cart = state.Cart.Snapshot()

		return nil
	})
	if err != nil {
		if _, ok := errors.IsAppError(err); ok {
			return nil, err
		}

		return nil, errors.InternalError("Failed to update cart").WithError(err)
	}

	return cart, nil
}
