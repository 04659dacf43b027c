// Package mocks provides testify mocks for the service interfaces used by
// handler tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tawonga-banda/pharmacy-pos/internal/models"
	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.LoginResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserService) Logout(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) GetMedication(ctx context.Context, id int64) (*models.MedicationResponse, error) {
	args := m.Called(ctx, id)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.MedicationResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) ListMedications(ctx context.Context, category, search string) ([]models.MedicationResponse, error) {
	args := m.Called(ctx, category, search)

	if resp := args.Get(0); resp != nil {
		return resp.([]models.MedicationResponse), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	if resp := args.Get(0); resp != nil {
		return resp.([]string), args.Error(1)
	}

	return nil, args.Error(1)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, userID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID, medicationID)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) Increment(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID, medicationID)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) Decrement(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID, medicationID)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) Remove(ctx context.Context, userID, medicationID int64) (*models.Cart, error) {
	args := m.Called(ctx, userID, medicationID)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Cart), args.Error(1)
	}

	return nil, args.Error(1)
}

type PrescriptionService struct {
	mock.Mock
}

func (m *PrescriptionService) Create(ctx context.Context, userID int64, req *models.CreatePrescriptionRequest) (*models.Prescription, error) {
	args := m.Called(ctx, userID, req)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Prescription), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PrescriptionService) GetActive(ctx context.Context, userID int64) (*models.Prescription, error) {
	args := m.Called(ctx, userID)

	if resp := args.Get(0); resp != nil {
		return resp.(*models.Prescription), args.Error(1)
	}

	return nil, args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func (m *OrderService) Checkout(ctx context.Context, claims *models.Claims) (*service.CheckoutResult, error) {
	args := m.Called(ctx, claims)

	if resp := args.Get(0); resp != nil {
		return resp.(*service.CheckoutResult), args.Error(1)
	}

	return nil, args.Error(1)
}
