package mocks

import (
	"context"

	"amlak-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ApartmentRepository struct {
	mock.Mock
}

func (m *ApartmentRepository) Create(ctx context.Context, apartment *domain.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *ApartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *ApartmentRepository) GetByIDWithRefs(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *ApartmentRepository) Update(ctx context.Context, apartment *domain.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *ApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ApartmentRepository) List(ctx context.Context, buildingID *uuid.UUID, params domain.PaginationParams) ([]domain.Apartment, int64, error) {
	args := m.Called(ctx, buildingID, params)
	return args.Get(0).([]domain.Apartment), args.Get(1).(int64), args.Error(2)
}

func (m *ApartmentRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
