package mocks

import (
	"context"

	"amlak-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type BuildingRepository struct {
	mock.Mock
}

func (m *BuildingRepository) Create(ctx context.Context, building *domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *BuildingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *BuildingRepository) Update(ctx context.Context, building *domain.Building) error {
	args := m.Called(ctx, building)
	return args.Error(0)
}

func (m *BuildingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BuildingRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Building, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Building), args.Get(1).(int64), args.Error(2)
}

func (m *BuildingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BuildingRepository) AddMaintenanceCost(ctx context.Context, id uuid.UUID, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}
