package mocks

import (
	"context"

	"amlak-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MaintenanceRequestRepository struct {
	mock.Mock
}

func (m *MaintenanceRequestRepository) Create(ctx context.Context, req *domain.MaintenanceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MaintenanceRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRequest), args.Error(1)
}

func (m *MaintenanceRequestRepository) List(ctx context.Context, status *domain.RequestStatus, params domain.PaginationParams) ([]domain.MaintenanceRequest, int64, error) {
	args := m.Called(ctx, status, params)
	return args.Get(0).([]domain.MaintenanceRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MaintenanceRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MaintenanceRequestRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approvalType domain.ApprovalType, approval *domain.Approval) error {
	args := m.Called(ctx, id, approvalType, approval)
	return args.Error(0)
}

func (m *MaintenanceRequestRepository) AddAction(ctx context.Context, action *domain.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *MaintenanceRequestRepository) ListActions(ctx context.Context, requestID uuid.UUID) ([]domain.Action, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.Action), args.Error(1)
}

func (m *MaintenanceRequestRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MaintenanceRequestRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MaintenanceRequestRepository) SumTotalCost(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
