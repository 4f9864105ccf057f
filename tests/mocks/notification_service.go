package mocks

import (
	"context"

	"amlak-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyRequestCreated(ctx context.Context, request *domain.MaintenanceRequest, requester *domain.User) error {
	args := m.Called(ctx, request, requester)
	return args.Error(0)
}

func (m *NotificationService) NotifyApprovalDecision(ctx context.Context, request *domain.MaintenanceRequest, approvalType domain.ApprovalType, isApproved bool, reviewer *domain.User) error {
	args := m.Called(ctx, request, approvalType, isApproved, reviewer)
	return args.Error(0)
}

func (m *NotificationService) NotifyStatusChanged(ctx context.Context, request *domain.MaintenanceRequest, from, to domain.RequestStatus, actor *domain.User) error {
	args := m.Called(ctx, request, from, to, actor)
	return args.Error(0)
}
