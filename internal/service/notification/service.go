package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/email"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyRequestCreated(ctx context.Context, request *domain.MaintenanceRequest, requester *domain.User) error
	NotifyApprovalDecision(ctx context.Context, request *domain.MaintenanceRequest, approvalType domain.ApprovalType, isApproved bool, reviewer *domain.User) error
	NotifyStatusChanged(ctx context.Context, request *domain.MaintenanceRequest, from, to domain.RequestStatus, actor *domain.User) error
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.List(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

// NotifyRequestCreated fans out to every manager and supervisor except the
// requester: one in-app notification each, plus a best-effort email.
func (s *service) NotifyRequestCreated(ctx context.Context, request *domain.MaintenanceRequest, requester *domain.User) error {
	reviewers, err := s.userRepo.GetByRoles(ctx, []domain.Role{domain.RoleManager, domain.RoleSupervisor})
	if err != nil {
		return err
	}

	data := json.RawMessage(fmt.Sprintf(`{"requestId":%q}`, request.ID.String()))

	var apartmentNumber string
	var snapshot domain.ApartmentRef
	if json.Unmarshal(request.ApartmentSnapshot, &snapshot) == nil {
		apartmentNumber = snapshot.Number
	}

	for _, reviewer := range reviewers {
		if reviewer.ID == requester.ID {
			continue
		}

		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  reviewer.ID,
			Type:    domain.NotifRequestCreated,
			Title:   "New Maintenance Request",
			Message: fmt.Sprintf("%s submitted a maintenance request for apartment %s", requester.Name, apartmentNumber),
			Data:    data,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return err
		}

		_ = s.emailSvc.SendRequestCreatedEmail(ctx, reviewer.Email, reviewer.Name, requester.Name, apartmentNumber)
	}

	return nil
}

func (s *service) NotifyApprovalDecision(ctx context.Context, request *domain.MaintenanceRequest, approvalType domain.ApprovalType, isApproved bool, reviewer *domain.User) error {
	requester, err := s.userRepo.GetByID(ctx, request.CreatedBy)
	if err != nil {
		return err
	}
	if requester == nil || requester.ID == reviewer.ID {
		return nil
	}

	notifType := domain.NotifRequestApproved
	decision := "approved"
	if !isApproved {
		notifType = domain.NotifRequestRejected
		decision = "rejected"
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  requester.ID,
		Type:    notifType,
		Title:   "Maintenance Request Reviewed",
		Message: fmt.Sprintf("%s %s your maintenance request (%s approval)", reviewer.Name, decision, approvalType),
		Data:    json.RawMessage(fmt.Sprintf(`{"requestId":%q}`, request.ID.String())),
	}
	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	_ = s.emailSvc.SendRequestDecisionEmail(ctx, requester.Email, requester.Name, string(approvalType), decision, reviewer.Name)

	return nil
}

// NotifyStatusChanged is in-app only; status moves are frequent enough that
// emailing each one would be noise.
func (s *service) NotifyStatusChanged(ctx context.Context, request *domain.MaintenanceRequest, from, to domain.RequestStatus, actor *domain.User) error {
	requester, err := s.userRepo.GetByID(ctx, request.CreatedBy)
	if err != nil {
		return err
	}
	if requester == nil || requester.ID == actor.ID {
		return nil
	}

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  requester.ID,
		Type:    domain.NotifStatusChanged,
		Title:   "Maintenance Request Status Updated",
		Message: fmt.Sprintf("%s moved your maintenance request from %s to %s", actor.Name, from, to),
		Data:    json.RawMessage(fmt.Sprintf(`{"requestId":%q}`, request.ID.String())),
	}
	return s.notifRepo.Create(ctx, notif)
}
