package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/audit"
)

var ErrEmailTaken = errors.New("email is already registered")

type Service interface {
	Create(ctx context.Context, input domain.CreateUserInput, actorID uuid.UUID, ip, ua *string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput, actorID uuid.UUID, ip, ua *string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
}

type service struct {
	userRepo repository.UserRepository
	auditSvc audit.Service
}

func NewService(userRepo repository.UserRepository, auditSvc audit.Service) Service {
	return &service{userRepo: userRepo, auditSvc: auditSvc}
}

func (s *service) Create(ctx context.Context, input domain.CreateUserInput, actorID uuid.UUID, ip, ua *string) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		PhoneNumber:  input.PhoneNumber,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "CREATE",
		EntityType: "user",
		EntityID:   user.ID,
		NewValue:   user,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return user, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateUserInput, actorID uuid.UUID, ip, ua *string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	old := *user

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "UPDATE",
		EntityType: "user",
		EntityID:   user.ID,
		OldValue:   old,
		NewValue:   user,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return user, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "DELETE",
		EntityType: "user",
		EntityID:   id,
		OldValue:   user,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}
	return domain.NewPaginatedResponse(users, params.Page, params.PageSize, total), nil
}
