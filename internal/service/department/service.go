package department

import (
	"context"

	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/audit"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateDepartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateDepartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Department, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Department], error)
}

type service struct {
	departmentRepo repository.DepartmentRepository
	auditSvc       audit.Service
}

func NewService(departmentRepo repository.DepartmentRepository, auditSvc audit.Service) Service {
	return &service{departmentRepo: departmentRepo, auditSvc: auditSvc}
}

func (s *service) Create(ctx context.Context, input domain.CreateDepartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Department, error) {
	department := &domain.Department{
		ID:        uuid.New(),
		Name:      input.Name,
		Code:      input.Code,
		CreatedBy: actorID,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "CREATE",
		EntityType: "department",
		EntityID:   department.ID,
		NewValue:   department,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return department, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateDepartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}

	old := *department

	if input.Name != nil {
		department.Name = *input.Name
	}
	if input.Code != nil {
		department.Code = *input.Code
	}
	department.UpdatedBy = &actorID

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "UPDATE",
		EntityType: "department",
		EntityID:   department.ID,
		OldValue:   old,
		NewValue:   department,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return department, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if department == nil {
		return domain.ErrDepartmentNotFound
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "DELETE",
		EntityType: "department",
		EntityID:   id,
		OldValue:   department,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Department], error) {
	departments, total, err := s.departmentRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Department]{}, err
	}
	return domain.NewPaginatedResponse(departments, params.Page, params.PageSize, total), nil
}
