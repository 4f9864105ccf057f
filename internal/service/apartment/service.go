package apartment

import (
	"context"

	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/audit"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateApartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Apartment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateApartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Apartment, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error
	List(ctx context.Context, buildingID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Apartment], error)
}

type service struct {
	apartmentRepo  repository.ApartmentRepository
	buildingRepo   repository.BuildingRepository
	departmentRepo repository.DepartmentRepository
	auditSvc       audit.Service
}

func NewService(
	apartmentRepo repository.ApartmentRepository,
	buildingRepo repository.BuildingRepository,
	departmentRepo repository.DepartmentRepository,
	auditSvc audit.Service,
) Service {
	return &service{
		apartmentRepo:  apartmentRepo,
		buildingRepo:   buildingRepo,
		departmentRepo: departmentRepo,
		auditSvc:       auditSvc,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateApartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Apartment, error) {
	building, err := s.buildingRepo.GetByID(ctx, input.BuildingID)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, domain.ErrBuildingNotFound
	}

	if input.DepartmentID != nil {
		department, err := s.departmentRepo.GetByID(ctx, *input.DepartmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, domain.ErrDepartmentNotFound
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	apartment := &domain.Apartment{
		ID:           uuid.New(),
		Number:       input.Number,
		Code:         input.Code,
		Type:         input.Type,
		TotalAmount:  input.TotalAmount,
		IsActive:     isActive,
		BuildingID:   input.BuildingID,
		DepartmentID: input.DepartmentID,
		CreatedBy:    actorID,
	}

	if err := s.apartmentRepo.Create(ctx, apartment); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "CREATE",
		EntityType: "apartment",
		EntityID:   apartment.ID,
		NewValue:   apartment,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return apartment, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.GetByIDWithRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	if apartment == nil {
		return nil, domain.ErrApartmentNotFound
	}
	return apartment, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateApartmentInput, actorID uuid.UUID, ip, ua *string) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if apartment == nil {
		return nil, domain.ErrApartmentNotFound
	}

	old := *apartment

	if input.Number != nil {
		apartment.Number = *input.Number
	}
	if input.Code != nil {
		apartment.Code = *input.Code
	}
	if input.Type != nil {
		apartment.Type = *input.Type
	}
	if input.TotalAmount != nil {
		apartment.TotalAmount = *input.TotalAmount
	}
	if input.BuildingID != nil {
		building, err := s.buildingRepo.GetByID(ctx, *input.BuildingID)
		if err != nil {
			return nil, err
		}
		if building == nil {
			return nil, domain.ErrBuildingNotFound
		}
		apartment.BuildingID = *input.BuildingID
	}
	if input.DepartmentID != nil {
		if *input.DepartmentID != nil {
			department, err := s.departmentRepo.GetByID(ctx, **input.DepartmentID)
			if err != nil {
				return nil, err
			}
			if department == nil {
				return nil, domain.ErrDepartmentNotFound
			}
		}
		apartment.DepartmentID = *input.DepartmentID
	}
	if input.IsActive != nil {
		apartment.IsActive = *input.IsActive
	}
	apartment.UpdatedBy = &actorID

	if err := s.apartmentRepo.Update(ctx, apartment); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "UPDATE",
		EntityType: "apartment",
		EntityID:   apartment.ID,
		OldValue:   old,
		NewValue:   apartment,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return apartment, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error {
	apartment, err := s.apartmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if apartment == nil {
		return domain.ErrApartmentNotFound
	}

	if err := s.apartmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "DELETE",
		EntityType: "apartment",
		EntityID:   id,
		OldValue:   apartment,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return nil
}

func (s *service) List(ctx context.Context, buildingID *uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Apartment], error) {
	apartments, total, err := s.apartmentRepo.List(ctx, buildingID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Apartment]{}, err
	}
	return domain.NewPaginatedResponse(apartments, params.Page, params.PageSize, total), nil
}
