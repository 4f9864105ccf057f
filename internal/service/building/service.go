package building

import (
	"context"

	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
	"amlak-backend/internal/service/audit"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateBuildingInput, actorID uuid.UUID, ip, ua *string) (*domain.Building, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateBuildingInput, actorID uuid.UUID, ip, ua *string) (*domain.Building, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Building], error)
}

type service struct {
	buildingRepo repository.BuildingRepository
	auditSvc     audit.Service
}

func NewService(buildingRepo repository.BuildingRepository, auditSvc audit.Service) Service {
	return &service{buildingRepo: buildingRepo, auditSvc: auditSvc}
}

func (s *service) Create(ctx context.Context, input domain.CreateBuildingInput, actorID uuid.UUID, ip, ua *string) (*domain.Building, error) {
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	building := &domain.Building{
		ID:               uuid.New(),
		Name:             input.Name,
		Code:             input.Code,
		LastRecordedCost: input.LastRecordedCost,
		IsActive:         isActive,
		CreatedBy:        actorID,
	}

	if err := s.buildingRepo.Create(ctx, building); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "CREATE",
		EntityType: "building",
		EntityID:   building.ID,
		NewValue:   building,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return building, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error) {
	building, err := s.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, domain.ErrBuildingNotFound
	}
	return building, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateBuildingInput, actorID uuid.UUID, ip, ua *string) (*domain.Building, error) {
	building, err := s.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, domain.ErrBuildingNotFound
	}

	old := *building

	if input.Name != nil {
		building.Name = *input.Name
	}
	if input.Code != nil {
		building.Code = *input.Code
	}
	if input.LastRecordedCost != nil {
		building.LastRecordedCost = *input.LastRecordedCost
	}
	if input.IsActive != nil {
		building.IsActive = *input.IsActive
	}
	building.UpdatedBy = &actorID

	if err := s.buildingRepo.Update(ctx, building); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "UPDATE",
		EntityType: "building",
		EntityID:   building.ID,
		OldValue:   old,
		NewValue:   building,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return building, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID, ip, ua *string) error {
	building, err := s.buildingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if building == nil {
		return domain.ErrBuildingNotFound
	}

	if err := s.buildingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, domain.CreateAuditLogInput{
		UserID:     actorID,
		Action:     "DELETE",
		EntityType: "building",
		EntityID:   id,
		OldValue:   building,
		IPAddress:  ip,
		UserAgent:  ua,
	})

	return nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Building], error) {
	buildings, total, err := s.buildingRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Building]{}, err
	}
	return domain.NewPaginatedResponse(buildings, params.Page, params.PageSize, total), nil
}
