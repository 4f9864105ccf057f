package audit

import (
	"context"
	"log"

	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/repository"
)

type Service interface {
	Record(ctx context.Context, input domain.CreateAuditLogInput)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
}

type service struct {
	auditRepo repository.AuditLogRepository
}

func NewService(auditRepo repository.AuditLogRepository) Service {
	return &service{auditRepo: auditRepo}
}

// Record writes the audit row and swallows failures. An audit write must
// never fail the operation it describes.
func (s *service) Record(ctx context.Context, input domain.CreateAuditLogInput) {
	if err := repository.CreateAuditLog(s.auditRepo, ctx, input); err != nil {
		log.Printf("failed to write audit log for %s %s: %v", input.Action, input.EntityID, err)
	}
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}

func (s *service) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.auditRepo.ListByEntity(ctx, entityType, entityID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}
