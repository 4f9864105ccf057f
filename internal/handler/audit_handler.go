package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/audit"
)

type AuditHandler struct {
	auditSvc audit.Service
}

func NewAuditHandler(auditSvc audit.Service) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

func (h *AuditHandler) List(c *fiber.Ctx) error {
	result, err := h.auditSvc.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, result)
}

func (h *AuditHandler) ListByEntity(c *fiber.Ctx) error {
	entityType := c.Params("entityType")
	entityID, err := parseUUIDParam(c, "entityId")
	if err != nil {
		return err
	}
	if entityType == "" {
		return middleware.BadRequest("Entity type is required")
	}

	result, err := h.auditSvc.ListByEntity(c.Context(), entityType, entityID, getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, result)
}
