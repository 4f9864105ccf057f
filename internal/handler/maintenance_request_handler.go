package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/maintenance"
)

type MaintenanceRequestHandler struct {
	maintenanceSvc maintenance.Service
}

func NewMaintenanceRequestHandler(maintenanceSvc maintenance.Service) *MaintenanceRequestHandler {
	return &MaintenanceRequestHandler{maintenanceSvc: maintenanceSvc}
}

func (h *MaintenanceRequestHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateMaintenanceRequestInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actor := middleware.GetCurrentUser(c)
	ip, ua := requestMeta(c)

	request, err := h.maintenanceSvc.Create(c.Context(), input, actor, ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, request)
}

func (h *MaintenanceRequestHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.maintenanceSvc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, request)
}

func (h *MaintenanceRequestHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	var status *domain.RequestStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.RequestStatus(raw)
		status = &s
	}

	result, err := h.maintenanceSvc.List(c.Context(), status, params)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, result)
}

func (h *MaintenanceRequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actor := middleware.GetCurrentUser(c)
	ip, ua := requestMeta(c)

	request, err := h.maintenanceSvc.UpdateStatus(c.Context(), id, input, actor, ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, request)
}

func (h *MaintenanceRequestHandler) SubmitApproval(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.SubmitApprovalInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actor := middleware.GetCurrentUser(c)
	ip, ua := requestMeta(c)

	request, err := h.maintenanceSvc.SubmitApproval(c.Context(), id, input, actor, ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, request)
}

func (h *MaintenanceRequestHandler) AddAction(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.AddActionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Description == "" {
		return middleware.BadRequest("Description is required")
	}

	actor := middleware.GetCurrentUser(c)

	action, err := h.maintenanceSvc.AddAction(c.Context(), id, input, actor)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, action)
}
