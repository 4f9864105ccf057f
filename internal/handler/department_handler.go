package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/department"
)

type DepartmentHandler struct {
	departmentSvc department.Service
}

func NewDepartmentHandler(departmentSvc department.Service) *DepartmentHandler {
	return &DepartmentHandler{departmentSvc: departmentSvc}
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Code == "" {
		return middleware.BadRequest("Name and code are required")
	}

	ip, ua := requestMeta(c)

	d, err := h.departmentSvc.Create(c.Context(), input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, d)
}

func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	d, err := h.departmentSvc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, d)
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ip, ua := requestMeta(c)

	d, err := h.departmentSvc.Update(c.Context(), id, input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, d)
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ip, ua := requestMeta(c)

	if err := h.departmentSvc.Delete(c.Context(), id, middleware.GetCurrentUserID(c), ip, ua); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Department deleted"})
}

func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	result, err := h.departmentSvc.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}
	return success(c, result)
}
