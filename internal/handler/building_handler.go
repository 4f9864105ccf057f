package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/building"
)

type BuildingHandler struct {
	buildingSvc building.Service
}

func NewBuildingHandler(buildingSvc building.Service) *BuildingHandler {
	return &BuildingHandler{buildingSvc: buildingSvc}
}

func (h *BuildingHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateBuildingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Code == "" {
		return middleware.BadRequest("Name and code are required")
	}

	ip, ua := requestMeta(c)

	b, err := h.buildingSvc.Create(c.Context(), input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, b)
}

func (h *BuildingHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	b, err := h.buildingSvc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, b)
}

func (h *BuildingHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateBuildingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ip, ua := requestMeta(c)

	b, err := h.buildingSvc.Update(c.Context(), id, input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, b)
}

func (h *BuildingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ip, ua := requestMeta(c)

	if err := h.buildingSvc.Delete(c.Context(), id, middleware.GetCurrentUserID(c), ip, ua); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Building deleted"})
}

func (h *BuildingHandler) List(c *fiber.Ctx) error {
	result, err := h.buildingSvc.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}
	return success(c, result)
}
