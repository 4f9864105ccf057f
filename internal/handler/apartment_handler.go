package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/apartment"
)

type ApartmentHandler struct {
	apartmentSvc apartment.Service
}

func NewApartmentHandler(apartmentSvc apartment.Service) *ApartmentHandler {
	return &ApartmentHandler{apartmentSvc: apartmentSvc}
}

func (h *ApartmentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateApartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Number == "" || input.Code == "" || input.BuildingID == uuid.Nil {
		return middleware.BadRequest("Number, code and buildingId are required")
	}

	ip, ua := requestMeta(c)

	a, err := h.apartmentSvc.Create(c.Context(), input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, a)
}

func (h *ApartmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	a, err := h.apartmentSvc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, a)
}

func (h *ApartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateApartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ip, ua := requestMeta(c)

	a, err := h.apartmentSvc.Update(c.Context(), id, input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, a)
}

func (h *ApartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ip, ua := requestMeta(c)

	if err := h.apartmentSvc.Delete(c.Context(), id, middleware.GetCurrentUserID(c), ip, ua); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Apartment deleted"})
}

func (h *ApartmentHandler) List(c *fiber.Ctx) error {
	var buildingID *uuid.UUID
	if raw := c.Query("buildingId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.BadRequest("Invalid buildingId parameter")
		}
		buildingID = &id
	}

	result, err := h.apartmentSvc.List(c.Context(), buildingID, getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}
	return success(c, result)
}
