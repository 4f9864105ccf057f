package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/user"
)

type UserHandler struct {
	userSvc user.Service
}

func NewUserHandler(userSvc user.Service) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Name, email and password are required")
	}
	if input.Role != "" && !input.Role.IsValid() {
		return middleware.BadRequest("Unknown role")
	}

	ip, ua := requestMeta(c)

	u, err := h.userSvc.Create(c.Context(), input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return created(c, u)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	u, err := h.userSvc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, u)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return middleware.BadRequest("Unknown role")
	}

	ip, ua := requestMeta(c)

	u, err := h.userSvc.Update(c.Context(), id, input, middleware.GetCurrentUserID(c), ip, ua)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, u)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ip, ua := requestMeta(c)

	if err := h.userSvc.Delete(c.Context(), id, middleware.GetCurrentUserID(c), ip, ua); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "User deleted"})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	result, err := h.userSvc.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}
	return success(c, result)
}
