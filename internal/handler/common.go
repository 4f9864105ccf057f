package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/auth"
	"amlak-backend/internal/service/maintenance"
	"amlak-backend/internal/service/user"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + name + " parameter")
	}
	return id, nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err == nil {
		params.Validate()
	}
	return params
}

// requestMeta pulls the audit fields the middleware captured.
func requestMeta(c *fiber.Ctx) (ip, ua *string) {
	if v := middleware.GetIPAddress(c); v != "" {
		ip = &v
	}
	if v := middleware.GetUserAgent(c); v != "" {
		ua = &v
	}
	return ip, ua
}

// mapDomainError translates service sentinels into HTTP errors. Anything
// unrecognized passes through and gets the 500 treatment.
func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrApartmentNotFound),
		errors.Is(err, domain.ErrBuildingNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAttachmentNotFound):
		return middleware.NotFound(err.Error())
	case errors.Is(err, domain.ErrMissingClassification),
		errors.Is(err, domain.ErrInvalidClassification),
		errors.Is(err, domain.ErrNonPositiveCost),
		errors.Is(err, domain.ErrNonPositiveQuantity),
		errors.Is(err, domain.ErrNoCostItems),
		errors.Is(err, domain.ErrInvalidMaintenanceType),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidApprovalType),
		errors.Is(err, domain.ErrApartmentInactive):
		return middleware.BadRequest(err.Error())
	case errors.Is(err, domain.ErrAlreadyApproved):
		return middleware.Conflict(err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		return middleware.Conflict(err.Error())
	case errors.Is(err, maintenance.ErrNotPermitted):
		return middleware.Forbidden(err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return middleware.Unauthorized(err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		return middleware.Forbidden(err.Error())
	default:
		return err
	}
}
