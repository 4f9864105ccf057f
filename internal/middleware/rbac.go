package middleware

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
)

func RequireCapability(cap domain.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.Can(cap) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func RequireRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return Forbidden("Insufficient permissions for this operation")
	}
}

func GetCurrentUserRole(c *fiber.Ctx) domain.Role {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.Role
}
