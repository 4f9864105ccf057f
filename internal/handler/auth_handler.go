package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/auth"
)

type AuthHandler struct {
	authSvc auth.Service
}

func NewAuthHandler(authSvc auth.Service) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Email and password are required")
	}

	ip, ua := requestMeta(c)

	user, tokens, err := h.authSvc.Login(c.Context(), input, ua, ip)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	tokens, err := h.authSvc.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	if err := h.authSvc.Logout(c.Context(), input.RefreshToken); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.authSvc.LogoutAll(c.Context(), userID); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "All sessions revoked"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}
	return success(c, user)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return middleware.BadRequest("Email is required")
	}

	if err := h.authSvc.RequestPasswordReset(c.Context(), input.Email); err != nil {
		return mapDomainError(err)
	}

	// same response whether or not the email exists
	return success(c, fiber.Map{"message": "If the email exists, a reset link has been sent"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil || input.Token == "" || input.Password == "" {
		return middleware.BadRequest("Token and new password are required")
	}
	if len(input.Password) < 8 {
		return middleware.BadRequest("Password must be at least 8 characters")
	}

	if err := h.authSvc.ResetPassword(c.Context(), input.Token, input.Password); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Password has been reset"})
}
