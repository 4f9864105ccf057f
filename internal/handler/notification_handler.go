package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service/notification"
)

type NotificationHandler struct {
	notifSvc notification.Service
}

func NewNotificationHandler(notifSvc notification.Service) *NotificationHandler {
	return &NotificationHandler{notifSvc: notifSvc}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	unreadOnly := c.QueryBool("unread")

	result, err := h.notifSvc.List(c.Context(), userID, unreadOnly, getPaginationParams(c))
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, result)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifSvc.GetUnreadCount(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notifSvc.MarkAsRead(c.Context(), id); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	if err := h.notifSvc.MarkAllAsRead(c.Context(), middleware.GetCurrentUserID(c)); err != nil {
		return mapDomainError(err)
	}

	return success(c, fiber.Map{"message": "All notifications marked as read"})
}
