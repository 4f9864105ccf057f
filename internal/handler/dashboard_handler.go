package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardSvc dashboard.Service
}

func NewDashboardHandler(dashboardSvc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardSvc.GetStats(c.Context())
	if err != nil {
		return mapDomainError(err)
	}

	return success(c, stats)
}
