package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/config"
	"amlak-backend/internal/domain"
	"amlak-backend/internal/middleware"
	"amlak-backend/internal/service"
)

type Handlers struct {
	Auth               *AuthHandler
	User               *UserHandler
	Building           *BuildingHandler
	Department         *DepartmentHandler
	Apartment          *ApartmentHandler
	MaintenanceRequest *MaintenanceRequestHandler
	Attachment         *AttachmentHandler
	Notification       *NotificationHandler
	Audit              *AuditHandler
	Dashboard          *DashboardHandler
	Meta               *MetaHandler

	services *service.Services
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:               NewAuthHandler(services.Auth),
		User:               NewUserHandler(services.User),
		Building:           NewBuildingHandler(services.Building),
		Department:         NewDepartmentHandler(services.Department),
		Apartment:          NewApartmentHandler(services.Apartment),
		MaintenanceRequest: NewMaintenanceRequestHandler(services.Maintenance),
		Attachment:         NewAttachmentHandler(services.Attachment),
		Notification:       NewNotificationHandler(services.Notification),
		Audit:              NewAuditHandler(services.Audit),
		Dashboard:          NewDashboardHandler(services.Dashboard),
		Meta:               NewMetaHandler(cfg.DefaultLocale),
		services:           services,
	}
}

func (h *Handlers) SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	api.Get("/meta/labels", h.Meta.GetLabels)

	auth := api.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	authed := api.Group("", middleware.AuthRequired(h.services.Auth))

	authed.Get("/auth/me", h.Auth.Me)
	authed.Post("/auth/logout-all", h.Auth.LogoutAll)

	users := authed.Group("/users", middleware.RequireCapability(domain.CapManageUsers))
	users.Post("", h.User.Create)
	users.Get("", h.User.List)
	users.Get("/:id", h.User.GetByID)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)

	buildings := authed.Group("/buildings")
	buildings.Get("", h.Building.List)
	buildings.Get("/:id", h.Building.GetByID)
	buildings.Post("", middleware.RequireCapability(domain.CapManageProperties), h.Building.Create)
	buildings.Put("/:id", middleware.RequireCapability(domain.CapManageProperties), h.Building.Update)
	buildings.Delete("/:id", middleware.RequireCapability(domain.CapManageProperties), h.Building.Delete)

	departments := authed.Group("/departments")
	departments.Get("", h.Department.List)
	departments.Get("/:id", h.Department.GetByID)
	departments.Post("", middleware.RequireCapability(domain.CapManageProperties), h.Department.Create)
	departments.Put("/:id", middleware.RequireCapability(domain.CapManageProperties), h.Department.Update)
	departments.Delete("/:id", middleware.RequireCapability(domain.CapManageProperties), h.Department.Delete)

	apartments := authed.Group("/apartments")
	apartments.Get("", h.Apartment.List)
	apartments.Get("/:id", h.Apartment.GetByID)
	apartments.Post("", middleware.RequireCapability(domain.CapManageProperties), h.Apartment.Create)
	apartments.Put("/:id", middleware.RequireCapability(domain.CapManageProperties), h.Apartment.Update)
	apartments.Delete("/:id", middleware.RequireCapability(domain.CapManageProperties), h.Apartment.Delete)

	requests := authed.Group("/maintenance-requests")
	requests.Post("", h.MaintenanceRequest.Create)
	requests.Get("", h.MaintenanceRequest.List)
	requests.Get("/:id", h.MaintenanceRequest.GetByID)
	requests.Put("/:id/status", h.MaintenanceRequest.UpdateStatus)
	requests.Put("/:id/approval", h.MaintenanceRequest.SubmitApproval)
	requests.Post("/:id/actions", h.MaintenanceRequest.AddAction)
	requests.Post("/:id/attachments", h.Attachment.Upload)
	requests.Get("/:id/attachments", h.Attachment.ListByRequest)
	requests.Delete("/:id/attachments/:attachmentId", h.Attachment.Delete)

	notifications := authed.Group("/notifications")
	notifications.Get("", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Put("/:id/read", h.Notification.MarkAsRead)
	notifications.Put("/read-all", h.Notification.MarkAllAsRead)

	audits := authed.Group("/audit-logs", middleware.RequireCapability(domain.CapViewAuditLogs))
	audits.Get("", h.Audit.List)
	audits.Get("/:entityType/:entityId", h.Audit.ListByEntity)

	authed.Get("/dashboard/stats", h.Dashboard.GetStats)
}
