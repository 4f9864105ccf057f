package handler

import (
	"github.com/gofiber/fiber/v2"

	"amlak-backend/internal/domain"
	"amlak-backend/internal/pkg/i18n"
)

// MetaHandler serves the fixed enumerations with their localized display
// labels. Clients treat these as static configuration.
type MetaHandler struct {
	defaultLocale string
}

func NewMetaHandler(defaultLocale string) *MetaHandler {
	return &MetaHandler{defaultLocale: defaultLocale}
}

func (h *MetaHandler) GetLabels(c *fiber.Ctx) error {
	locale := c.Query("locale", h.defaultLocale)

	maintenanceTypes := make([]fiber.Map, 0, len(domain.AllMaintenanceTypes))
	for _, t := range domain.AllMaintenanceTypes {
		maintenanceTypes = append(maintenanceTypes, fiber.Map{
			"value": t,
			"label": i18n.MaintenanceTypeLabel(locale, string(t)),
		})
	}

	classificationTypes := make([]fiber.Map, 0, len(domain.AllClassificationTypes))
	for _, ct := range domain.AllClassificationTypes {
		classificationTypes = append(classificationTypes, fiber.Map{
			"value": ct,
			"label": i18n.ClassificationTypeLabel(locale, string(ct)),
		})
	}

	return success(c, fiber.Map{
		"maintenanceTypes":    maintenanceTypes,
		"classificationTypes": classificationTypes,
	})
}
