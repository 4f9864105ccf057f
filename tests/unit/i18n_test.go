package unit_test

import (
	"path/filepath"
	"testing"

	"amlak-backend/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleLabels(t *testing.T) {
	// tests/unit -> ../../locales
	localePath := filepath.Join("..", "..", "locales")

	require.NoError(t, i18n.LoadTranslations(localePath))

	t.Run("EnglishLabels", func(t *testing.T) {
		assert.Equal(t, "Electrical", i18n.MaintenanceTypeLabel("en", "electrical"))
		assert.Equal(t, "General Maintenance", i18n.MaintenanceTypeLabel("en", "maintenance"))
		assert.Equal(t, "Labor", i18n.ClassificationTypeLabel("en", "labor"))
		assert.Equal(t, "Tools", i18n.ClassificationTypeLabel("en", "tools"))
	})

	t.Run("ArabicLabels", func(t *testing.T) {
		assert.Equal(t, "كهرباء", i18n.MaintenanceTypeLabel("ar", "electrical"))
		assert.Equal(t, "سباكة", i18n.MaintenanceTypeLabel("ar", "plumbing"))
		assert.Equal(t, "عمالة", i18n.ClassificationTypeLabel("ar", "labor"))
		assert.Equal(t, "مواد", i18n.ClassificationTypeLabel("ar", "materials"))
	})

	t.Run("UnknownLocaleFallsBackToEnglish", func(t *testing.T) {
		assert.Equal(t, "Plumbing", i18n.MaintenanceTypeLabel("fr", "plumbing"))
	})

	t.Run("UnknownKeyReturnsKey", func(t *testing.T) {
		assert.Equal(t, "maintenance_type.landscaping", i18n.MaintenanceTypeLabel("en", "landscaping"))
	})
}
