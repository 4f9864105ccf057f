package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

type Translations map[string]string

var (
	locales = make(map[string]Translations)
	mu      sync.RWMutex
)

// LoadTranslations reads <localePath>/<locale>/labels.yaml for every locale
// directory. The files carry the display labels for the fixed maintenance-type
// and classification-type enumerations.
func LoadTranslations(localePath string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			locale := entry.Name()
			filePath := filepath.Join(localePath, locale, "labels.yaml")

			data, err := os.ReadFile(filePath)
			if err != nil {
				continue
			}

			var config struct {
				MaintenanceTypes    Translations `yaml:"MAINTENANCE_TYPES"`
				ClassificationTypes Translations `yaml:"CLASSIFICATION_TYPES"`
			}

			if err := yaml.Unmarshal(data, &config); err != nil {
				return fmt.Errorf("failed to parse %s: %w", filePath, err)
			}

			merged := make(Translations, len(config.MaintenanceTypes)+len(config.ClassificationTypes))
			for k, v := range config.MaintenanceTypes {
				merged["maintenance_type."+k] = v
			}
			for k, v := range config.ClassificationTypes {
				merged["classification_type."+k] = v
			}

			locales[locale] = merged
		}
	}

	return nil
}

func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != "en" {
		if trans, ok := locales["en"]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}

func MaintenanceTypeLabel(locale, value string) string {
	return Translate(locale, "maintenance_type."+value)
}

func ClassificationTypeLabel(locale, value string) string {
	return Translate(locale, "classification_type."+value)
}
