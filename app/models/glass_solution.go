package models

import (
	"strings"

	"gorm.io/gorm"
)

// Well-known solution keys.
const (
	SolutionSecurity         = "security"
	SolutionThermalInsulation = "thermal_insulation"
	SolutionSoundInsulation  = "sound_insulation"
	SolutionEnergyEfficiency = "energy_efficiency"
	SolutionDecorative       = "decorative"
	SolutionGeneral          = "general"
)

// GlassSolution is a named use-case category for glass products.
// Key is the natural key (snake_case); Slug is the key with underscores
// replaced by hyphens, derived on write.
type GlassSolution struct {
	gorm.Model
	Key       string `gorm:"size:50;uniqueIndex;not null" json:"key"`
	NameEs    string `gorm:"size:255;not null"            json:"nameEs"`
	NameEn    string `gorm:"size:255;not null"            json:"nameEn"`
	Icon      string `gorm:"size:50"                      json:"icon"`
	SortOrder int    `gorm:"not null;default:0"           json:"sortOrder"`
	Slug      string `gorm:"size:50;not null"             json:"slug"`
}

// SolutionSlug derives the URL slug for a solution key.
func SolutionSlug(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
