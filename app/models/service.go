package models

import "gorm.io/gorm"

// Service billing types and their units. The unit is fully determined by
// the billing type: area→sqm, perimeter→ml, fixed→unit.
const (
	ServiceTypeArea      = "area"
	ServiceTypePerimeter = "perimeter"
	ServiceTypeFixed     = "fixed"

	UnitSqm  = "sqm"
	UnitMl   = "ml"
	UnitUnit = "unit"
)

// ServiceUnitFor maps a billing type to its required unit. Unknown types
// map to the empty string.
func ServiceUnitFor(serviceType string) string {
	switch serviceType {
	case ServiceTypeArea:
		return UnitSqm
	case ServiceTypePerimeter:
		return UnitMl
	case ServiceTypeFixed:
		return UnitUnit
	}
	return ""
}

// Service is an ancillary billable item (installation, sealing, transport…).
// Name has no unique constraint in the store; the seeder checks existence
// with an explicit lookup.
type Service struct {
	gorm.Model
	Name        string   `gorm:"size:255;not null;index" json:"name"`
	Type        string   `gorm:"size:20;not null"        json:"type"`
	Unit        string   `gorm:"size:10;not null"        json:"unit"`
	Rate        float64  `gorm:"not null"                json:"rate"`
	MinQuantity *float64 `json:"minQuantity,omitempty"`
}
