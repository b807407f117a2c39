package models

import "gorm.io/gorm"

// Declared purpose of a glass product.
const (
	PurposeGeneral    = "general"
	PurposeSecurity   = "security"
	PurposeInsulation = "insulation"
	PurposeDecorative = "decorative"
)

// GlassType is a catalogue glass product. Name is the natural key.
// Optional performance metrics are pointers so a missing value is
// distinguishable from zero.
type GlassType struct {
	gorm.Model
	Name              string   `gorm:"size:255;uniqueIndex;not null" json:"name"`
	ThicknessMm       float64  `gorm:"not null"                      json:"thicknessMm"`
	PricePerSqm       float64  `gorm:"not null"                      json:"pricePerSqm"`
	UValue            *float64 `json:"uValue,omitempty"`
	SolarFactor       *float64 `json:"solarFactor,omitempty"`
	LightTransmission *float64 `json:"lightTransmission,omitempty"`
	Tempered          bool     `gorm:"not null;default:false" json:"tempered"`
	Laminated         bool     `gorm:"not null;default:false" json:"laminated"`
	LowE              bool     `gorm:"not null;default:false" json:"lowE"`
	TripleGlazed      bool     `gorm:"not null;default:false" json:"tripleGlazed"`
	Purpose           string   `gorm:"size:30;not null;default:general" json:"purpose"`
}
