package models

import "gorm.io/gorm"

// Frame profile materials.
const (
	MaterialPVC      = "PVC"
	MaterialAluminum = "ALUMINUM"
	MaterialWood     = "WOOD"
	MaterialMixed    = "MIXED"
)

// ProfileSupplier is a manufacturer of window/door frame profiles.
// Name is the natural key.
type ProfileSupplier struct {
	gorm.Model
	Name         string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	MaterialType string `gorm:"size:20;not null"              json:"materialType"`
	Active       bool   `gorm:"not null;default:true"         json:"active"`
	Notes        string `gorm:"type:text"                     json:"notes"`
}
