package models

import "gorm.io/gorm"

// Publication status of a catalogue model.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// CatalogModel is a purchasable window/door product. Name is the natural
// key. Dimension bounds are millimetres; the pricing formula inputs are
// consumed by the quote engine, which this package does not implement.
type CatalogModel struct {
	gorm.Model
	Name              string  `gorm:"size:255;uniqueIndex;not null" json:"name"`
	ProfileSupplierID uint    `gorm:"not null;index"                json:"profileSupplierId"`
	MinWidthMm        int     `gorm:"not null" json:"minWidthMm"`
	MaxWidthMm        int     `gorm:"not null" json:"maxWidthMm"`
	MinHeightMm       int     `gorm:"not null" json:"minHeightMm"`
	MaxHeightMm       int     `gorm:"not null" json:"maxHeightMm"`
	BasePrice         float64 `gorm:"not null" json:"basePrice"`
	CostPerMmWidth    float64 `gorm:"not null" json:"costPerMmWidth"`
	CostPerMmHeight   float64 `gorm:"not null" json:"costPerMmHeight"`
	AccessoryPrice    *float64 `json:"accessoryPrice,omitempty"`
	// Offsets subtracted from the frame dimensions when computing the
	// billable glass area.
	GlassDiscountWidthMm  int      `gorm:"not null;default:0" json:"glassDiscountWidthMm"`
	GlassDiscountHeightMm int      `gorm:"not null;default:0" json:"glassDiscountHeightMm"`
	ProfitMarginPct       *float64 `json:"profitMarginPct,omitempty"`
	Status                string   `gorm:"size:20;not null;default:draft" json:"status"`

	ProfileSupplier ProfileSupplier `json:"-"`
	GlassTypes      []GlassType     `gorm:"many2many:catalog_model_glass_types" json:"-"`
}

func (CatalogModel) TableName() string { return "catalog_models" }
