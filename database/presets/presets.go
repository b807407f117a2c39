// Package presets holds the named seed-data bundles. A preset is the only
// seeding input; register one per deployment scenario from an init() in its
// own file:
//
//	func init() {
//	    presets.Register(Preset{Name: "minimal", …})
//	}
//
// Then seed via CLI: vitral seed --preset=minimal
package presets

import (
	"fmt"
	"sort"
	"sync"
)

// Preset is a fixed-shape seed bundle.
type Preset struct {
	Name             string
	Description      string
	Suppliers        []Supplier
	GlassTypes       []GlassType
	Models           []Model
	Services         []Service
	Solutions        []Solution
	SolutionMappings []SolutionMapping // optional; when empty the classifier runs instead
}

// Supplier is the raw profile-supplier record of a preset.
type Supplier struct {
	Name         string `json:"name"         validate:"required,min=2,max=255"`
	MaterialType string `json:"materialType" validate:"required,in=PVC,ALUMINUM,WOOD,MIXED"`
	Active       *bool  `json:"active"`
	Notes        string `json:"notes"        validate:"nullable,max=2000"`
}

// GlassType is the raw glass-type record of a preset. PricePerSqm is
// optional; a missing price falls back to the factory default.
type GlassType struct {
	Name              string   `json:"name"              validate:"required,min=2,max=255"`
	ThicknessMm       float64  `json:"thicknessMm"       validate:"required,gt=0,lte=100"`
	PricePerSqm       *float64 `json:"pricePerSqm"       validate:"nullable,gt=0"`
	UValue            *float64 `json:"uValue"            validate:"nullable,gt=0,lte=10"`
	SolarFactor       *float64 `json:"solarFactor"       validate:"nullable,gte=0,lte=1"`
	LightTransmission *float64 `json:"lightTransmission" validate:"nullable,gte=0,lte=1"`
	Tempered          bool     `json:"tempered"`
	Laminated         bool     `json:"laminated"`
	LowE              bool     `json:"lowE"`
	TripleGlazed      bool     `json:"tripleGlazed"`
	Purpose           string   `json:"purpose" validate:"nullable,in=general,security,insulation,decorative"`
}

// Model is the raw catalogue-model record of a preset. Supplier references
// a Supplier.Name from the same preset.
type Model struct {
	Name                  string   `json:"name"        validate:"required,min=2,max=255"`
	Supplier              string   `json:"supplier"    validate:"required"`
	MinWidthMm            int      `json:"minWidthMm"  validate:"required,gt=0"`
	MaxWidthMm            int      `json:"maxWidthMm"  validate:"required,gt=0"`
	MinHeightMm           int      `json:"minHeightMm" validate:"required,gt=0"`
	MaxHeightMm           int      `json:"maxHeightMm" validate:"required,gt=0"`
	BasePrice             float64  `json:"basePrice"   validate:"required,gt=0"`
	CostPerMmWidth        float64  `json:"costPerMmWidth"  validate:"required,gte=0"`
	CostPerMmHeight       float64  `json:"costPerMmHeight" validate:"required,gte=0"`
	AccessoryPrice        *float64 `json:"accessoryPrice"  validate:"nullable,gte=0"`
	GlassDiscountWidthMm  int      `json:"glassDiscountWidthMm"  validate:"nullable,gte=0"`
	GlassDiscountHeightMm int      `json:"glassDiscountHeightMm" validate:"nullable,gte=0"`
	ProfitMarginPct       *float64 `json:"profitMarginPct" validate:"nullable,gte=0,lte=100"`
	Status                string   `json:"status" validate:"nullable,in=draft,published"`
}

// Service is the raw service record of a preset.
type Service struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Type        string   `json:"type" validate:"required,in=area,perimeter,fixed"`
	Unit        string   `json:"unit" validate:"required,in=sqm,ml,unit"`
	Rate        float64  `json:"rate" validate:"required,gt=0"`
	MinQuantity *float64 `json:"minQuantity" validate:"nullable,gt=0"`
}

// Solution is the raw glass-solution record of a preset.
type Solution struct {
	Key       string `json:"key"       validate:"required,snake_case,max=50"`
	NameEs    string `json:"nameEs"    validate:"required,max=255"`
	NameEn    string `json:"nameEn"    validate:"required,max=255"`
	Icon      string `json:"icon"      validate:"nullable,alpha_dash,max=50"`
	SortOrder int    `json:"sortOrder" validate:"nullable,gte=0"`
}

// SolutionMapping is an explicit glass-type↔solution assignment. When a
// preset carries mappings the classification engine is bypassed.
type SolutionMapping struct {
	GlassType   string `json:"glassType"   validate:"required"`
	Solution    string `json:"solution"    validate:"required"`
	Performance string `json:"performance" validate:"required,in=basic,standard,good,very_good,excellent"`
	Primary     bool   `json:"primary"`
}

// ------------------- Registry -------------------

var (
	mu       sync.Mutex
	registry = map[string]Preset{}
)

// Register adds a preset to the global registry. Call from init().
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()
	registry[p.Name] = p
}

// Get returns the named preset. The error lists the valid names so the CLI
// can print them verbatim.
func Get(name string) (Preset, error) {
	mu.Lock()
	defer mu.Unlock()
	p, ok := registry[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (valid: %v)", name, namesLocked())
	}
	return p, nil
}

// Names returns all registered preset names, sorted.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
