package presets

func init() {
	Register(Preset{
		Name:        "demo-client",
		Description: "Showroom catalogue for client demos, with a curated solution mapping.",
		Suppliers: []Supplier{
			{Name: "Perfiles del Norte", MaterialType: "PVC", Notes: "Primary PVC profile supplier."},
			{Name: "Alumtek", MaterialType: "ALUMINUM", Notes: "Architectural aluminium lines."},
			{Name: "Maderas La Sabana", MaterialType: "WOOD", Active: boolPtr(false), Notes: "On hold pending new price list."},
		},
		GlassTypes: []GlassType{
			{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: floatPtr(48000), Purpose: "general"},
			{Name: "Templado 6mm", ThicknessMm: 6, PricePerSqm: floatPtr(95000), Tempered: true, Purpose: "security"},
			{Name: "Laminado 3+3", ThicknessMm: 6, PricePerSqm: floatPtr(128000), Laminated: true, Purpose: "security"},
			{
				Name: "DVH Low-E 20mm", ThicknessMm: 20, PricePerSqm: floatPtr(310000),
				LowE: true, UValue: floatPtr(1.8), SolarFactor: floatPtr(0.42), LightTransmission: floatPtr(0.71),
				Purpose: "insulation",
			},
			{Name: "Esmerilado 5mm", ThicknessMm: 5, PricePerSqm: floatPtr(72000), Purpose: "decorative"},
		},
		Models: []Model{
			{
				Name: "Ventana Corrediza VC-100", Supplier: "Perfiles del Norte",
				MinWidthMm: 400, MaxWidthMm: 2400, MinHeightMm: 400, MaxHeightMm: 1800,
				BasePrice: 180000, CostPerMmWidth: 95, CostPerMmHeight: 85,
				GlassDiscountWidthMm: 60, GlassDiscountHeightMm: 60,
				Status: "published",
			},
			{
				Name: "Ventana Proyectante VP-300", Supplier: "Alumtek",
				MinWidthMm: 350, MaxWidthMm: 1500, MinHeightMm: 350, MaxHeightMm: 1500,
				BasePrice: 260000, CostPerMmWidth: 110, CostPerMmHeight: 105,
				ProfitMarginPct: floatPtr(22),
				GlassDiscountWidthMm: 70, GlassDiscountHeightMm: 70,
				Status: "published",
			},
			{
				Name: "Puerta Batiente PB-200", Supplier: "Perfiles del Norte",
				MinWidthMm: 600, MaxWidthMm: 1200, MinHeightMm: 1800, MaxHeightMm: 2400,
				BasePrice: 420000, CostPerMmWidth: 140, CostPerMmHeight: 120,
				AccessoryPrice: floatPtr(85000),
				GlassDiscountWidthMm: 80, GlassDiscountHeightMm: 80,
				Status: "draft",
			},
		},
		Services: []Service{
			{Name: "Instalación", Type: "area", Unit: "sqm", Rate: 35000, MinQuantity: floatPtr(1)},
			{Name: "Sellado perimetral", Type: "perimeter", Unit: "ml", Rate: 8000},
			{Name: "Transporte urbano", Type: "fixed", Unit: "unit", Rate: 60000},
		},
		Solutions: defaultSolutions(),
		// Curated mapping: the demo narrative needs exact ratings, so the
		// classifier is bypassed for this preset.
		SolutionMappings: []SolutionMapping{
			{GlassType: "Cristal Claro 4mm", Solution: "general", Performance: "standard", Primary: true},
			{GlassType: "Templado 6mm", Solution: "security", Performance: "good", Primary: true},
			{GlassType: "Templado 6mm", Solution: "sound_insulation", Performance: "standard"},
			{GlassType: "Laminado 3+3", Solution: "security", Performance: "very_good", Primary: true},
			{GlassType: "Laminado 3+3", Solution: "sound_insulation", Performance: "good"},
			{GlassType: "DVH Low-E 20mm", Solution: "thermal_insulation", Performance: "excellent", Primary: true},
			{GlassType: "DVH Low-E 20mm", Solution: "energy_efficiency", Performance: "very_good"},
			{GlassType: "Esmerilado 5mm", Solution: "decorative", Performance: "standard", Primary: true},
		},
	})
}
