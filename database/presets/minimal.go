package presets

func init() {
	Register(Preset{
		Name:        "minimal",
		Description: "Smallest usable catalogue: one supplier, basic glass, one model per opening type.",
		Suppliers: []Supplier{
			{Name: "Perfiles del Norte", MaterialType: "PVC", Notes: "Primary PVC profile supplier."},
		},
		GlassTypes: []GlassType{
			{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: floatPtr(48000), Purpose: "general"},
			{Name: "Templado 6mm", ThicknessMm: 6, PricePerSqm: floatPtr(95000), Tempered: true, Purpose: "security"},
			{Name: "Laminado 8mm", ThicknessMm: 8, PricePerSqm: floatPtr(135000), Laminated: true, Purpose: "security"},
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
				Name: "Puerta Batiente PB-200", Supplier: "Perfiles del Norte",
				MinWidthMm: 600, MaxWidthMm: 1200, MinHeightMm: 1800, MaxHeightMm: 2400,
				BasePrice: 420000, CostPerMmWidth: 140, CostPerMmHeight: 120,
				AccessoryPrice: floatPtr(85000),
				GlassDiscountWidthMm: 80, GlassDiscountHeightMm: 80,
				Status: "published",
			},
		},
		Services: []Service{
			{Name: "Instalación", Type: "area", Unit: "sqm", Rate: 35000, MinQuantity: floatPtr(1)},
			{Name: "Sellado perimetral", Type: "perimeter", Unit: "ml", Rate: 8000},
		},
		Solutions: defaultSolutions(),
	})
}
