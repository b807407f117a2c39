package presets

func init() {
	Register(Preset{
		Name:        "full-catalog",
		Description: "Complete production catalogue; solution assignments are computed by the classifier.",
		Suppliers: []Supplier{
			{Name: "Perfiles del Norte", MaterialType: "PVC", Notes: "Primary PVC profile supplier."},
			{Name: "Alumtek", MaterialType: "ALUMINUM", Notes: "Architectural aluminium lines."},
			{Name: "Maderas La Sabana", MaterialType: "WOOD", Notes: "Premium wood frames."},
			{Name: "Eurovent Mixta", MaterialType: "MIXED", Notes: "Wood-aluminium hybrid systems."},
		},
		GlassTypes: []GlassType{
			{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: floatPtr(48000), Purpose: "general"},
			{Name: "Cristal Claro 6mm", ThicknessMm: 6, PricePerSqm: floatPtr(64000), Purpose: "general"},
			{Name: "Templado 6mm", ThicknessMm: 6, PricePerSqm: floatPtr(95000), Tempered: true, Purpose: "security"},
			{Name: "Templado 10mm", ThicknessMm: 10, PricePerSqm: floatPtr(155000), Tempered: true, Purpose: "security"},
			{Name: "Laminado 3+3", ThicknessMm: 6, PricePerSqm: floatPtr(128000), Laminated: true, Purpose: "security"},
			{Name: "Laminado Templado 4+4", ThicknessMm: 8, PricePerSqm: floatPtr(198000), Tempered: true, Laminated: true, Purpose: "security"},
			{
				Name: "DVH Claro 18mm", ThicknessMm: 18, PricePerSqm: floatPtr(225000),
				UValue: floatPtr(2.8), SolarFactor: floatPtr(0.72), LightTransmission: floatPtr(0.81),
				Purpose: "insulation",
			},
			{
				Name: "DVH Low-E 20mm", ThicknessMm: 20, PricePerSqm: floatPtr(310000),
				LowE: true, UValue: floatPtr(1.8), SolarFactor: floatPtr(0.42), LightTransmission: floatPtr(0.71),
				Purpose: "insulation",
			},
			{
				Name: "Triple Vidrio Low-E 36mm", ThicknessMm: 36, PricePerSqm: floatPtr(480000),
				LowE: true, TripleGlazed: true, UValue: floatPtr(0.9), SolarFactor: floatPtr(0.35), LightTransmission: floatPtr(0.65),
				Purpose: "insulation",
			},
			{Name: "Esmerilado 5mm", ThicknessMm: 5, PricePerSqm: floatPtr(72000), Purpose: "decorative"},
			// Price intentionally omitted: exercises the fallback price.
			{Name: "Bronce 4mm", ThicknessMm: 4, Purpose: "decorative"},
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
				Name: "Ventana Corrediza VC-150", Supplier: "Perfiles del Norte",
				MinWidthMm: 500, MaxWidthMm: 3000, MinHeightMm: 500, MaxHeightMm: 2200,
				BasePrice: 230000, CostPerMmWidth: 105, CostPerMmHeight: 95,
				ProfitMarginPct: floatPtr(18),
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
				Name: "Fachada Flotante FF-500", Supplier: "Alumtek",
				MinWidthMm: 1000, MaxWidthMm: 6000, MinHeightMm: 1000, MaxHeightMm: 4000,
				BasePrice: 980000, CostPerMmWidth: 260, CostPerMmHeight: 240,
				AccessoryPrice: floatPtr(350000), ProfitMarginPct: floatPtr(28),
				GlassDiscountWidthMm: 100, GlassDiscountHeightMm: 100,
				Status: "draft",
			},
			{
				Name: "Puerta Batiente PB-200", Supplier: "Perfiles del Norte",
				MinWidthMm: 600, MaxWidthMm: 1200, MinHeightMm: 1800, MaxHeightMm: 2400,
				BasePrice: 420000, CostPerMmWidth: 140, CostPerMmHeight: 120,
				AccessoryPrice: floatPtr(85000),
				GlassDiscountWidthMm: 80, GlassDiscountHeightMm: 80,
				Status: "published",
			},
			{
				Name: "Puerta Ventana Madera PVM-400", Supplier: "Maderas La Sabana",
				MinWidthMm: 700, MaxWidthMm: 1600, MinHeightMm: 1900, MaxHeightMm: 2600,
				BasePrice: 760000, CostPerMmWidth: 190, CostPerMmHeight: 170,
				AccessoryPrice: floatPtr(120000), ProfitMarginPct: floatPtr(30),
				GlassDiscountWidthMm: 90, GlassDiscountHeightMm: 90,
				Status: "published",
			},
			{
				Name: "Ventana Oscilobatiente Euro OB-600", Supplier: "Eurovent Mixta",
				MinWidthMm: 450, MaxWidthMm: 1600, MinHeightMm: 450, MaxHeightMm: 1800,
				BasePrice: 540000, CostPerMmWidth: 160, CostPerMmHeight: 150,
				ProfitMarginPct: floatPtr(25),
				GlassDiscountWidthMm: 75, GlassDiscountHeightMm: 75,
				Status: "published",
			},
		},
		Services: []Service{
			{Name: "Instalación", Type: "area", Unit: "sqm", Rate: 35000, MinQuantity: floatPtr(1)},
			{Name: "Instalación en altura", Type: "area", Unit: "sqm", Rate: 58000, MinQuantity: floatPtr(2)},
			{Name: "Sellado perimetral", Type: "perimeter", Unit: "ml", Rate: 8000},
			{Name: "Desmonte de ventana existente", Type: "perimeter", Unit: "ml", Rate: 5500},
			{Name: "Transporte urbano", Type: "fixed", Unit: "unit", Rate: 60000},
			{Name: "Visita técnica", Type: "fixed", Unit: "unit", Rate: 45000},
		},
		Solutions: defaultSolutions(),
	})
}
