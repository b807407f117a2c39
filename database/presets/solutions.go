package presets

// defaultSolutions is the canonical solution catalogue shared by every
// preset. Keys must match the models.Solution* constants used by the
// classification engine.
func defaultSolutions() []Solution {
	return []Solution{
		{Key: "security", NameEs: "Seguridad", NameEn: "Security", Icon: "shield", SortOrder: 1},
		{Key: "thermal_insulation", NameEs: "Aislamiento térmico", NameEn: "Thermal insulation", Icon: "thermometer", SortOrder: 2},
		{Key: "sound_insulation", NameEs: "Aislamiento acústico", NameEn: "Sound insulation", Icon: "volume-off", SortOrder: 3},
		{Key: "energy_efficiency", NameEs: "Eficiencia energética", NameEn: "Energy efficiency", Icon: "leaf", SortOrder: 4},
		{Key: "decorative", NameEs: "Decorativo", NameEn: "Decorative", Icon: "palette", SortOrder: 5},
		{Key: "general", NameEs: "Uso general", NameEn: "General use", Icon: "window", SortOrder: 6},
	}
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
