package seeding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitralapp/vitral/app/factories"
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/database/seeding"
)

func floatPtr(f float64) *float64 { return &f }

func testTenant() factories.TenantInput {
	return factories.TenantInput{
		BusinessName:      "Vitrales del Pacífico",
		Currency:          "COP",
		Locale:            "es-CO",
		Timezone:          "America/Bogota",
		QuoteValidityDays: 15,
	}
}

func testPreset() presets.Preset {
	return presets.Preset{
		Name: "test",
		Suppliers: []presets.Supplier{
			{Name: "Perfiles del Norte", MaterialType: models.MaterialPVC},
			{Name: "Aluminios Andinos", MaterialType: models.MaterialAluminum},
		},
		GlassTypes: []presets.GlassType{
			{Name: "Cristal Claro 4mm", ThicknessMm: 4, PricePerSqm: floatPtr(48_000)},
			{Name: "Templado 6mm", ThicknessMm: 6, PricePerSqm: floatPtr(95_000), Tempered: true, Purpose: models.PurposeSecurity},
		},
		Models: []presets.Model{
			{
				Name: "Ventana Corrediza VC-100", Supplier: "Perfiles del Norte",
				MinWidthMm: 400, MaxWidthMm: 2400, MinHeightMm: 400, MaxHeightMm: 2200,
				BasePrice: 180_000, CostPerMmWidth: 95, CostPerMmHeight: 80,
			},
		},
		Services: []presets.Service{
			{Name: "Instalación", Type: models.ServiceTypeArea, Unit: models.UnitSqm, Rate: 25_000},
		},
		Solutions: []presets.Solution{
			{Key: models.SolutionSecurity, NameEs: "Seguridad", NameEn: "Security", SortOrder: 1},
			{Key: models.SolutionSoundInsulation, NameEs: "Aislamiento acústico", NameEn: "Sound insulation", SortOrder: 2},
			{Key: models.SolutionGeneral, NameEs: "Uso general", NameEn: "General use", SortOrder: 3},
		},
	}
}

func TestRunSeedsWholePreset(t *testing.T) {
	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{})

	stats, err := orch.Run(context.Background(), testPreset(), testTenant())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Tenant.Inserted)
	assert.Equal(t, 2, stats.Suppliers.Inserted)
	assert.Equal(t, 2, stats.GlassTypes.Inserted)
	assert.Equal(t, 1, stats.Models.Inserted)
	assert.Equal(t, 1, stats.Services.Inserted)
	assert.Equal(t, 3, stats.Solutions.Inserted)
	assert.Equal(t, 0, stats.TotalFailed)
	assert.Equal(t, stats.TotalInserted,
		stats.Tenant.Inserted+stats.Suppliers.Inserted+stats.GlassTypes.Inserted+
			stats.Models.Inserted+stats.Services.Inserted+stats.Solutions.Inserted+
			stats.Assignments.Inserted)

	// Classifier path: plain glass gets the general assignment, tempered
	// security glass gets security plus sound insulation.
	assert.Equal(t, 3, stats.Assignments.Inserted)

	var model models.CatalogModel
	require.NoError(t, db.Preload("GlassTypes").Where("name = ?", "Ventana Corrediza VC-100").First(&model).Error)
	assert.Equal(t, models.StatusDraft, model.Status)
	assert.Len(t, model.GlassTypes, 2, "every glass type is attached as compatible")

	var tenant models.TenantConfig
	require.NoError(t, db.Where("key = ?", models.TenantConfigKey).First(&tenant).Error)
	assert.Equal(t, "Vitrales del Pacífico", tenant.BusinessName)
}

func TestRunExactlyOnePrimaryPerGlassType(t *testing.T) {
	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{})

	_, err := orch.Run(context.Background(), testPreset(), testTenant())
	require.NoError(t, err)

	var glassTypes []models.GlassType
	require.NoError(t, db.Find(&glassTypes).Error)
	for _, gt := range glassTypes {
		var primaries int64
		require.NoError(t, db.Model(&models.GlassTypeSolution{}).
			Where("glass_type_id = ? AND is_primary = ?", gt.ID, true).
			Count(&primaries).Error)
		assert.EqualValues(t, 1, primaries, "glass type %q", gt.Name)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{})
	ctx := context.Background()

	first, err := orch.Run(ctx, testPreset(), testTenant())
	require.NoError(t, err)

	second, err := orch.Run(ctx, testPreset(), testTenant())
	require.NoError(t, err)

	// The tenant row survives the clean stage, everything else is reseeded.
	assert.Equal(t, 1, second.Tenant.Updated)
	assert.Equal(t, 0, second.Tenant.Inserted)
	assert.Equal(t, first.TotalInserted-first.Tenant.Inserted,
		second.TotalInserted)
	assert.Equal(t, 0, second.TotalFailed)

	for _, table := range []interface{}{
		&models.ProfileSupplier{}, &models.GlassType{}, &models.CatalogModel{},
		&models.Service{}, &models.GlassSolution{}, &models.GlassTypeSolution{},
	} {
		var count int64
		require.NoError(t, db.Model(table).Count(&count).Error)
		assert.NotZero(t, count)
	}

	var names []string
	require.NoError(t, db.Model(&models.GlassType{}).Order("name").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Cristal Claro 4mm", "Templado 6mm"}, names)

	var tenants int64
	require.NoError(t, db.Model(&models.TenantConfig{}).Count(&tenants).Error)
	assert.EqualValues(t, 1, tenants, "tenant config stays a singleton")
}

func TestRunContinueOnErrorContainsBadModel(t *testing.T) {
	p := testPreset()
	p.Models = []presets.Model{
		p.Models[0],
		{
			Name: "Puerta Rota PR-1", Supplier: "Perfiles del Norte",
			MinWidthMm: 2400, MaxWidthMm: 400, // inverted on purpose
			MinHeightMm: 400, MaxHeightMm: 2200,
			BasePrice: 200_000, CostPerMmWidth: 95, CostPerMmHeight: 80,
		},
		{
			Name: "Puerta Batiente PB-200", Supplier: "Perfiles del Norte",
			MinWidthMm: 600, MaxWidthMm: 1200, MinHeightMm: 1800, MaxHeightMm: 2400,
			BasePrice: 320_000, CostPerMmWidth: 110, CostPerMmHeight: 95,
		},
	}

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{ContinueOnError: true})

	stats, err := orch.Run(context.Background(), p, testTenant())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Models.Inserted)
	assert.Equal(t, 1, stats.Models.Failed)
	require.Len(t, stats.Models.Errors, 1)
	assert.Equal(t, 1, stats.Models.Errors[0].Index, "error keeps the preset position")
	assert.Equal(t, seeding.ClassValidation, stats.Models.Errors[0].Class)
	assert.Equal(t, 1, stats.TotalFailed)

	var count int64
	require.NoError(t, db.Model(&models.CatalogModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRunAbortsOnFirstErrorByDefault(t *testing.T) {
	p := testPreset()
	p.GlassTypes[0].ThicknessMm = 0 // fails required,gt=0

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{})

	stats, err := orch.Run(context.Background(), p, testTenant())
	require.Error(t, err)

	var recErr seeding.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, seeding.ClassValidation, recErr.Class)
	assert.Equal(t, 0, recErr.Index)

	// Earlier stages completed before the abort.
	assert.Equal(t, 2, stats.Suppliers.Inserted)
}

func TestRunUnresolvedSupplierIsReferential(t *testing.T) {
	p := testPreset()
	p.Models[0].Supplier = "No Such Supplier"

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{ContinueOnError: true})

	stats, err := orch.Run(context.Background(), p, testTenant())
	require.NoError(t, err)

	require.Len(t, stats.Models.Errors, 1)
	assert.Equal(t, seeding.ClassReferential, stats.Models.Errors[0].Class)
	assert.Equal(t, 1, stats.TotalFailed)
}

func TestRunExplicitMappingsBypassClassifier(t *testing.T) {
	p := testPreset()
	p.SolutionMappings = []presets.SolutionMapping{
		{GlassType: "Cristal Claro 4mm", Solution: models.SolutionGeneral, Performance: models.RatingStandard, Primary: true},
		{GlassType: "Templado 6mm", Solution: models.SolutionSecurity, Performance: models.RatingVeryGood, Primary: true},
	}

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{})

	stats, err := orch.Run(context.Background(), p, testTenant())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Assignments.Inserted)

	var count int64
	require.NoError(t, db.Model(&models.GlassTypeSolution{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var row models.GlassTypeSolution
	require.NoError(t, db.Joins("JOIN glass_types ON glass_types.id = glass_type_solutions.glass_type_id").
		Where("glass_types.name = ?", "Templado 6mm").First(&row).Error)
	assert.Equal(t, models.RatingVeryGood, row.Performance)
	assert.True(t, row.IsPrimary)
}

func TestRunMappingWithUnknownGlassType(t *testing.T) {
	p := testPreset()
	p.SolutionMappings = []presets.SolutionMapping{
		{GlassType: "Fantasma 3mm", Solution: models.SolutionGeneral, Performance: models.RatingStandard, Primary: true},
	}

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{ContinueOnError: true})

	stats, err := orch.Run(context.Background(), p, testTenant())
	require.NoError(t, err)

	require.Len(t, stats.Assignments.Errors, 1)
	assert.Equal(t, seeding.ClassReferential, stats.Assignments.Errors[0].Class)
}

func TestRunSkipValidationPersistsAnyway(t *testing.T) {
	p := testPreset()
	p.Models[0].MinWidthMm = 2400
	p.Models[0].MaxWidthMm = 400

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{SkipValidation: true})

	stats, err := orch.Run(context.Background(), p, testTenant())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Models.Inserted)
	assert.Equal(t, 0, stats.TotalFailed)
}

func TestRunRejectsInvalidTenant(t *testing.T) {
	tenant := testTenant()
	tenant.BusinessName = ""

	db := openTestDB(t)
	orch := seeding.NewOrchestrator(db, discardLog(), seeding.Options{})

	_, err := orch.Run(context.Background(), testPreset(), tenant)
	require.Error(t, err)

	var recErr seeding.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, seeding.ClassValidation, recErr.Class)
}
