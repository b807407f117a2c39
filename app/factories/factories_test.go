package factories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitralapp/vitral/app/factories"
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func hasCode(errs []validate.FieldError, code string) bool {
	for _, e := range errs {
		if e.Code == code {
			return true
		}
	}
	return false
}

// ── Supplier ────────────────────────────────────────────────────────────────

func TestSupplierDefaultsActive(t *testing.T) {
	got, errs := factories.Supplier(presets.Supplier{
		Name:         "Perfiles del Norte",
		MaterialType: models.MaterialPVC,
	}, factories.Options[presets.Supplier]{})

	require.Empty(t, errs)
	assert.True(t, got.Active)
	assert.Equal(t, models.MaterialPVC, got.MaterialType)
}

func TestSupplierRejectsUnknownMaterial(t *testing.T) {
	_, errs := factories.Supplier(presets.Supplier{
		Name:         "Acero SA",
		MaterialType: "STEEL",
	}, factories.Options[presets.Supplier]{})

	require.NotEmpty(t, errs)
	assert.Equal(t, "materialType", errs[0].Path)
}

func TestSupplierOverrides(t *testing.T) {
	got, errs := factories.Supplier(presets.Supplier{
		Name:         "Perfiles del Norte",
		MaterialType: models.MaterialPVC,
	}, factories.Options[presets.Supplier]{
		Overrides: &presets.Supplier{Active: boolPtr(false)},
	})

	require.Empty(t, errs)
	assert.False(t, got.Active)
}

func TestSupplierSkipValidation(t *testing.T) {
	got, errs := factories.Supplier(presets.Supplier{
		Name:         "X", // too short, would fail min=2
		MaterialType: "STEEL",
	}, factories.Options[presets.Supplier]{SkipValidation: true})

	require.Empty(t, errs)
	assert.Equal(t, "X", got.Name)
}

// ── GlassType ───────────────────────────────────────────────────────────────

func TestGlassTypePriceFallback(t *testing.T) {
	got, errs := factories.GlassType(presets.GlassType{
		Name:        "Bronce 4mm",
		ThicknessMm: 4,
	}, factories.Options[presets.GlassType]{})

	require.Empty(t, errs)
	assert.Equal(t, float64(factories.DefaultGlassPricePerSqm), got.PricePerSqm)
	assert.Equal(t, models.PurposeGeneral, got.Purpose)
}

func TestGlassTypePriceCeiling(t *testing.T) {
	_, errs := factories.GlassType(presets.GlassType{
		Name:        "Cristal Claro 4mm",
		ThicknessMm: 4,
		PricePerSqm: floatPtr(250_000_000),
	}, factories.Options[presets.GlassType]{})

	assert.True(t, hasCode(errs, "price_ceiling"))
}

func TestGlassTypeSolarLightConsistency(t *testing.T) {
	_, errs := factories.GlassType(presets.GlassType{
		Name:              "Control Solar 6mm",
		ThicknessMm:       6,
		PricePerSqm:       floatPtr(120_000),
		SolarFactor:       floatPtr(0.80),
		LightTransmission: floatPtr(0.40),
	}, factories.Options[presets.GlassType]{})

	assert.True(t, hasCode(errs, "solar_exceeds_light"))

	// Within the tolerance band the pair is accepted.
	_, errs = factories.GlassType(presets.GlassType{
		Name:              "Control Solar 6mm",
		ThicknessMm:       6,
		PricePerSqm:       floatPtr(120_000),
		SolarFactor:       floatPtr(0.44),
		LightTransmission: floatPtr(0.40),
	}, factories.Options[presets.GlassType]{})

	assert.Empty(t, errs)
}

// ── Model ───────────────────────────────────────────────────────────────────

func validModel() presets.Model {
	return presets.Model{
		Name:            "Ventana Corrediza VC-100",
		Supplier:        "Perfiles del Norte",
		MinWidthMm:      400,
		MaxWidthMm:      2400,
		MinHeightMm:     400,
		MaxHeightMm:     2200,
		BasePrice:       180_000,
		CostPerMmWidth:  95,
		CostPerMmHeight: 80,
	}
}

func TestModelDefaultsToDraft(t *testing.T) {
	got, errs := factories.Model(validModel(), factories.Options[presets.Model]{})
	require.Empty(t, errs)
	assert.Equal(t, models.StatusDraft, got.Status)
}

func TestModelRejectsInvertedDimensions(t *testing.T) {
	in := validModel()
	in.MinWidthMm = 2400
	in.MaxWidthMm = 400

	_, errs := factories.Model(in, factories.Options[presets.Model]{})
	require.NotEmpty(t, errs)
	assert.True(t, hasCode(errs, "dimension_order"))
	assert.Equal(t, "minWidthMm", errs[0].Path)
}

func TestModelRejectsEqualHeightBounds(t *testing.T) {
	in := validModel()
	in.MinHeightMm = 2200
	in.MaxHeightMm = 2200

	_, errs := factories.Model(in, factories.Options[presets.Model]{})
	assert.True(t, hasCode(errs, "dimension_order"))
}

// ── Service ─────────────────────────────────────────────────────────────────

func TestServiceUnitPairing(t *testing.T) {
	cases := []struct {
		serviceType string
		unit        string
		ok          bool
	}{
		{models.ServiceTypeArea, models.UnitSqm, true},
		{models.ServiceTypePerimeter, models.UnitMl, true},
		{models.ServiceTypeFixed, models.UnitUnit, true},
		{models.ServiceTypeArea, models.UnitMl, false},
		{models.ServiceTypeFixed, models.UnitSqm, false},
	}

	for _, tc := range cases {
		_, errs := factories.Service(presets.Service{
			Name: "Instalación",
			Type: tc.serviceType,
			Unit: tc.unit,
			Rate: 25_000,
		}, factories.Options[presets.Service]{})

		if tc.ok {
			assert.Empty(t, errs, "%s/%s should pass", tc.serviceType, tc.unit)
		} else {
			assert.True(t, hasCode(errs, "unit_mismatch"), "%s/%s should fail", tc.serviceType, tc.unit)
		}
	}
}

// ── Solution ────────────────────────────────────────────────────────────────

func TestSolutionDerivesSlug(t *testing.T) {
	got, errs := factories.Solution(presets.Solution{
		Key:    models.SolutionThermalInsulation,
		NameEs: "Aislamiento térmico",
		NameEn: "Thermal insulation",
	}, factories.Options[presets.Solution]{})

	require.Empty(t, errs)
	assert.Equal(t, "thermal-insulation", got.Slug)
}

func TestSolutionRejectsNonSnakeKey(t *testing.T) {
	_, errs := factories.Solution(presets.Solution{
		Key:    "Thermal-Insulation",
		NameEs: "Aislamiento térmico",
		NameEn: "Thermal insulation",
	}, factories.Options[presets.Solution]{})

	require.NotEmpty(t, errs)
	assert.Equal(t, "key", errs[0].Path)
}

// ── Tenant ──────────────────────────────────────────────────────────────────

func validTenant() factories.TenantInput {
	return factories.TenantInput{
		BusinessName:      "Vitrales del Pacífico",
		Currency:          "COP",
		Locale:            "es-CO",
		Timezone:          "America/Bogota",
		QuoteValidityDays: 15,
	}
}

func TestTenantValid(t *testing.T) {
	got, errs := factories.Tenant(validTenant(), factories.Options[factories.TenantInput]{})
	require.Empty(t, errs)
	assert.Equal(t, models.TenantConfigKey, got.Key)
	assert.Equal(t, "COP", got.Currency)
}

func TestTenantRejectsBadCurrencyAndLocale(t *testing.T) {
	in := validTenant()
	in.Currency = "pesos"
	in.Locale = "spanish"

	_, errs := factories.Tenant(in, factories.Options[factories.TenantInput]{})
	assert.True(t, hasCode(errs, "regex"))
	require.NotEmpty(t, errs)
}

func TestTenantRejectsUnknownTimezone(t *testing.T) {
	in := validTenant()
	in.Timezone = "America/Springfield"

	_, errs := factories.Tenant(in, factories.Options[factories.TenantInput]{})
	assert.True(t, hasCode(errs, "timezone"))
}

func TestTenantRequiresBusinessName(t *testing.T) {
	in := validTenant()
	in.BusinessName = ""

	_, errs := factories.Tenant(in, factories.Options[factories.TenantInput]{})
	require.NotEmpty(t, errs)
	assert.Equal(t, "businessName", errs[0].Path)
}
