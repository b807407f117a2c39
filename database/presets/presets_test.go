package presets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitralapp/vitral/app/factories"
	"github.com/vitralapp/vitral/database/presets"
)

func TestBuiltinPresetsRegistered(t *testing.T) {
	assert.Equal(t, []string{"demo-client", "full-catalog", "minimal"}, presets.Names())
}

func TestGetUnknownPresetListsValidNames(t *testing.T) {
	_, err := presets.Get("gigantic")
	require.Error(t, err)
	for _, name := range presets.Names() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestEveryPresetCarriesTheCanonicalSolutions(t *testing.T) {
	want := []string{"security", "thermal_insulation", "sound_insulation",
		"energy_efficiency", "decorative", "general"}

	for _, name := range presets.Names() {
		p, err := presets.Get(name)
		require.NoError(t, err)

		keys := make(map[string]bool, len(p.Solutions))
		for _, s := range p.Solutions {
			keys[s.Key] = true
		}
		for _, k := range want {
			assert.True(t, keys[k], "preset %s is missing solution %s", name, k)
		}
	}
}

// Every record shipped in a built-in preset must clear its own gateway:
// a preset that cannot seed cleanly is a packaging bug.
func TestBuiltinPresetRecordsPassTheirGateways(t *testing.T) {
	for _, name := range presets.Names() {
		p, err := presets.Get(name)
		require.NoError(t, err)

		for i, r := range p.Suppliers {
			_, errs := factories.Supplier(r, factories.Options[presets.Supplier]{})
			assert.Empty(t, errs, "%s suppliers[%d] %s", name, i, r.Name)
		}
		for i, r := range p.GlassTypes {
			_, errs := factories.GlassType(r, factories.Options[presets.GlassType]{})
			assert.Empty(t, errs, "%s glassTypes[%d] %s", name, i, r.Name)
		}
		for i, r := range p.Models {
			_, errs := factories.Model(r, factories.Options[presets.Model]{})
			assert.Empty(t, errs, "%s models[%d] %s", name, i, r.Name)
		}
		for i, r := range p.Services {
			_, errs := factories.Service(r, factories.Options[presets.Service]{})
			assert.Empty(t, errs, "%s services[%d] %s", name, i, r.Name)
		}
		for i, r := range p.Solutions {
			_, errs := factories.Solution(r, factories.Options[presets.Solution]{})
			assert.Empty(t, errs, "%s solutions[%d] %s", name, i, r.Key)
		}
	}
}

func TestModelSupplierReferencesResolveWithinPreset(t *testing.T) {
	for _, name := range presets.Names() {
		p, err := presets.Get(name)
		require.NoError(t, err)

		suppliers := make(map[string]bool, len(p.Suppliers))
		for _, s := range p.Suppliers {
			suppliers[s.Name] = true
		}
		for _, m := range p.Models {
			assert.True(t, suppliers[m.Supplier],
				"preset %s model %q references unknown supplier %q", name, m.Name, m.Supplier)
		}
	}
}

func TestMappingReferencesResolveWithinPreset(t *testing.T) {
	for _, name := range presets.Names() {
		p, err := presets.Get(name)
		require.NoError(t, err)

		glass := make(map[string]bool, len(p.GlassTypes))
		for _, g := range p.GlassTypes {
			glass[g.Name] = true
		}
		solutions := make(map[string]bool, len(p.Solutions))
		for _, s := range p.Solutions {
			solutions[s.Key] = true
		}

		for _, m := range p.SolutionMappings {
			assert.True(t, glass[m.GlassType],
				"preset %s mapping references unknown glass %q", name, m.GlassType)
			assert.True(t, solutions[m.Solution],
				"preset %s mapping references unknown solution %q", name, m.Solution)
		}
	}
}

func TestPresetNamesAreKebabCase(t *testing.T) {
	for _, name := range presets.Names() {
		assert.Equal(t, strings.ToLower(name), name)
		assert.NotContains(t, name, " ")
		assert.NotContains(t, name, "_")
	}
}
