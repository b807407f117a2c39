package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitralapp/vitral/app/catalog"
	"github.com/vitralapp/vitral/app/models"
)

func primaryCount(out []catalog.Assignment) int {
	n := 0
	for _, a := range out {
		if a.Primary {
			n++
		}
	}
	return n
}

func find(out []catalog.Assignment, key string) (catalog.Assignment, bool) {
	for _, a := range out {
		if a.SolutionKey == key {
			return a, true
		}
	}
	return catalog.Assignment{}, false
}

func TestClassifyPlainGeneralGlass(t *testing.T) {
	out := catalog.Classify(catalog.Characteristics{
		ThicknessMm: 4,
		Purpose:     models.PurposeGeneral,
	})

	require.Len(t, out, 1)
	assert.Equal(t, models.SolutionGeneral, out[0].SolutionKey)
	assert.Equal(t, models.RatingStandard, out[0].Rating)
	assert.True(t, out[0].Primary)
}

func TestClassifyTemperedSecurityGlass(t *testing.T) {
	out := catalog.Classify(catalog.Characteristics{
		Tempered:    true,
		ThicknessMm: 6,
		Purpose:     models.PurposeSecurity,
	})

	sec, ok := find(out, models.SolutionSecurity)
	require.True(t, ok)
	assert.Equal(t, models.RatingGood, sec.Rating)
	assert.True(t, sec.Primary)

	snd, ok := find(out, models.SolutionSoundInsulation)
	require.True(t, ok)
	assert.Equal(t, models.RatingStandard, snd.Rating)

	assert.Equal(t, 1, primaryCount(out))
}

func TestClassifyLaminatedTemperedThickGlass(t *testing.T) {
	out := catalog.Classify(catalog.Characteristics{
		Tempered:    true,
		Laminated:   true,
		ThicknessMm: 10,
		Purpose:     models.PurposeSecurity,
	})

	sec, ok := find(out, models.SolutionSecurity)
	require.True(t, ok)
	assert.Equal(t, models.RatingExcellent, sec.Rating)

	snd, ok := find(out, models.SolutionSoundInsulation)
	require.True(t, ok)
	assert.Equal(t, models.RatingExcellent, snd.Rating)

	thm, ok := find(out, models.SolutionThermalInsulation)
	require.True(t, ok)
	assert.Equal(t, models.RatingStandard, thm.Rating)

	_, ok = find(out, models.SolutionEnergyEfficiency)
	assert.False(t, ok, "no low-e or triple glazing, no energy assignment")
}

func TestClassifyLowETripleGlazedInsulation(t *testing.T) {
	out := catalog.Classify(catalog.Characteristics{
		LowE:         true,
		TripleGlazed: true,
		ThicknessMm:  24,
		Purpose:      models.PurposeInsulation,
	})

	thm, ok := find(out, models.SolutionThermalInsulation)
	require.True(t, ok)
	assert.Equal(t, models.RatingExcellent, thm.Rating)
	assert.True(t, thm.Primary)

	eng, ok := find(out, models.SolutionEnergyEfficiency)
	require.True(t, ok)
	assert.Equal(t, models.RatingExcellent, eng.Rating)

	snd, ok := find(out, models.SolutionSoundInsulation)
	require.True(t, ok)
	assert.Equal(t, models.RatingVeryGood, snd.Rating)

	assert.Equal(t, 1, primaryCount(out))
}

func TestClassifyDecorativeGlass(t *testing.T) {
	out := catalog.Classify(catalog.Characteristics{
		ThicknessMm: 4,
		Purpose:     models.PurposeDecorative,
	})

	require.Len(t, out, 1)
	assert.Equal(t, models.SolutionDecorative, out[0].SolutionKey)
	assert.True(t, out[0].Primary)
}

func TestClassifyGeneralPurposeKeepsGeneralPrimary(t *testing.T) {
	out := catalog.Classify(catalog.Characteristics{
		Laminated:   true,
		ThicknessMm: 6,
		Purpose:     models.PurposeGeneral,
	})

	sec, ok := find(out, models.SolutionSecurity)
	require.True(t, ok)
	assert.Equal(t, models.RatingVeryGood, sec.Rating)
	assert.False(t, sec.Primary)

	gen, ok := find(out, models.SolutionGeneral)
	require.True(t, ok)
	assert.True(t, gen.Primary)

	assert.Equal(t, 1, primaryCount(out))
}

func TestClassifyForcesPrimaryWhenNoneMatches(t *testing.T) {
	// Insulation purpose but nothing triggers the thermal assignment:
	// the first assignment is promoted so exactly one primary remains.
	out := catalog.Classify(catalog.Characteristics{
		ThicknessMm: 8,
		Purpose:     models.PurposeInsulation,
	})

	require.NotEmpty(t, out)
	assert.True(t, out[0].Primary)
	assert.Equal(t, 1, primaryCount(out))
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := catalog.Characteristics{
		Tempered:    true,
		Laminated:   true,
		ThicknessMm: 12,
		Purpose:     models.PurposeSecurity,
	}
	assert.Equal(t, catalog.Classify(c), catalog.Classify(c))
}
