// Package factories contains the validation gateways of the seeding
// pipeline: pure functions that take a raw preset record, apply schema and
// business rules, and return either a typed catalogue model or a list of
// structured field errors. Nothing in this package touches the database.
package factories

import "github.com/vitralapp/vitral/pkg/validate"

// Options tweaks gateway behaviour per call. Overrides, when set, has its
// non-zero fields shallow-merged over the input before defaults and
// validation are applied. SkipValidation maps the record through untouched
// (trusted-caller escape hatch).
type Options[T any] struct {
	SkipValidation bool
	Overrides      *T
}

// Price sanity ceiling (COP). Catches unit mix-ups like entering a total
// project price where a per-sqm rate belongs.
const MaxUnitPrice = 100_000_000

// DefaultGlassPricePerSqm is the fallback for glass types seeded without a
// price.
const DefaultGlassPricePerSqm = 45_000

// solarLightTolerance is how far the solar factor may exceed the light
// transmission before the pair is considered physically inconsistent.
const solarLightTolerance = 0.05

func ceilingError(path string, value float64) validate.FieldError {
	return validate.NewFieldError("price_ceiling", path,
		"The value exceeds the unit price sanity ceiling.",
		map[string]any{"expected": "< 100000000", "received": value})
}
