package factories

import (
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

// GlassType validates a raw glass-type record and maps it to a GlassType
// model. A missing price falls back to DefaultGlassPricePerSqm; a missing
// purpose defaults to general.
func GlassType(in presets.GlassType, opts Options[presets.GlassType]) (models.GlassType, []validate.FieldError) {
	if opts.Overrides != nil {
		in = mergeGlassType(in, *opts.Overrides)
	}

	if !opts.SkipValidation {
		errs := validate.Struct(in)

		if in.PricePerSqm != nil && *in.PricePerSqm >= MaxUnitPrice {
			errs = append(errs, ceilingError("pricePerSqm", *in.PricePerSqm))
		}

		// A solar factor meaningfully above the light transmission is not
		// physically plausible for architectural glass.
		if in.SolarFactor != nil && in.LightTransmission != nil &&
			*in.SolarFactor > *in.LightTransmission+solarLightTolerance {
			errs = append(errs, validate.NewFieldError("solar_exceeds_light", "solarFactor",
				"The solar factor must not exceed the light transmission by more than the tolerance.",
				map[string]any{
					"expected": "<= lightTransmission + 0.05",
					"received": *in.SolarFactor,
				}))
		}

		if len(errs) > 0 {
			return models.GlassType{}, errs
		}
	}

	price := float64(DefaultGlassPricePerSqm)
	if in.PricePerSqm != nil {
		price = *in.PricePerSqm
	}
	purpose := in.Purpose
	if purpose == "" {
		purpose = models.PurposeGeneral
	}

	return models.GlassType{
		Name:              in.Name,
		ThicknessMm:       in.ThicknessMm,
		PricePerSqm:       price,
		UValue:            in.UValue,
		SolarFactor:       in.SolarFactor,
		LightTransmission: in.LightTransmission,
		Tempered:          in.Tempered,
		Laminated:         in.Laminated,
		LowE:              in.LowE,
		TripleGlazed:      in.TripleGlazed,
		Purpose:           purpose,
	}, nil
}

func mergeGlassType(base, over presets.GlassType) presets.GlassType {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.ThicknessMm != 0 {
		base.ThicknessMm = over.ThicknessMm
	}
	if over.PricePerSqm != nil {
		base.PricePerSqm = over.PricePerSqm
	}
	if over.UValue != nil {
		base.UValue = over.UValue
	}
	if over.SolarFactor != nil {
		base.SolarFactor = over.SolarFactor
	}
	if over.LightTransmission != nil {
		base.LightTransmission = over.LightTransmission
	}
	if over.Tempered {
		base.Tempered = true
	}
	if over.Laminated {
		base.Laminated = true
	}
	if over.LowE {
		base.LowE = true
	}
	if over.TripleGlazed {
		base.TripleGlazed = true
	}
	if over.Purpose != "" {
		base.Purpose = over.Purpose
	}
	return base
}
