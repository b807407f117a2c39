package factories

import (
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

// Service validates a raw service record. The billing type fully determines
// the unit (area→sqm, perimeter→ml, fixed→unit); a mismatched pair is
// rejected rather than corrected.
func Service(in presets.Service, opts Options[presets.Service]) (models.Service, []validate.FieldError) {
	if opts.Overrides != nil {
		in = mergeService(in, *opts.Overrides)
	}

	if !opts.SkipValidation {
		errs := validate.Struct(in)

		if want := models.ServiceUnitFor(in.Type); want != "" && in.Unit != want {
			errs = append(errs, validate.NewFieldError("unit_mismatch", "unit",
				"The unit does not match the billing type.",
				map[string]any{"expected": want, "received": in.Unit}))
		}
		if in.Rate >= MaxUnitPrice {
			errs = append(errs, ceilingError("rate", in.Rate))
		}

		if len(errs) > 0 {
			return models.Service{}, errs
		}
	}

	return models.Service{
		Name:        in.Name,
		Type:        in.Type,
		Unit:        in.Unit,
		Rate:        in.Rate,
		MinQuantity: in.MinQuantity,
	}, nil
}

func mergeService(base, over presets.Service) presets.Service {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.Type != "" {
		base.Type = over.Type
	}
	if over.Unit != "" {
		base.Unit = over.Unit
	}
	if over.Rate != 0 {
		base.Rate = over.Rate
	}
	if over.MinQuantity != nil {
		base.MinQuantity = over.MinQuantity
	}
	return base
}
