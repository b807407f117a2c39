package factories

import (
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

// Supplier validates a raw supplier record and maps it to a
// ProfileSupplier. Active defaults to true when the preset leaves it unset.
func Supplier(in presets.Supplier, opts Options[presets.Supplier]) (models.ProfileSupplier, []validate.FieldError) {
	if opts.Overrides != nil {
		in = mergeSupplier(in, *opts.Overrides)
	}

	if !opts.SkipValidation {
		if errs := validate.Struct(in); len(errs) > 0 {
			return models.ProfileSupplier{}, errs
		}
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return models.ProfileSupplier{
		Name:         in.Name,
		MaterialType: in.MaterialType,
		Active:       active,
		Notes:        in.Notes,
	}, nil
}

func mergeSupplier(base, over presets.Supplier) presets.Supplier {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.MaterialType != "" {
		base.MaterialType = over.MaterialType
	}
	if over.Active != nil {
		base.Active = over.Active
	}
	if over.Notes != "" {
		base.Notes = over.Notes
	}
	return base
}
