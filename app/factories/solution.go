package factories

import (
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

// Solution validates a raw glass-solution record and derives the URL slug
// from the key.
func Solution(in presets.Solution, opts Options[presets.Solution]) (models.GlassSolution, []validate.FieldError) {
	if opts.Overrides != nil {
		in = mergeSolution(in, *opts.Overrides)
	}

	if !opts.SkipValidation {
		if errs := validate.Struct(in); len(errs) > 0 {
			return models.GlassSolution{}, errs
		}
	}

	return models.GlassSolution{
		Key:       in.Key,
		NameEs:    in.NameEs,
		NameEn:    in.NameEn,
		Icon:      in.Icon,
		SortOrder: in.SortOrder,
		Slug:      models.SolutionSlug(in.Key),
	}, nil
}

func mergeSolution(base, over presets.Solution) presets.Solution {
	if over.Key != "" {
		base.Key = over.Key
	}
	if over.NameEs != "" {
		base.NameEs = over.NameEs
	}
	if over.NameEn != "" {
		base.NameEn = over.NameEn
	}
	if over.Icon != "" {
		base.Icon = over.Icon
	}
	if over.SortOrder != 0 {
		base.SortOrder = over.SortOrder
	}
	return base
}
