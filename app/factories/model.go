package factories

import (
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

// Model validates a raw catalogue-model record. Supplier resolution happens
// later, in the orchestrator, because it needs the persisted id map; here
// the name only has to be present. Status defaults to draft.
func Model(in presets.Model, opts Options[presets.Model]) (models.CatalogModel, []validate.FieldError) {
	if opts.Overrides != nil {
		in = mergeModel(in, *opts.Overrides)
	}

	if !opts.SkipValidation {
		errs := validate.Struct(in)

		if in.MinWidthMm >= in.MaxWidthMm {
			errs = append(errs, validate.NewFieldError("dimension_order", "minWidthMm",
				"The minimum width must be less than the maximum width.",
				map[string]any{"expected": "< maxWidthMm", "received": in.MinWidthMm}))
		}
		if in.MinHeightMm >= in.MaxHeightMm {
			errs = append(errs, validate.NewFieldError("dimension_order", "minHeightMm",
				"The minimum height must be less than the maximum height.",
				map[string]any{"expected": "< maxHeightMm", "received": in.MinHeightMm}))
		}
		if in.BasePrice >= MaxUnitPrice {
			errs = append(errs, ceilingError("basePrice", in.BasePrice))
		}

		if len(errs) > 0 {
			return models.CatalogModel{}, errs
		}
	}

	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}

	return models.CatalogModel{
		Name:                  in.Name,
		MinWidthMm:            in.MinWidthMm,
		MaxWidthMm:            in.MaxWidthMm,
		MinHeightMm:           in.MinHeightMm,
		MaxHeightMm:           in.MaxHeightMm,
		BasePrice:             in.BasePrice,
		CostPerMmWidth:        in.CostPerMmWidth,
		CostPerMmHeight:       in.CostPerMmHeight,
		AccessoryPrice:        in.AccessoryPrice,
		GlassDiscountWidthMm:  in.GlassDiscountWidthMm,
		GlassDiscountHeightMm: in.GlassDiscountHeightMm,
		ProfitMarginPct:       in.ProfitMarginPct,
		Status:                status,
	}, nil
}

func mergeModel(base, over presets.Model) presets.Model {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.Supplier != "" {
		base.Supplier = over.Supplier
	}
	if over.MinWidthMm != 0 {
		base.MinWidthMm = over.MinWidthMm
	}
	if over.MaxWidthMm != 0 {
		base.MaxWidthMm = over.MaxWidthMm
	}
	if over.MinHeightMm != 0 {
		base.MinHeightMm = over.MinHeightMm
	}
	if over.MaxHeightMm != 0 {
		base.MaxHeightMm = over.MaxHeightMm
	}
	if over.BasePrice != 0 {
		base.BasePrice = over.BasePrice
	}
	if over.CostPerMmWidth != 0 {
		base.CostPerMmWidth = over.CostPerMmWidth
	}
	if over.CostPerMmHeight != 0 {
		base.CostPerMmHeight = over.CostPerMmHeight
	}
	if over.AccessoryPrice != nil {
		base.AccessoryPrice = over.AccessoryPrice
	}
	if over.GlassDiscountWidthMm != 0 {
		base.GlassDiscountWidthMm = over.GlassDiscountWidthMm
	}
	if over.GlassDiscountHeightMm != 0 {
		base.GlassDiscountHeightMm = over.GlassDiscountHeightMm
	}
	if over.ProfitMarginPct != nil {
		base.ProfitMarginPct = over.ProfitMarginPct
	}
	if over.Status != "" {
		base.Status = over.Status
	}
	return base
}
