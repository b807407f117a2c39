package seeding

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/vitralapp/vitral/app/catalog"
	"github.com/vitralapp/vitral/app/factories"
	"github.com/vitralapp/vitral/app/models"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/pkg/validate"
)

// Options configures a whole run. ContinueOnError switches every stage
// from abort-on-first-error to accumulate-and-continue.
type Options struct {
	SkipValidation  bool
	ContinueOnError bool
	BatchSize       int
}

// Orchestrator executes the seeding pipeline: clean slate, then each entity
// stage in dependency order, threading the natural-key→id maps forward.
// Stages run strictly sequentially because each one consumes ids produced
// by the previous one.
type Orchestrator struct {
	db   *gorm.DB
	log  *slog.Logger
	opts Options
}

// NewOrchestrator wires an orchestrator onto an injected database handle.
func NewOrchestrator(db *gorm.DB, log *slog.Logger, opts Options) *Orchestrator {
	return &Orchestrator{db: db, log: log, opts: opts}
}

// Run seeds the given preset plus the environment-derived tenant
// configuration and returns the run report. With ContinueOnError unset,
// the first error of any class aborts the run; otherwise errors are
// recorded per record and the run completes with a nonzero TotalFailed.
// There is no resume: a retried run always starts from the clean stage.
func (o *Orchestrator) Run(ctx context.Context, p presets.Preset, tenant factories.TenantInput) (*RunStats, error) {
	started := time.Now()
	stats := &RunStats{Preset: p.Name}
	o.log.Info("seed run starting", "preset", p.Name)

	if err := o.clean(ctx); err != nil {
		return stats, fmt.Errorf("clean: %w", err)
	}

	if err := o.seedTenant(ctx, tenant, &stats.Tenant); err != nil {
		return stats, fmt.Errorf("seed tenant: %w", err)
	}

	supplierIDs, err := o.seedSuppliers(ctx, p.Suppliers, &stats.Suppliers)
	if err != nil {
		return stats, fmt.Errorf("seed profile suppliers: %w", err)
	}

	glassIDs, err := o.seedGlassTypes(ctx, p.GlassTypes, &stats.GlassTypes)
	if err != nil {
		return stats, fmt.Errorf("seed glass types: %w", err)
	}

	if err := o.seedModels(ctx, p.Models, supplierIDs, glassIDs, &stats.Models); err != nil {
		return stats, fmt.Errorf("seed models: %w", err)
	}

	if err := o.seedServices(ctx, p.Services, &stats.Services); err != nil {
		return stats, fmt.Errorf("seed services: %w", err)
	}

	solutionIDs, err := o.seedSolutions(ctx, p.Solutions, &stats.Solutions)
	if err != nil {
		return stats, fmt.Errorf("seed glass solutions: %w", err)
	}

	if err := o.seedAssignments(ctx, p, glassIDs, solutionIDs, &stats.Assignments); err != nil {
		return stats, fmt.Errorf("seed solution assignments: %w", err)
	}

	stats.finalize(started)
	o.log.Info("seed run finished",
		"preset", p.Name,
		"inserted", stats.TotalInserted,
		"updated", stats.TotalUpdated,
		"failed", stats.TotalFailed,
		"duration", stats.Duration)
	return stats, nil
}

// clean deletes all previously seeded rows, children before parents so
// foreign keys never dangle. The tenant configuration survives; it is
// upserted, never recreated. Best-effort under ContinueOnError.
func (o *Orchestrator) clean(ctx context.Context) error {
	o.log.Info("cleaning previously seeded data")

	steps := []struct {
		name string
		run  func(tx *gorm.DB) error
	}{
		{"glass_type_solutions", func(tx *gorm.DB) error {
			return tx.Unscoped().Where("1 = 1").Delete(&models.GlassTypeSolution{}).Error
		}},
		{"catalog_model_glass_types", func(tx *gorm.DB) error {
			return tx.Exec("DELETE FROM catalog_model_glass_types").Error
		}},
		{"catalog_models", func(tx *gorm.DB) error {
			return tx.Unscoped().Where("1 = 1").Delete(&models.CatalogModel{}).Error
		}},
		{"services", func(tx *gorm.DB) error {
			return tx.Unscoped().Where("1 = 1").Delete(&models.Service{}).Error
		}},
		{"glass_types", func(tx *gorm.DB) error {
			return tx.Unscoped().Where("1 = 1").Delete(&models.GlassType{}).Error
		}},
		{"glass_solutions", func(tx *gorm.DB) error {
			return tx.Unscoped().Where("1 = 1").Delete(&models.GlassSolution{}).Error
		}},
		{"profile_suppliers", func(tx *gorm.DB) error {
			return tx.Unscoped().Where("1 = 1").Delete(&models.ProfileSupplier{}).Error
		}},
	}

	for _, step := range steps {
		if err := step.run(o.db.WithContext(ctx)); err != nil {
			o.log.Error("clean step failed", "table", step.name, "error", err)
			if !o.opts.ContinueOnError {
				return fmt.Errorf("delete %s: %w", step.name, err)
			}
		}
	}
	return nil
}

func (o *Orchestrator) seedTenant(ctx context.Context, in factories.TenantInput, st *StageStats) error {
	rec, errs := factories.Tenant(in, factories.Options[factories.TenantInput]{SkipValidation: o.opts.SkipValidation})
	if len(errs) > 0 {
		st.fail(validationError(0, models.TenantConfigKey, errs))
		if !o.opts.ContinueOnError {
			return validationError(0, models.TenantConfigKey, errs)
		}
		return nil
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.TenantConfig]{
		Entity:   "tenant",
		Conflict: []string{"key"},
		Updates: []string{
			"business_name", "currency", "locale", "timezone",
			"quote_validity_days", "contact_email", "contact_phone",
			"contact_address", "updated_at",
		},
		Key: func(t *models.TenantConfig) string { return t.Key },
		Match: func(tx *gorm.DB, t *models.TenantConfig) *gorm.DB {
			return tx.Where("key = ?", t.Key)
		},
	})

	res, err := seeder.Upsert(ctx, []models.TenantConfig{rec}, o.upsertOptions())
	st.merge(res)
	return err
}

func (o *Orchestrator) seedSuppliers(ctx context.Context, raw []presets.Supplier, st *StageStats) (map[string]uint, error) {
	var valid []models.ProfileSupplier
	var origIdx []int
	for i, r := range raw {
		rec, errs := factories.Supplier(r, factories.Options[presets.Supplier]{SkipValidation: o.opts.SkipValidation})
		if len(errs) > 0 {
			verr := validationError(i, r.Name, errs)
			st.fail(verr)
			if !o.opts.ContinueOnError {
				return nil, verr
			}
			continue
		}
		valid = append(valid, rec)
		origIdx = append(origIdx, i)
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.ProfileSupplier]{
		Entity:   "profileSuppliers",
		Conflict: []string{"name"},
		Updates:  []string{"material_type", "active", "notes", "updated_at"},
		Key:      func(s *models.ProfileSupplier) string { return s.Name },
		Match: func(tx *gorm.DB, s *models.ProfileSupplier) *gorm.DB {
			return tx.Where("name = ?", s.Name)
		},
	})

	res, err := seeder.Upsert(ctx, valid, o.upsertOptions())
	remapIndexes(res.Errors, origIdx)
	st.merge(res)
	if err != nil {
		return nil, err
	}

	ids := map[string]uint{}
	var rows []models.ProfileSupplier
	if err := o.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load supplier ids: %w", err)
	}
	for _, r := range rows {
		ids[r.Name] = r.ID
	}
	return ids, nil
}

func (o *Orchestrator) seedGlassTypes(ctx context.Context, raw []presets.GlassType, st *StageStats) (map[string]uint, error) {
	var valid []models.GlassType
	var origIdx []int
	for i, r := range raw {
		rec, errs := factories.GlassType(r, factories.Options[presets.GlassType]{SkipValidation: o.opts.SkipValidation})
		if len(errs) > 0 {
			verr := validationError(i, r.Name, errs)
			st.fail(verr)
			if !o.opts.ContinueOnError {
				return nil, verr
			}
			continue
		}
		valid = append(valid, rec)
		origIdx = append(origIdx, i)
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.GlassType]{
		Entity:   "glassTypes",
		Conflict: []string{"name"},
		Updates: []string{
			"thickness_mm", "price_per_sqm", "u_value", "solar_factor",
			"light_transmission", "tempered", "laminated", "low_e",
			"triple_glazed", "purpose", "updated_at",
		},
		Key: func(g *models.GlassType) string { return g.Name },
		Match: func(tx *gorm.DB, g *models.GlassType) *gorm.DB {
			return tx.Where("name = ?", g.Name)
		},
	})

	res, err := seeder.Upsert(ctx, valid, o.upsertOptions())
	remapIndexes(res.Errors, origIdx)
	st.merge(res)
	if err != nil {
		return nil, err
	}

	ids := map[string]uint{}
	var rows []models.GlassType
	if err := o.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load glass type ids: %w", err)
	}
	for _, r := range rows {
		ids[r.Name] = r.ID
	}
	return ids, nil
}

// seedModels resolves each model's supplier through the id map from the
// suppliers stage and attaches every seeded glass type as compatible.
// Wiring all glass to all models is a known simplification carried over
// from the original catalogue; curation happens in the admin API.
func (o *Orchestrator) seedModels(ctx context.Context, raw []presets.Model, supplierIDs, glassIDs map[string]uint, st *StageStats) error {
	compatible := make([]models.GlassType, 0, len(glassIDs))
	for _, id := range sortedIDs(glassIDs) {
		compatible = append(compatible, models.GlassType{Model: gorm.Model{ID: id}})
	}

	var valid []models.CatalogModel
	var origIdx []int
	for i, r := range raw {
		rec, errs := factories.Model(r, factories.Options[presets.Model]{SkipValidation: o.opts.SkipValidation})
		if len(errs) > 0 {
			verr := validationError(i, r.Name, errs)
			st.fail(verr)
			if !o.opts.ContinueOnError {
				return verr
			}
			continue
		}

		supplierID, ok := supplierIDs[r.Supplier]
		if !ok {
			// Not a validation problem: the record is well formed but its
			// supplier reference cannot be resolved.
			rerr := referentialError(i, r.Name, fmt.Sprintf("profile supplier %q not found", r.Supplier))
			st.fail(rerr)
			if !o.opts.ContinueOnError {
				return rerr
			}
			continue
		}

		rec.ProfileSupplierID = supplierID
		rec.GlassTypes = compatible
		valid = append(valid, rec)
		origIdx = append(origIdx, i)
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.CatalogModel]{
		Entity:   "models",
		Conflict: []string{"name"},
		Updates: []string{
			"profile_supplier_id", "min_width_mm", "max_width_mm",
			"min_height_mm", "max_height_mm", "base_price",
			"cost_per_mm_width", "cost_per_mm_height", "accessory_price",
			"glass_discount_width_mm", "glass_discount_height_mm",
			"profit_margin_pct", "status", "updated_at",
		},
		Key: func(m *models.CatalogModel) string { return m.Name },
		Match: func(tx *gorm.DB, m *models.CatalogModel) *gorm.DB {
			return tx.Where("name = ?", m.Name)
		},
	})

	res, err := seeder.Upsert(ctx, valid, o.upsertOptions())
	remapIndexes(res.Errors, origIdx)
	st.merge(res)
	return err
}

// seedServices uses the seeder's lookup path: services carry no unique
// constraint, so existence is checked explicitly before choosing insert or
// update.
func (o *Orchestrator) seedServices(ctx context.Context, raw []presets.Service, st *StageStats) error {
	var valid []models.Service
	var origIdx []int
	for i, r := range raw {
		rec, errs := factories.Service(r, factories.Options[presets.Service]{SkipValidation: o.opts.SkipValidation})
		if len(errs) > 0 {
			verr := validationError(i, r.Name, errs)
			st.fail(verr)
			if !o.opts.ContinueOnError {
				return verr
			}
			continue
		}
		valid = append(valid, rec)
		origIdx = append(origIdx, i)
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.Service]{
		Entity:  "services",
		Updates: []string{"type", "unit", "rate", "min_quantity", "updated_at"},
		Key:     func(s *models.Service) string { return s.Name },
		Match: func(tx *gorm.DB, s *models.Service) *gorm.DB {
			return tx.Where("name = ?", s.Name)
		},
	})

	res, err := seeder.Upsert(ctx, valid, o.upsertOptions())
	remapIndexes(res.Errors, origIdx)
	st.merge(res)
	return err
}

func (o *Orchestrator) seedSolutions(ctx context.Context, raw []presets.Solution, st *StageStats) (map[string]uint, error) {
	var valid []models.GlassSolution
	var origIdx []int
	for i, r := range raw {
		rec, errs := factories.Solution(r, factories.Options[presets.Solution]{SkipValidation: o.opts.SkipValidation})
		if len(errs) > 0 {
			verr := validationError(i, r.Key, errs)
			st.fail(verr)
			if !o.opts.ContinueOnError {
				return nil, verr
			}
			continue
		}
		valid = append(valid, rec)
		origIdx = append(origIdx, i)
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.GlassSolution]{
		Entity:   "glassSolutions",
		Conflict: []string{"key"},
		Updates:  []string{"name_es", "name_en", "icon", "sort_order", "slug", "updated_at"},
		Key:      func(s *models.GlassSolution) string { return s.Key },
		Match: func(tx *gorm.DB, s *models.GlassSolution) *gorm.DB {
			return tx.Where("key = ?", s.Key)
		},
	})

	res, err := seeder.Upsert(ctx, valid, o.upsertOptions())
	remapIndexes(res.Errors, origIdx)
	st.merge(res)
	if err != nil {
		return nil, err
	}

	ids := map[string]uint{}
	var rows []models.GlassSolution
	if err := o.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load solution ids: %w", err)
	}
	for _, r := range rows {
		ids[r.Key] = r.ID
	}
	return ids, nil
}

// seedAssignments links glass types to solutions. A preset may carry an
// explicit curated mapping; otherwise every persisted glass type is run
// through the classification engine.
func (o *Orchestrator) seedAssignments(ctx context.Context, p presets.Preset, glassIDs, solutionIDs map[string]uint, st *StageStats) error {
	var rows []models.GlassTypeSolution

	if len(p.SolutionMappings) > 0 {
		for i, m := range p.SolutionMappings {
			key := m.GlassType + "→" + m.Solution

			if errs := o.mappingErrors(m); len(errs) > 0 {
				verr := validationError(i, key, errs)
				st.fail(verr)
				if !o.opts.ContinueOnError {
					return verr
				}
				continue
			}

			glassID, ok := glassIDs[m.GlassType]
			if !ok {
				rerr := referentialError(i, key, fmt.Sprintf("glass type %q not found", m.GlassType))
				st.fail(rerr)
				if !o.opts.ContinueOnError {
					return rerr
				}
				continue
			}
			solutionID, ok := solutionIDs[m.Solution]
			if !ok {
				rerr := referentialError(i, key, fmt.Sprintf("solution %q not found", m.Solution))
				st.fail(rerr)
				if !o.opts.ContinueOnError {
					return rerr
				}
				continue
			}

			rows = append(rows, models.GlassTypeSolution{
				GlassTypeID: glassID,
				SolutionID:  solutionID,
				Performance: m.Performance,
				IsPrimary:   m.Primary,
			})
		}
	} else {
		var glassTypes []models.GlassType
		if err := o.db.WithContext(ctx).Order("id").Find(&glassTypes).Error; err != nil {
			return fmt.Errorf("load glass types: %w", err)
		}

		for i, gt := range glassTypes {
			assignments := catalog.Classify(catalog.Characteristics{
				Tempered:     gt.Tempered,
				Laminated:    gt.Laminated,
				LowE:         gt.LowE,
				TripleGlazed: gt.TripleGlazed,
				ThicknessMm:  gt.ThicknessMm,
				Purpose:      gt.Purpose,
			})
			for _, a := range assignments {
				solutionID, ok := solutionIDs[a.SolutionKey]
				if !ok {
					rerr := referentialError(i, gt.Name+"→"+a.SolutionKey,
						fmt.Sprintf("solution %q not seeded", a.SolutionKey))
					st.fail(rerr)
					if !o.opts.ContinueOnError {
						return rerr
					}
					continue
				}
				rows = append(rows, models.GlassTypeSolution{
					GlassTypeID: gt.ID,
					SolutionID:  solutionID,
					Performance: a.Rating,
					IsPrimary:   a.Primary,
				})
			}
		}
	}

	seeder := NewSeeder(o.db, o.log, SeederConfig[models.GlassTypeSolution]{
		Entity:   "glassTypeSolutions",
		Conflict: []string{"glass_type_id", "solution_id"},
		Updates:  []string{"performance", "is_primary", "updated_at"},
		Key: func(g *models.GlassTypeSolution) string {
			return fmt.Sprintf("%d→%d", g.GlassTypeID, g.SolutionID)
		},
		Match: func(tx *gorm.DB, g *models.GlassTypeSolution) *gorm.DB {
			return tx.Where("glass_type_id = ? AND solution_id = ?", g.GlassTypeID, g.SolutionID)
		},
	})

	res, err := seeder.Upsert(ctx, rows, o.upsertOptions())
	st.merge(res)
	return err
}

func (o *Orchestrator) mappingErrors(m presets.SolutionMapping) []validate.FieldError {
	if o.opts.SkipValidation {
		return nil
	}
	return validate.Struct(m)
}

func (o *Orchestrator) upsertOptions() UpsertOptions {
	return UpsertOptions{
		BatchSize:       o.opts.BatchSize,
		ContinueOnError: o.opts.ContinueOnError,
	}
}

// remapIndexes rewrites seeder error indexes (positions in the filtered
// valid slice) back to positions in the original preset list.
func remapIndexes(errs []RecordError, origIdx []int) {
	for i := range errs {
		if errs[i].Index >= 0 && errs[i].Index < len(origIdx) {
			errs[i].Index = origIdx[errs[i].Index]
		}
	}
}

func sortedIDs(m map[string]uint) []uint {
	ids := make([]uint, 0, len(m))
	for _, id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
