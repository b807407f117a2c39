package seeding

import "time"

// StageStats accumulates the outcome of one pipeline stage.
type StageStats struct {
	Inserted int           `json:"inserted"`
	Updated  int           `json:"updated"`
	Failed   int           `json:"failed"`
	Errors   []RecordError `json:"errors,omitempty"`
}

func (s *StageStats) fail(err RecordError) {
	s.Failed++
	s.Errors = append(s.Errors, err)
}

func (s *StageStats) merge(r Result) {
	s.Inserted += r.Inserted
	s.Updated += r.Updated
	s.Failed += r.Failed
	s.Errors = append(s.Errors, r.Errors...)
}

// RunStats is the final report of a seed run: per-entity breakdown, totals
// and wall-clock duration.
type RunStats struct {
	Preset      string     `json:"preset"`
	StartedAt   time.Time  `json:"startedAt"`
	Tenant      StageStats `json:"tenant"`
	Suppliers   StageStats `json:"profileSuppliers"`
	GlassTypes  StageStats `json:"glassTypes"`
	Models      StageStats `json:"models"`
	Services    StageStats `json:"services"`
	Solutions   StageStats `json:"glassSolutions"`
	Assignments StageStats `json:"glassTypeSolutions"`

	TotalInserted int           `json:"totalInserted"`
	TotalUpdated  int           `json:"totalUpdated"`
	TotalFailed   int           `json:"totalFailed"`
	Duration      time.Duration `json:"durationNs"`
}

// StageReport pairs a stage with the entity it seeds, in pipeline order.
type StageReport struct {
	Entity string
	Stats  *StageStats
}

// Report returns the per-entity breakdown in pipeline order, for summary
// tables and metrics.
func (r *RunStats) Report() []StageReport {
	return []StageReport{
		{"tenant_config", &r.Tenant},
		{"profile_suppliers", &r.Suppliers},
		{"glass_types", &r.GlassTypes},
		{"catalog_models", &r.Models},
		{"services", &r.Services},
		{"glass_solutions", &r.Solutions},
		{"glass_type_solutions", &r.Assignments},
	}
}

func (r *RunStats) stages() []*StageStats {
	out := make([]*StageStats, 0, 7)
	for _, s := range r.Report() {
		out = append(out, s.Stats)
	}
	return out
}

func (r *RunStats) finalize(started time.Time) {
	r.TotalInserted, r.TotalUpdated, r.TotalFailed = 0, 0, 0
	for _, s := range r.stages() {
		r.TotalInserted += s.Inserted
		r.TotalUpdated += s.Updated
		r.TotalFailed += s.Failed
	}
	r.StartedAt = started
	r.Duration = time.Since(started)
}
