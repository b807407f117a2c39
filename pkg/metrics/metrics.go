// Package metrics provides Prometheus instrumentation for Vitral.
//
// Seed runs are batch jobs, not long-lived servers, so metrics are pushed to
// a Pushgateway after each run instead of being scraped:
//
//	metrics.RecordStage("glass_types", inserted, updated, failed)
//	metrics.RecordRun(presetName, "ok", elapsed)
//	metrics.PushRun(presetName)
//
// Set METRICS_PUSH_URL to enable the push; when unset PushRun is a no-op.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/vitralapp/vitral/config"
)

var (
	// SeedRecords counts processed records per entity and outcome.
	SeedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitral",
			Subsystem: "seed",
			Name:      "records_total",
			Help:      "Total seed records processed, by entity and outcome.",
		},
		[]string{"entity", "outcome"}, // outcome: "inserted" | "updated" | "failed"
	)

	// SeedRuns counts completed runs by preset and status.
	SeedRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vitral",
			Subsystem: "seed",
			Name:      "runs_total",
			Help:      "Total seed runs, by preset and status.",
		},
		[]string{"preset", "status"}, // status: "ok" | "partial" | "failed"
	)

	// SeedRunDuration records how long the last run took.
	SeedRunDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vitral",
			Subsystem: "seed",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the last seed run.",
		},
		[]string{"preset"},
	)
)

// DefaultRegistry is the Prometheus registry used by Vitral.
// Register your own metrics against this.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		SeedRecords,
		SeedRuns,
		SeedRunDuration,
	)
}

// Register lets you add your own prometheus.Collector to the Vitral registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// MustRegister panics if registration fails.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// RecordStage feeds one stage tally into the seed counters.
func RecordStage(entity string, inserted, updated, failed int) {
	SeedRecords.WithLabelValues(entity, "inserted").Add(float64(inserted))
	SeedRecords.WithLabelValues(entity, "updated").Add(float64(updated))
	SeedRecords.WithLabelValues(entity, "failed").Add(float64(failed))
}

// RecordRun marks a run complete. status is "ok" when nothing failed,
// "partial" when some records failed, "failed" when the run aborted.
func RecordRun(preset, status string, duration time.Duration) {
	SeedRuns.WithLabelValues(preset, status).Inc()
	SeedRunDuration.WithLabelValues(preset).Set(duration.Seconds())
}

// PushRun pushes the registry to the Pushgateway configured via
// METRICS_PUSH_URL, grouped by preset so concurrent runs don't clobber each
// other. Returns nil when pushing is disabled.
func PushRun(preset string) error {
	url := config.MetricsPushURL()
	if url == "" {
		return nil
	}

	err := push.New(url, "vitral_seed").
		Gatherer(DefaultRegistry).
		Grouping("preset", preset).
		Push()
	if err != nil {
		return fmt.Errorf("metrics: push %q: %w", url, err)
	}
	return nil
}
