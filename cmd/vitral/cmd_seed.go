package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitralapp/vitral/app/factories"
	"github.com/vitralapp/vitral/config"
	"github.com/vitralapp/vitral/database/presets"
	"github.com/vitralapp/vitral/database/seeding"
	"github.com/vitralapp/vitral/pkg/cache"
	"github.com/vitralapp/vitral/pkg/logger"
	"github.com/vitralapp/vitral/pkg/metrics"
	"github.com/vitralapp/vitral/pkg/storage"
)

var (
	seedPreset          string
	seedVerbose         bool
	seedSkipValidation  bool
	seedContinueOnError bool
)

func init() {
	seedCmd.Flags().StringVar(&seedPreset, "preset", "minimal", "preset to seed (see `vitral presets`)")
	seedCmd.Flags().BoolVar(&seedVerbose, "verbose", false, "log every record decision")
	seedCmd.Flags().BoolVar(&seedSkipValidation, "skip-validation", false, "bypass the validation gateways (trusted input only)")
	seedCmd.Flags().BoolVar(&seedContinueOnError, "continue-on-error", false, "record per-row failures and keep going instead of aborting")
}

// vitral seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipe and reseed the catalog from a preset",
	Long: "Seed replaces all previously seeded catalog rows with the chosen preset's\n" +
		"data, stage by stage in dependency order. The tenant configuration row is\n" +
		"upserted from the environment, never deleted. Exits 1 when any record fails.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cleanup := logger.Configure(seedVerbose)
		defer cleanup()

		db, err := bootDB()
		if err != nil {
			return err
		}

		p, err := presets.Get(seedPreset)
		if err != nil {
			return err
		}

		orch := seeding.NewOrchestrator(db, logger.L, seeding.Options{
			SkipValidation:  seedSkipValidation,
			ContinueOnError: seedContinueOnError,
			BatchSize:       config.SeedBatchSize(),
		})

		started := time.Now()
		stats, runErr := orch.Run(cmd.Context(), p, tenantFromConfig())

		for _, s := range stats.Report() {
			metrics.RecordStage(s.Entity, s.Stats.Inserted, s.Stats.Updated, s.Stats.Failed)
		}
		metrics.RecordRun(p.Name, runStatus(stats, runErr), time.Since(started))
		if err := metrics.PushRun(p.Name); err != nil {
			logger.Warn("metrics push failed", "error", err)
		}

		if runErr != nil {
			return fmt.Errorf("seed aborted: %w", runErr)
		}

		printSummary(stats)

		if err := writeReport(stats); err != nil {
			logger.Warn("seed report not written", "error", err)
		}
		flushCatalogCache(cmd)

		if stats.TotalFailed > 0 {
			return fmt.Errorf("seed completed with %d failed record(s)", stats.TotalFailed)
		}
		return nil
	},
}

// vitral presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available seed presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-14s  %-9s  %s\n", "Preset", "Records", "Description")
		for _, name := range presets.Names() {
			p, err := presets.Get(name)
			if err != nil {
				return err
			}
			total := len(p.Suppliers) + len(p.GlassTypes) + len(p.Models) +
				len(p.Services) + len(p.Solutions) + len(p.SolutionMappings)
			fmt.Printf("%-14s  %-9d  %s\n", p.Name, total, p.Description)
		}
		return nil
	},
}

// tenantFromConfig assembles the business configuration from the
// environment; the gateway validates it during the tenant stage.
func tenantFromConfig() factories.TenantInput {
	return factories.TenantInput{
		BusinessName:      config.BusinessName(),
		Currency:          config.Currency(),
		Locale:            config.Locale(),
		Timezone:          config.Timezone(),
		QuoteValidityDays: config.QuoteValidityDays(),
		ContactEmail:      config.ContactEmail(),
		ContactPhone:      config.ContactPhone(),
		ContactAddress:    config.ContactAddress(),
	}
}

func runStatus(stats *seeding.RunStats, runErr error) string {
	switch {
	case runErr != nil:
		return "failed"
	case stats.TotalFailed > 0:
		return "partial"
	default:
		return "ok"
	}
}

func printSummary(stats *seeding.RunStats) {
	fmt.Printf("\n%-22s  %8s  %8s  %8s\n", "Entity", "Inserted", "Updated", "Failed")
	for _, s := range stats.Report() {
		fmt.Printf("%-22s  %8d  %8d  %8d\n", s.Entity, s.Stats.Inserted, s.Stats.Updated, s.Stats.Failed)
	}
	fmt.Printf("%-22s  %8d  %8d  %8d   (%s)\n",
		"total", stats.TotalInserted, stats.TotalUpdated, stats.TotalFailed,
		stats.Duration.Round(time.Millisecond))

	for _, s := range stats.Report() {
		for _, e := range s.Stats.Errors {
			fmt.Printf("  ✗ %s[%d] %s: %s (%s)\n", s.Entity, e.Index, e.Key, e.Message, e.Class)
		}
	}
}

// writeReport persists the run report as JSON through the storage manager
// when SEED_REPORT_PATH is configured.
func writeReport(stats *seeding.RunStats) error {
	path := config.SeedReportPath()
	if path == "" {
		return nil
	}

	storage.Connect()
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := storage.Put(path, data); err != nil {
		return err
	}
	logger.Info("seed report written", "path", path)
	return nil
}

// flushCatalogCache invalidates cached catalog reads after the tables
// changed. Redis being down is not an error for a seed run.
func flushCatalogCache(cmd *cobra.Command) {
	if err := cache.Connect(); err != nil {
		logger.Debug("cache flush skipped", "error", err)
		return
	}
	n, err := cache.FlushCatalog(cmd.Context())
	if err != nil {
		logger.Warn("cache flush failed", "error", err)
		return
	}
	logger.Info("catalog cache flushed", "keys", n)
}
