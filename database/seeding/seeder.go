// Package seeding implements the idempotent catalogue seeding pipeline:
// a generic batch-upsert seeder, the stage orchestrator and its stats.
//
// Records flow raw preset data → factories (validation) → Seeder (batched
// natural-key upserts) → id maps for the later stages. Everything runs on
// an injected *gorm.DB; the package keeps no global state.
package seeding

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vitralapp/vitral/pkg/collection"
)

// DefaultBatchSize is the upsert batch size when the caller does not set
// one.
const DefaultBatchSize = 100

// UpsertOptions controls one Upsert call.
type UpsertOptions struct {
	BatchSize int
	// ContinueOnError records a failing record and moves on instead of
	// aborting the remaining batch.
	ContinueOnError bool
}

// Result is the outcome of one Upsert call.
type Result struct {
	Inserted int
	Updated  int
	Failed   int
	Errors   []RecordError
}

// SeederConfig describes how one entity type is persisted.
//
// When Conflict is non-empty the seeder relies on an atomic
// insert-or-update-on-conflict against those columns. When it is empty
// (entities without a unique constraint, e.g. services) the seeder falls
// back to lookup-then-write. Match must select the row with the record's
// natural key; it also powers the explicit inserted/updated classification,
// so it is required in both modes.
type SeederConfig[T any] struct {
	Entity   string   // entity name for logs and errors
	Conflict []string // natural-key columns for ON CONFLICT
	Updates  []string // columns refreshed when the row already exists
	Key      func(*T) string
	Match    func(tx *gorm.DB, rec *T) *gorm.DB
}

// Seeder is a generic batch-upsert persistence component for one entity
// type.
type Seeder[T any] struct {
	db  *gorm.DB
	log *slog.Logger
	cfg SeederConfig[T]
}

// NewSeeder builds a seeder on the given handle. The handle is injected,
// never ambient.
func NewSeeder[T any](db *gorm.DB, log *slog.Logger, cfg SeederConfig[T]) *Seeder[T] {
	return &Seeder[T]{db: db, log: log, cfg: cfg}
}

// InsertOnly bulk-inserts records, silently skipping rows whose natural key
// already exists. It returns the number of rows actually inserted. Used for
// fast initial loads where per-record classification is not needed.
func (s *Seeder[T]) InsertOnly(ctx context.Context, records []T) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	conflict := clause.OnConflict{DoNothing: true}
	for _, col := range s.cfg.Conflict {
		conflict.Columns = append(conflict.Columns, clause.Column{Name: col})
	}

	res := s.db.WithContext(ctx).
		Clauses(conflict).
		CreateInBatches(&records, DefaultBatchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("seeding: %s insert: %w", s.cfg.Entity, res.Error)
	}
	return int(res.RowsAffected), nil
}

// Upsert processes records sequentially in fixed-size batches: each record
// is classified as inserted or updated by an explicit natural-key lookup
// before the write, then persisted with insert-or-update-on-conflict
// semantics. A failing record either aborts the remaining batch or, with
// ContinueOnError, is recorded against its index and skipped.
func (s *Seeder[T]) Upsert(ctx context.Context, records []T, opts UpsertOptions) (Result, error) {
	var res Result

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	for bi, batch := range collection.Chunk(records, batchSize) {
		start := bi * batchSize
		s.log.Debug("seeding batch",
			"entity", s.cfg.Entity, "from", start, "to", start+len(batch)-1, "of", len(records))

		for j := range batch {
			i := start + j
			rec := &batch[j]
			key := s.cfg.Key(rec)

			exists, err := s.exists(ctx, rec)
			if err == nil {
				err = s.write(ctx, rec, exists)
			}
			if err != nil {
				res.Failed++
				recErr := persistenceError(i, key, err)
				res.Errors = append(res.Errors, recErr)
				s.log.Error("seeding record failed",
					"entity", s.cfg.Entity, "key", key, "error", err)
				if !opts.ContinueOnError {
					return res, fmt.Errorf("seeding: %s %q: %w", s.cfg.Entity, key, err)
				}
				continue
			}

			if exists {
				res.Updated++
			} else {
				res.Inserted++
			}
			s.log.Debug("seeded record",
				"entity", s.cfg.Entity, "key", key, "outcome", outcome(exists))
		}
	}

	return res, nil
}

func (s *Seeder[T]) exists(ctx context.Context, rec *T) (bool, error) {
	var n int64
	tx := s.db.WithContext(ctx).Model(new(T))
	if err := s.cfg.Match(tx, rec).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Seeder[T]) write(ctx context.Context, rec *T, exists bool) error {
	if len(s.cfg.Conflict) > 0 {
		conflict := clause.OnConflict{
			DoUpdates: clause.AssignmentColumns(s.cfg.Updates),
		}
		for _, col := range s.cfg.Conflict {
			conflict.Columns = append(conflict.Columns, clause.Column{Name: col})
		}
		return s.db.WithContext(ctx).Clauses(conflict).Create(rec).Error
	}

	// Lookup mode: no unique constraint to conflict on.
	if exists {
		tx := s.db.WithContext(ctx).Model(new(T))
		return s.cfg.Match(tx, rec).Select(s.cfg.Updates).Updates(rec).Error
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func outcome(existed bool) string {
	if existed {
		return "updated"
	}
	return "inserted"
}
