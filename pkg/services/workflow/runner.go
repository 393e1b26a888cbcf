package workflow

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/adapters"
	"github.com/de-tools/tourism-atlas/pkg/models/store"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb/rows"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
	"github.com/rs/zerolog"
)

// Runner imports one source into the embedded store.
type Runner struct {
	source   string
	loader   source.Loader
	db       *sql.DB
	rowStore rows.Store
	now      func() time.Time
}

type RunResult struct {
	Source     string
	Rows       int
	ImportedAt time.Time
	Elapsed    time.Duration
}

func NewRunner(location string, loader source.Loader, db *sql.DB, rowStore rows.Store) *Runner {
	return &Runner{
		source:   location,
		loader:   loader,
		db:       db,
		rowStore: rowStore,
		now:      time.Now,
	}
}

// Run reads the whole source and replaces its stored rows in one
// transaction.
func (r *Runner) Run(ctx context.Context) (res RunResult, err error) {
	logger := zerolog.Ctx(ctx).With().Str("source", r.source).Logger()
	started := r.now()

	data, err := r.loader.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("load %s: %w", r.source, err)
	}

	records := make([]store.RowRecord, 0, len(data))
	for i, row := range data {
		records = append(records, adapters.MapDomainRowToStoreRecord(r.source, i, row))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to instantiate transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = r.rowStore.Replace(duckdb.WithTransaction(ctx, tx), r.source, records); err != nil {
		return res, fmt.Errorf("store rows: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("commit import: %w", err)
	}

	res = RunResult{
		Source:     r.source,
		Rows:       len(records),
		ImportedAt: r.now(),
	}
	res.Elapsed = res.ImportedAt.Sub(started)

	logger.Info().Int("rows", res.Rows).Dur("elapsed", res.Elapsed).Msg("import finished")
	return res, nil
}
