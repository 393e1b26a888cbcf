package rows

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/models/store"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb"
)

// Store persists imported row sequences keyed by the location they were
// read from.
type Store interface {
	Replace(ctx context.Context, source string, records []store.RowRecord) error
	List(ctx context.Context, source string) ([]store.RowRecord, error)
	State(ctx context.Context, source string) (*store.ImportState, error)
}

type rowStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &rowStore{
		db:  db,
		now: time.Now,
	}, nil
}

// Replace swaps the stored rows of source for records. It joins the
// transaction carried by ctx, or runs in its own.
func (s *rowStore) Replace(ctx context.Context, source string, records []store.RowRecord) (err error) {
	tx := duckdb.GetTransaction(ctx)
	if tx == nil {
		tx, err = s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
				return
			}
			err = tx.Commit()
		}()
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tourism_rows WHERE source = ?`, source); err != nil {
		return fmt.Errorf("delete rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tourism_rows (
			source, position, date, inbound, outbound, gdp, usdjpy
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.ExecContext(ctx,
			source,
			record.Position,
			record.Date,
			record.Inbound,
			record.Outbound,
			record.GDP,
			record.USDJPY,
		)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", record.Position, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO import_state (source, rows, imported_at) VALUES (?, ?, ?)
		ON CONFLICT (source) DO UPDATE SET rows = excluded.rows, imported_at = excluded.imported_at`,
		source, len(records), s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update import state: %w", err)
	}

	return nil
}

func (s *rowStore) List(ctx context.Context, source string) ([]store.RowRecord, error) {
	query := `
		SELECT source, position, date, inbound, outbound, gdp, usdjpy
		FROM tourism_rows
		WHERE source = ?
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, query, source)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	records := make([]store.RowRecord, 0)
	for rows.Next() {
		var r store.RowRecord
		if err := rows.Scan(&r.Source, &r.Position, &r.Date, &r.Inbound, &r.Outbound, &r.GDP, &r.USDJPY); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *rowStore) State(ctx context.Context, source string) (*store.ImportState, error) {
	var state store.ImportState
	err := s.db.QueryRowContext(ctx,
		`SELECT source, rows, imported_at FROM import_state WHERE source = ?`, source,
	).Scan(&state.Source, &state.Rows, &state.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get import state: %w", err)
	}
	return &state, nil
}
