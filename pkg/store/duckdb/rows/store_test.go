package rows

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/tourism-atlas/pkg/models/store"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *rowStore
}

var fixedNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func setupFixture(t *testing.T) *fixture {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)
	rs := s.(*rowStore)
	rs.now = func() time.Time { return fixedNow }

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, mock: mock, store: rs}
}

func sampleRecords() []store.RowRecord {
	return []store.RowRecord{
		{
			Position: 0,
			Date:     time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC),
			Inbound:  sql.NullFloat64{Float64: 8347, Valid: true},
			GDP:      sql.NullFloat64{Float64: 4515.26, Valid: true},
		},
		{
			Position: 1,
			Date:     time.Date(2007, 7, 1, 0, 0, 0, 0, time.UTC),
			Outbound: sql.NullFloat64{Float64: 1561, Valid: true},
		},
	}
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}

func TestRowStore_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("success - own transaction", func(t *testing.T) {
		f := setupFixture(t)
		records := sampleRecords()

		f.mock.ExpectBegin()
		f.mock.ExpectExec("DELETE FROM tourism_rows").
			WithArgs("JapanTourism.csv").
			WillReturnResult(sqlmock.NewResult(0, 5))
		prep := f.mock.ExpectPrepare("INSERT INTO tourism_rows")
		for _, r := range records {
			prep.ExpectExec().
				WithArgs("JapanTourism.csv", r.Position, r.Date, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		f.mock.ExpectExec("INSERT INTO import_state").
			WithArgs("JapanTourism.csv", 2, fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		f.mock.ExpectCommit()

		err := f.store.Replace(ctx, "JapanTourism.csv", records)
		require.NoError(t, err)
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("failure - insert error rolls back", func(t *testing.T) {
		f := setupFixture(t)

		f.mock.ExpectBegin()
		f.mock.ExpectExec("DELETE FROM tourism_rows").
			WillReturnResult(sqlmock.NewResult(0, 0))
		f.mock.ExpectPrepare("INSERT INTO tourism_rows").
			ExpectExec().
			WillReturnError(errors.New("constraint violation"))
		f.mock.ExpectRollback()

		err := f.store.Replace(ctx, "JapanTourism.csv", sampleRecords())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insert record 0")
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("success - joins transaction from context", func(t *testing.T) {
		f := setupFixture(t)

		f.mock.ExpectBegin()
		f.mock.ExpectExec("DELETE FROM tourism_rows").
			WillReturnResult(sqlmock.NewResult(0, 0))
		f.mock.ExpectPrepare("INSERT INTO tourism_rows")
		f.mock.ExpectExec("INSERT INTO import_state").
			WithArgs("empty.csv", 0, fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))
		f.mock.ExpectCommit()

		tx, err := f.db.Begin()
		require.NoError(t, err)

		err = f.store.Replace(duckdb.WithTransaction(ctx, tx), "empty.csv", nil)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.NoError(t, f.mock.ExpectationsWereMet())
	})
}

func TestRowStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	columns := []string{"source", "position", "date", "inbound", "outbound", "gdp", "usdjpy"}
	f.mock.ExpectQuery("SELECT (.+) FROM tourism_rows WHERE source = \\? ORDER BY position").
		WithArgs("JapanTourism.csv").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("JapanTourism.csv", 0, time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC), 8347.0, nil, 4515.26, nil).
			AddRow("JapanTourism.csv", 1, time.Date(2007, 7, 1, 0, 0, 0, 0, time.UTC), nil, 1561.0, nil, 121.56))

	records, err := f.store.List(ctx, "JapanTourism.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 0, records[0].Position)
	assert.True(t, records[0].Inbound.Valid)
	assert.False(t, records[0].Outbound.Valid)
	assert.Equal(t, 1561.0, records[1].Outbound.Float64)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestRowStore_State(t *testing.T) {
	ctx := context.Background()

	t.Run("not imported", func(t *testing.T) {
		f := setupFixture(t)
		f.mock.ExpectQuery("SELECT source, rows, imported_at FROM import_state").
			WithArgs("missing.csv").
			WillReturnError(sql.ErrNoRows)

		state, err := f.store.State(ctx, "missing.csv")
		require.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("imported", func(t *testing.T) {
		f := setupFixture(t)
		f.mock.ExpectQuery("SELECT source, rows, imported_at FROM import_state").
			WithArgs("JapanTourism.csv").
			WillReturnRows(sqlmock.NewRows([]string{"source", "rows", "imported_at"}).
				AddRow("JapanTourism.csv", 120, fixedNow))

		state, err := f.store.State(ctx, "JapanTourism.csv")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, 120, state.Rows)
		assert.Equal(t, fixedNow, state.ImportedAt)
	})
}

func TestLoader_MapsRecords(t *testing.T) {
	f := setupFixture(t)
	columns := []string{"source", "position", "date", "inbound", "outbound", "gdp", "usdjpy"}
	f.mock.ExpectQuery("FROM tourism_rows").
		WithArgs("JapanTourism.csv").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("JapanTourism.csv", 0, time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC), 8347.0, nil, nil, nil))

	rows, err := NewLoader(f.store, "JapanTourism.csv").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Inbound.Present)
	assert.False(t, rows[0].GDP.Present)
}
