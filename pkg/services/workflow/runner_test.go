package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/models/store"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRowStore struct {
	mock.Mock
}

func (m *mockRowStore) Replace(ctx context.Context, source string, records []store.RowRecord) error {
	return m.Called(ctx, source, records).Error(0)
}

func (m *mockRowStore) List(ctx context.Context, source string) ([]store.RowRecord, error) {
	args := m.Called(ctx, source)
	return args.Get(0).([]store.RowRecord), args.Error(1)
}

func (m *mockRowStore) State(ctx context.Context, source string) (*store.ImportState, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(*store.ImportState), args.Error(1)
}

func staticLoader(rows []domain.TimeSeriesRow, err error) source.Loader {
	return source.LoaderFunc(func(context.Context) ([]domain.TimeSeriesRow, error) {
		return rows, err
	})
}

var sample = []domain.TimeSeriesRow{
	{Date: time.Date(2007, 6, 1, 0, 0, 0, 0, time.UTC), Inbound: domain.Present(8347)},
	{Date: time.Date(2007, 7, 1, 0, 0, 0, 0, time.UTC), GDP: domain.Present(4515)},
}

func inTransaction(ctx context.Context) bool {
	return duckdb.GetTransaction(ctx) != nil
}

func TestRunner_Run(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rowStore := new(mockRowStore)
	rowStore.On("Replace", mock.MatchedBy(inTransaction), "data.csv", mock.MatchedBy(func(records []store.RowRecord) bool {
		return len(records) == 2 &&
			records[0].Position == 0 &&
			records[0].Inbound.Valid && records[0].Inbound.Float64 == 8347 &&
			!records[1].Inbound.Valid &&
			records[1].Position == 1
	})).Return(nil).Once()

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	runner := NewRunner("data.csv", staticLoader(sample, nil), db, rowStore)
	res, err := runner.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "data.csv", res.Source)
	assert.Equal(t, 2, res.Rows)
	assert.False(t, res.ImportedAt.IsZero())
	rowStore.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRunner_Run_StoreFailureRollsBack(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("constraint violation")
	rowStore := new(mockRowStore)
	rowStore.On("Replace", mock.Anything, "data.csv", mock.Anything).Return(boom)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	_, err = NewRunner("data.csv", staticLoader(sample, nil), db, rowStore).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRunner_Run_LoadFailure(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("unexpected status 404 Not Found")
	rowStore := new(mockRowStore)

	_, err = NewRunner("https://example.com/data.csv", staticLoader(nil, boom), db, rowStore).Run(context.Background())
	assert.ErrorIs(t, err, boom)
	rowStore.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestScheduler_RegisterRejectsBadSpec(t *testing.T) {
	s := NewScheduler(NewRunner("data.csv", staticLoader(nil, nil), nil, nil))
	assert.Error(t, s.Register(context.Background(), "every minute"))
	assert.NoError(t, s.Register(context.Background(), "*/30 * * * * *"))
}

func TestScheduler_RunOnce(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rowStore := new(mockRowStore)
	rowStore.On("Replace", mock.Anything, "data.csv", mock.Anything).Return(nil)
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	s := NewScheduler(NewRunner("data.csv", staticLoader(sample, nil), db, rowStore))
	s.runOnce(context.Background())

	select {
	case res := <-s.Results():
		assert.Equal(t, 2, res.Rows)
	default:
		t.Fatal("no result published")
	}
}
