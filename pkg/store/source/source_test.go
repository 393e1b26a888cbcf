package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const csvBody = "Date,Inbound,Outbound,GDP,USDJPY\n6/1/2007,8347,,4515.26,122.64\n7/1/2007,,1561,,121.56\n"

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "JapanTourism.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvBody), 0o644))
	return path
}

func TestFileLoader_RereadsOnEveryLoad(t *testing.T) {
	path := writeCSV(t)
	loader := NewFileLoader(path)

	rows, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, os.WriteFile(path, []byte(csvBody+"8/1/2007,1,2,3,4\n"), 0o644))

	rows, err = loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHTTPLoader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/JapanTourism.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, csvBody)
	}))
	defer srv.Close()

	t.Run("success", func(t *testing.T) {
		rows, err := NewHTTPLoader(srv.Client(), srv.URL+"/JapanTourism.csv").Load(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 8347.0, rows[0].Inbound.Value)
	})

	t.Run("non-2xx status fails", func(t *testing.T) {
		_, err := NewHTTPLoader(srv.Client(), srv.URL+"/missing.csv").Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, *params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestS3Loader(t *testing.T) {
	client := new(mockS3)
	client.On("GetObject", mock.Anything, "tourism", "data/JapanTourism.csv").
		Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(csvBody))}, nil).Once()
	client.On("GetObject", mock.Anything, "tourism", "missing.csv").
		Return(nil, errors.New("NoSuchKey")).Once()

	rows, err := NewS3Loader(client, "tourism", "data/JapanTourism.csv").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = NewS3Loader(client, "tourism", "missing.csv").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://tourism/missing.csv")

	client.AssertExpectations(t)
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("bare path resolves to file loader", func(t *testing.T) {
		path := writeCSV(t)
		loader, err := NewRegistry().Create(ctx, path)
		require.NoError(t, err)

		rows, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("file scheme", func(t *testing.T) {
		path := writeCSV(t)
		loader, err := NewRegistry().Create(ctx, "file://"+path)
		require.NoError(t, err)

		_, err = loader.Load(ctx)
		require.NoError(t, err)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		_, err := NewRegistry().Create(ctx, "ftp://example.com/data.csv")
		assert.ErrorIs(t, err, ErrUnsupportedScheme)
	})

	t.Run("custom scheme", func(t *testing.T) {
		r := NewRegistry()
		want := []domain.TimeSeriesRow{{Inbound: domain.Present(1)}}
		err := r.Register("mem", func(context.Context, *url.URL) (Loader, error) {
			return LoaderFunc(func(context.Context) ([]domain.TimeSeriesRow, error) { return want, nil }), nil
		})
		require.NoError(t, err)

		loader, err := r.Create(ctx, "mem://rows")
		require.NoError(t, err)
		got, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		err := NewRegistry().Register("s3", S3Factory)
		assert.Error(t, err)
	})

	t.Run("list schemes", func(t *testing.T) {
		assert.Equal(t, []string{"file", "http", "https", "s3"}, NewRegistry().ListSchemes())
	})
}
