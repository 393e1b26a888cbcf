package rows

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/de-tools/tourism-atlas/pkg/adapters"
	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
)

// Loader serves rows previously imported from source.
type Loader struct {
	store  Store
	source string
}

func NewLoader(store Store, source string) *Loader {
	return &Loader{store: store, source: source}
}

func (l *Loader) Load(ctx context.Context) ([]domain.TimeSeriesRow, error) {
	records, err := l.store.List(ctx, l.source)
	if err != nil {
		return nil, fmt.Errorf("list imported rows of %s: %w", l.source, err)
	}

	rows := make([]domain.TimeSeriesRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, adapters.MapStoreRecordToDomainRow(r))
	}
	return rows, nil
}

// Factory resolves duckdb://local?source=<imported location>.
func Factory(db *sql.DB) source.Factory {
	return func(_ context.Context, location *url.URL) (source.Loader, error) {
		name := location.Query().Get("source")
		if name == "" {
			return nil, fmt.Errorf("duckdb location %q has no source parameter", location.String())
		}
		store, err := NewStore(db)
		if err != nil {
			return nil, err
		}
		return NewLoader(store, name), nil
	}
}
