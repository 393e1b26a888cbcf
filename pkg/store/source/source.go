package source

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/tourism-atlas/pkg/models/domain"
	"github.com/de-tools/tourism-atlas/pkg/store/csvfile"
)

// Loader fetches and parses the full row sequence. Every call reads the
// underlying resource again.
type Loader interface {
	Load(ctx context.Context) ([]domain.TimeSeriesRow, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]domain.TimeSeriesRow, error)

func (f LoaderFunc) Load(ctx context.Context) ([]domain.TimeSeriesRow, error) {
	return f(ctx)
}

// opener returns a fresh reader over a CSV resource.
type opener func(ctx context.Context) (io.ReadCloser, error)

type csvLoader struct {
	location string
	open     opener
}

func (l *csvLoader) Load(ctx context.Context) ([]domain.TimeSeriesRow, error) {
	rc, err := l.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", l.location, err)
	}
	defer rc.Close()

	rows, err := csvfile.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.location, err)
	}
	return rows, nil
}
