package commands

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/de-tools/tourism-atlas/pkg/services/annotation"
	"github.com/de-tools/tourism-atlas/pkg/services/chart"
	"github.com/de-tools/tourism-atlas/pkg/services/config"
	"github.com/de-tools/tourism-atlas/pkg/services/dashboard"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb/rows"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
	"github.com/rs/zerolog"
)

// Settings holds the persistent flags shared by every command.
type Settings struct {
	ConfigPath string
	Source     string
	Verbose    bool

	Registry source.Registry
	LogOutput io.Writer
}

func (s *Settings) Load() (*config.Config, error) {
	cfg, err := config.LoadConfig(s.ConfigPath)
	if err != nil {
		return nil, err
	}
	if s.Source != "" {
		cfg.Data.Source = s.Source
	}
	return cfg, nil
}

func (s *Settings) Context(parent context.Context) context.Context {
	out := s.LogOutput
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if s.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return logger.WithContext(parent)
}

// Loader resolves the configured source. duckdb locations open the
// configured store; the returned func releases it.
func (s *Settings) Loader(ctx context.Context, cfg *config.Config) (source.Loader, func(), error) {
	location := cfg.Data.Source
	u, err := url.Parse(location)
	if err == nil && u.Scheme == "duckdb" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Store.DbPath})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		loader, err := rows.Factory(db)(ctx, u)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return loader, func() { _ = db.Close() }, nil
	}

	loader, err := s.Registry.Create(ctx, location)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve source %s: %w", location, err)
	}
	return loader, func() {}, nil
}

// Service builds the page service for the configured source.
func (s *Settings) Service(ctx context.Context, cfg *config.Config) (*dashboard.Service, func(), error) {
	loader, release, err := s.Loader(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	notes, err := annotation.Load(cfg.Annotations.Path)
	if err != nil {
		release()
		return nil, nil, err
	}
	renderer := chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)
	return dashboard.NewService(loader, renderer, notes), release, nil
}

func openStore(cfg *config.Config) (*sql.DB, rows.Store, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Store.DbPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	rowStore, err := rows.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create row store: %w", err)
	}
	return db, rowStore, nil
}
