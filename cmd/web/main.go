package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	"github.com/de-tools/tourism-atlas/pkg/server"
	"github.com/de-tools/tourism-atlas/pkg/services/annotation"
	"github.com/de-tools/tourism-atlas/pkg/services/chart"
	"github.com/de-tools/tourism-atlas/pkg/services/config"
	"github.com/de-tools/tourism-atlas/pkg/services/dashboard"
	"github.com/de-tools/tourism-atlas/pkg/services/tabs"
	"github.com/de-tools/tourism-atlas/pkg/services/watch"
	"github.com/de-tools/tourism-atlas/pkg/services/workflow"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb"
	"github.com/de-tools/tourism-atlas/pkg/store/duckdb/rows"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the tourism atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML config file (defaults and ATLAS_* env vars apply without one)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx, cancel := context.WithCancel(logger.WithContext(cmd.Context()))
	defer cancel()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	registry := source.NewRegistry()
	if needsStore(cfg) {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Store.DbPath})
		if err != nil {
			return fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		defer db.Close()

		if err := registry.Register("duckdb", rows.Factory(db)); err != nil {
			return err
		}

		if cfg.Import.Schedule != "" {
			stopImport, err := startImport(ctx, cfg, registry, db)
			if err != nil {
				return err
			}
			defer stopImport()
		}
	}

	loader, err := registry.Create(ctx, cfg.Data.Source)
	if err != nil {
		return fmt.Errorf("failed to resolve data source: %w", err)
	}

	notes, err := annotation.Load(cfg.Annotations.Path)
	if err != nil {
		return fmt.Errorf("failed to load annotations: %w", err)
	}

	svc := dashboard.NewService(loader, chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height), notes)
	tabCtrl := tabs.NewController(svc, tabs.Config{
		DefaultTab: cfg.Tabs.Default,
		Highlight:  cfg.Tabs.Highlight,
	})
	if _, err := tabCtrl.Init(ctx); err != nil {
		return fmt.Errorf("failed to open default tab: %w", err)
	}

	deps := server.Dependencies{
		Pages:  svc,
		Tabs:   tabCtrl,
		Logger: logger,
	}
	if cfg.Watch.Enabled {
		broker, err := startWatch(ctx, cfg.Data.Source)
		if err != nil {
			return err
		}
		deps.Events = broker
	}

	logger.Info().
		Str("source", cfg.Data.Source).
		Strs("schemes", registry.ListSchemes()).
		Bool("watch", cfg.Watch.Enabled).
		Msg("configuration loaded")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Highlight:       cfg.Tabs.Highlight,
		Dependencies:    deps,
	})
	return api.Start(ctx)
}

// needsStore reports whether DuckDB backs the data source or a scheduled
// import.
func needsStore(cfg *config.Config) bool {
	if cfg.Import.Schedule != "" {
		return true
	}
	u, err := url.Parse(cfg.Data.Source)
	return err == nil && u.Scheme == "duckdb"
}

// startImport re-imports the upstream named by the duckdb source's
// source parameter on the configured schedule.
func startImport(ctx context.Context, cfg *config.Config, registry source.Registry, db *sql.DB) (func(), error) {
	upstream := cfg.Data.Source
	if u, err := url.Parse(upstream); err == nil && u.Scheme == "duckdb" {
		upstream = u.Query().Get("source")
	}

	loader, err := registry.Create(ctx, upstream)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve import source: %w", err)
	}
	rowStore, err := rows.NewStore(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create row store: %w", err)
	}

	runner := workflow.NewRunner(upstream, loader, db, rowStore)
	if _, err := runner.Run(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("initial import failed")
	}

	scheduler := workflow.NewScheduler(runner)
	if err := scheduler.Register(ctx, cfg.Import.Schedule); err != nil {
		return nil, err
	}
	scheduler.Start(ctx)
	return scheduler.Stop, nil
}

func startWatch(ctx context.Context, location string) (*watch.Broker, error) {
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Scheme != "file" && len(u.Scheme) > 1 {
		return nil, fmt.Errorf("watch.enabled needs a local file source, got %s", location)
	}
	if u, err := url.Parse(location); err == nil && u.Scheme == "file" {
		location = u.Host + u.Path
	}

	fw, err := watch.NewFileWatcher(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", location, err)
	}
	go func() {
		<-ctx.Done()
		_ = fw.Close()
	}()

	broker := watch.NewBroker()
	go broker.Forward(ctx, fw.Events())
	return broker, nil
}
