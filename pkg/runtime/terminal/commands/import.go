package commands

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/de-tools/tourism-atlas/pkg/services/workflow"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	settings *Settings
	out      io.Writer
	dbPath   string
	schedule string
}

func NewImportCmd(settings *Settings, out io.Writer) *cobra.Command {
	ic := &ImportCmd{settings: settings, out: out}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the data source into the embedded DuckDB store",
		Long: "Import reads the configured source and replaces its rows in DuckDB.\n" +
			"With --schedule it keeps running and re-imports on a cron schedule\n" +
			"(six fields, seconds first) until interrupted.",
		Args: cobra.NoArgs,
		RunE: ic.run,
	}

	cmd.Flags().StringVar(&ic.dbPath, "db", "", "DuckDB file (default store.db_path)")
	cmd.Flags().StringVar(&ic.schedule, "schedule", "", "Cron schedule (default import.schedule)")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := ic.settings.Load()
	if err != nil {
		return err
	}
	if ic.dbPath != "" {
		cfg.Store.DbPath = ic.dbPath
	}
	if ic.schedule == "" {
		ic.schedule = cfg.Import.Schedule
	}

	ctx := ic.settings.Context(cmd.Context())
	logger := zerolog.Ctx(ctx)

	loader, release, err := ic.settings.Loader(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	db, rowStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	runner := workflow.NewRunner(cfg.Data.Source, loader, db, rowStore)
	res, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", cfg.Data.Source, err)
	}
	fmt.Fprintf(ic.out, "imported %d rows from %s into %s\n", res.Rows, res.Source, cfg.Store.DbPath)

	if ic.schedule == "" {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := workflow.NewScheduler(runner)
	if err := scheduler.Register(ctx, ic.schedule); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("import schedule stopped")
			return nil
		case res := <-scheduler.Results():
			fmt.Fprintf(ic.out, "imported %d rows from %s at %s\n",
				res.Rows, res.Source, res.ImportedAt.Format("2006-01-02 15:04:05"))
		}
	}
}

