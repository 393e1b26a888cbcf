package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/tourism-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/tourism-atlas/pkg/services/page"
	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	settings *Settings
	reporter *export.Reporter
	page     int
	all      bool
	plain    bool
}

func NewSummaryCmd(settings *Settings, reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{settings: settings, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise the two series of a page",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().IntVarP(&sc.page, "page", "p", 0, "Page index (0-3)")
	cmd.Flags().BoolVar(&sc.all, "all", false, "Summarise every page")
	cmd.Flags().BoolVar(&sc.plain, "plain", false, "One line per series instead of tables")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := sc.settings.Load()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(sc.settings.Context(cmd.Context()), 60*time.Second)
	defer cancel()

	svc, release, err := sc.settings.Service(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	indices := []int{sc.page}
	if sc.all {
		indices = indices[:0]
		for _, p := range page.Pages() {
			indices = append(indices, p.Index)
		}
	}

	for _, index := range indices {
		report, err := svc.Report(ctx, index)
		if err != nil {
			return fmt.Errorf("failed to summarise page %d: %w", index, err)
		}
		if sc.plain {
			err = sc.reporter.HandlePlain(report)
		} else {
			err = sc.reporter.Handle(report)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
