package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/de-tools/tourism-atlas/pkg/adapters"
	"github.com/de-tools/tourism-atlas/pkg/services/chart"
	"github.com/spf13/cobra"
)

type RenderCmd struct {
	settings *Settings
	out      io.Writer
	page     int
	format   string
	output   string
	static   bool
	timeout  time.Duration
}

func NewRenderCmd(settings *Settings, out io.Writer) *cobra.Command {
	rc := &RenderCmd{settings: settings, out: out}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one chart page as SVG, PNG or JSON",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().IntVarP(&rc.page, "page", "p", 0, "Page index (0-3)")
	cmd.Flags().StringVarP(&rc.format, "format", "f", "svg", "Output format: svg, png or json")
	cmd.Flags().StringVarP(&rc.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&rc.static, "static", false, "Draw the SVG with the static exporter instead of the interactive markup")
	cmd.Flags().DurationVar(&rc.timeout, "timeout", 60*time.Second, "Time limit for loading the data")

	return cmd
}

func (rc *RenderCmd) run(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := rc.settings.Load()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(rc.settings.Context(cmd.Context()), rc.timeout)
	defer cancel()

	svc, release, err := rc.settings.Service(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()

	c, err := svc.LoadPage(ctx, rc.page)
	if err != nil {
		return fmt.Errorf("failed to render page %d: %w", rc.page, err)
	}

	out := rc.out
	if rc.output != "" {
		f, ferr := os.Create(rc.output)
		if ferr != nil {
			return fmt.Errorf("failed to create %s: %w", rc.output, ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	switch rc.format {
	case "json":
		data, err := sonic.ConfigStd.MarshalIndent(adapters.MapDomainChartToAPI(c), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode chart: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "svg":
		if !rc.static {
			return chart.WriteSVG(out, c)
		}
	}

	format, err := chart.ParseFormat(rc.format)
	if err != nil {
		return err
	}
	return chart.Export(out, c, format)
}
