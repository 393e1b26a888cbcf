package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/de-tools/tourism-atlas/pkg/services/page"
	"github.com/de-tools/tourism-atlas/pkg/services/tabs"
	"github.com/spf13/cobra"
)

type PagesCmd struct {
	out io.Writer
}

func NewPagesCmd(out io.Writer) *cobra.Command {
	pc := &PagesCmd{out: out}
	return &cobra.Command{
		Use:   "pages",
		Short: "List chart pages and their series",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}
}

func (pc *PagesCmd) run(_ *cobra.Command, _ []string) error {
	tabByPage := map[int]string{}
	for _, t := range tabs.DefaultTabs() {
		tabByPage[t.Page] = t.Name
	}

	w := tabwriter.NewWriter(pc.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAGE\tTAB\tLEFT AXIS\tRIGHT AXIS")
	for _, cfg := range page.Pages() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cfg.Index, tabByPage[cfg.Index], cfg.PrimaryLabel, cfg.SecondaryLabel)
	}
	return w.Flush()
}
