package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/tourism-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/tourism-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	settings *commands.Settings
	reporter *export.Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry  source.Registry
	Output    io.Writer
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Registry == nil {
		opts.Registry = source.NewRegistry()
	}

	cli := &CLI{
		settings: &commands.Settings{
			Registry:  opts.Registry,
			LogOutput: opts.LogOutput,
		},
		reporter: export.NewReporter(opts.Output),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	if args != nil {
		cli.rootCmd.SetArgs(args)
	}
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Tourism and economy chart tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.settings.ConfigPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&cli.settings.Source, "source", "s", "", "Data source path or URL (overrides data.source)")
	flags.BoolVarP(&cli.settings.Verbose, "verbose", "v", false, "Debug logging")

	cmd.AddCommand(commands.NewPagesCmd(cli.output))
	cmd.AddCommand(commands.NewRenderCmd(cli.settings, cli.output))
	cmd.AddCommand(commands.NewSummaryCmd(cli.settings, cli.reporter))
	cmd.AddCommand(commands.NewImportCmd(cli.settings, cli.output))

	return cmd
}
