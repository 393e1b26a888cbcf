package main

import (
	"fmt"
	"os"

	"github.com/de-tools/tourism-atlas/pkg/runtime/terminal"
	"github.com/de-tools/tourism-atlas/pkg/store/source"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: source.NewRegistry(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
