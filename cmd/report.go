package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tradetrackr "github.com/UttU28/TradeTrackr"
	"github.com/google/subcommands"
)

type reportCmd struct {
	outputFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write the weekly performance report as CSV" }
func (*reportCmd) Usage() string {
	return `report [-o <file>]

  Writes a CSV report with one row per week: date range, start and end
  value, net gain and trade count. Defaults to stdout.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file, defaults to stdout")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating report file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := tradetrackr.WriteReport(out, book.Summaries()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile != "" {
		fmt.Printf("✅ Wrote report to %s\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}
