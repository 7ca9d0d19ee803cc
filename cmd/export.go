package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tradetrackr "github.com/UttU28/TradeTrackr"
	"github.com/google/subcommands"
)

type exportCmd struct {
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the journal as a JSON backup" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes the whole journal (participants, weeks with trades, weekly ratio
  overrides) as a JSON backup. Defaults to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Output file, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating backup file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := tradetrackr.ExportBook(out, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile != "" {
		fmt.Printf("✅ Exported journal to %s\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}
