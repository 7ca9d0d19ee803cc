package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UttU28/TradeTrackr/renderer"
	"github.com/google/subcommands"
)

type weeksCmd struct{}

func (*weeksCmd) Name() string     { return "weeks" }
func (*weeksCmd) Synopsis() string { return "list the recorded weeks" }
func (*weeksCmd) Usage() string {
	return `weeks

  Lists every recorded week with its date range, net gain and trade count.
  The current week is marked.
`
}

func (*weeksCmd) SetFlags(f *flag.FlagSet) {}

func (c *weeksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WeeksMarkdown(book.Summaries(), book.CurrentWeekID(), currency()))
	return subcommands.ExitSuccess
}
