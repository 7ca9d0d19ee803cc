package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tradetrackr "github.com/UttU28/TradeTrackr"
	"github.com/UttU28/TradeTrackr/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the week-by-week performance series" }
func (*historyCmd) Usage() string {
	return `history

  Displays the weeks in chronological order with per-week gain, running
  cumulative gain and the in-week percent change.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	points := tradetrackr.ChartSeries(book.Summaries())
	printMarkdown(renderer.HistoryMarkdown(points, currency()))
	return subcommands.ExitSuccess
}
