package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UttU28/TradeTrackr/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	week string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a week's performance summary" }
func (*summaryCmd) Usage() string {
	return `summary [-week <id>]

  Displays a week's summary: start and end value, net gain, trade
  statistics and the profit-sharing allocation. Defaults to the current
  week.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "week", "", "Week id, defaults to the current week")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	weekID := c.week
	if weekID == "" {
		weekID = book.CurrentWeekID()
	}
	if book.Week(weekID) == nil {
		fmt.Fprintln(os.Stderr, "Error: no such week.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.WeeklySummaryMarkdown(book.WeeklySummary(weekID), currency()))
	return subcommands.ExitSuccess
}
