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

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display aggregates across all weeks" }
func (*dashboardCmd) Usage() string {
	return `dashboard

  Displays the overall performance: start and end value across all weeks,
  total and average gains, and the best and worst week.
`
}

func (*dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	summaries := book.Summaries()
	overview := tradetrackr.NewOverview(summaries)
	printMarkdown(renderer.OverviewMarkdown(overview, len(summaries), currency()))
	return subcommands.ExitSuccess
}
