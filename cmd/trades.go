package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UttU28/TradeTrackr/renderer"
	"github.com/google/subcommands"
)

type tradesCmd struct {
	week string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list a week's trades" }
func (*tradesCmd) Usage() string {
	return `trades [-week <id>]

  Lists the trades of a week in the order they were recorded. Defaults to
  the current week.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "week", "", "Week id, defaults to the current week")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	week := book.CurrentWeek()
	if c.week != "" {
		week = book.Week(c.week)
	}
	if week == nil {
		fmt.Fprintln(os.Stderr, "Error: no such week.")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TradesMarkdown(week.Trades, currency()))
	return subcommands.ExitSuccess
}
