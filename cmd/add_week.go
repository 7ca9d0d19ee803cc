package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addWeekCmd struct {
	start      string
	end        string
	startValue string
	current    bool
}

func (*addWeekCmd) Name() string     { return "add-week" }
func (*addWeekCmd) Synopsis() string { return "add a trading week to the journal" }
func (*addWeekCmd) Usage() string {
	return `add-week -start <date> -end <date> -value <amount> [-current]

  Adds a trading week:
  - start, end: The week's date range, ISO format (e.g. "2025-08-18").
  - value: The account value at the start of the week.
  - current: Also make it the current week. The first week ever added
    becomes current regardless.
`
}

func (c *addWeekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "Week start date (required)")
	f.StringVar(&c.end, "end", "", "Week end date (required)")
	f.StringVar(&c.startValue, "value", "", "Account value at week start (required)")
	f.BoolVar(&c.current, "current", false, "Make this the current week")
}

func (c *addWeekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}
	startValue, err := decimal.NewFromString(c.startValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start value %q: %v\n", c.startValue, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := book.AddWeek(start, end, startValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding week: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.current {
		if err := book.SetCurrentWeek(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error selecting week: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Added week %s to %s (%s)\n", start, end, id)
	return subcommands.ExitSuccess
}
