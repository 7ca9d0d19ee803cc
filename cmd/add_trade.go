package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addTradeCmd struct {
	week        string
	amount      string
	description string
}

func (*addTradeCmd) Name() string     { return "add-trade" }
func (*addTradeCmd) Synopsis() string { return "record a trade result" }
func (*addTradeCmd) Usage() string {
	return `add-trade -amount <amount> [-week <id>] [-desc <text>]

  Records a trade result:
  - amount: The profit (positive) or loss (negative) of the trade (required).
  - week: The week to record it in. Defaults to the current week.
  - desc: An optional free-form note.
`
}

func (c *addTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Trade profit or loss (required)")
	f.StringVar(&c.week, "week", "", "Week id, defaults to the current week")
	f.StringVar(&c.description, "desc", "", "Optional description")
}

func (c *addTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount flag is required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := book.AddTrade(c.week, amount, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding trade: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Recorded trade %s (%s)\n", amount, id)
	return subcommands.ExitSuccess
}
