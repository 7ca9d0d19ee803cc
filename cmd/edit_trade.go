package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editTradeCmd struct {
	id          string
	week        string
	amount      string
	description string
}

func (*editTradeCmd) Name() string     { return "edit-trade" }
func (*editTradeCmd) Synopsis() string { return "edit a trade, optionally moving it to another week" }
func (*editTradeCmd) Usage() string {
	return `edit-trade -id <id> [-amount <amount>] [-desc <text>] [-week <id>]

  Updates a recorded trade. Omitted flags keep the current value. Passing
  -week moves the trade to that week; its original timestamp is preserved.
`
}

func (c *editTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trade id (required)")
	f.StringVar(&c.amount, "amount", "", "New profit or loss amount")
	f.StringVar(&c.description, "desc", "", "New description")
	f.StringVar(&c.week, "week", "", "Week id to move the trade to")
}

func (c *editTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	week, trade := book.Trade(c.id)
	if trade == nil {
		fmt.Fprintf(os.Stderr, "Error: no trade with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	amount := trade.Amount
	if c.amount != "" {
		amount, err = decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
	}
	description := trade.Description
	if c.description != "" {
		description = c.description
	}
	weekID := week.ID
	if c.week != "" {
		weekID = c.week
	}

	if err := book.UpdateTrade(c.id, weekID, amount, description); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating trade: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Updated trade %s\n", c.id)
	return subcommands.ExitSuccess
}
