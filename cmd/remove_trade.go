package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeTradeCmd struct {
	id string
}

func (*removeTradeCmd) Name() string     { return "remove-trade" }
func (*removeTradeCmd) Synopsis() string { return "remove a recorded trade" }
func (*removeTradeCmd) Usage() string {
	return `remove-trade -id <id>

  Removes one trade from its week.
`
}

func (c *removeTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trade id (required)")
}

func (c *removeTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveTrade(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing trade: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Removed trade %s\n", c.id)
	return subcommands.ExitSuccess
}
