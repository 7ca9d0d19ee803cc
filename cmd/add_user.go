package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addUserCmd struct {
	name  string
	ratio string
}

func (*addUserCmd) Name() string     { return "add-user" }
func (*addUserCmd) Synopsis() string { return "add a participant to the journal" }
func (*addUserCmd) Usage() string {
	return `add-user -name <name> [-ratio <ratio>]

  Adds a participant who takes part in profit sharing:
  - name: The participant's display name (required).
  - ratio: The default profit-sharing ratio, a non-negative number (defaults to 0).
`
}

func (c *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Participant name (required)")
	f.StringVar(&c.ratio, "ratio", "0", "Default profit-sharing ratio")
}

func (c *addUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ratio, err := decimal.NewFromString(c.ratio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing ratio %q: %v\n", c.ratio, err)
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := book.AddUser(c.name, ratio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding participant: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Added participant %q (%s)\n", c.name, id)
	return subcommands.ExitSuccess
}
