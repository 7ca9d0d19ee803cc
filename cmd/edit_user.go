package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editUserCmd struct {
	id    string
	name  string
	ratio string
}

func (*editUserCmd) Name() string     { return "edit-user" }
func (*editUserCmd) Synopsis() string { return "edit a participant's name or default ratio" }
func (*editUserCmd) Usage() string {
	return `edit-user -id <id> [-name <name>] [-ratio <ratio>]

  Updates a participant. Omitted flags keep the current value.
`
}

func (c *editUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Participant id (required)")
	f.StringVar(&c.name, "name", "", "New participant name")
	f.StringVar(&c.ratio, "ratio", "", "New default profit-sharing ratio")
}

func (c *editUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	user := book.User(c.id)
	if user == nil {
		fmt.Fprintf(os.Stderr, "Error: no participant with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	name := user.Name
	if c.name != "" {
		name = c.name
	}
	ratio := user.DefaultRatio
	if c.ratio != "" {
		ratio, err = decimal.NewFromString(c.ratio)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing ratio %q: %v\n", c.ratio, err)
			return subcommands.ExitUsageError
		}
	}

	if err := book.UpdateUser(c.id, name, ratio); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating participant: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Updated participant %q\n", name)
	return subcommands.ExitSuccess
}
