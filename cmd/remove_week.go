package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeWeekCmd struct {
	id string
}

func (*removeWeekCmd) Name() string     { return "remove-week" }
func (*removeWeekCmd) Synopsis() string { return "remove a week with its trades and overrides" }
func (*removeWeekCmd) Usage() string {
	return `remove-week -id <id>

  Removes a week. Its trades and its per-week ratio overrides go with it.
  If the removed week was current, the most recently added remaining week
  becomes current.
`
}

func (c *removeWeekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Week id (required)")
}

func (c *removeWeekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveWeek(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing week: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Removed week %s\n", c.id)
	return subcommands.ExitSuccess
}
