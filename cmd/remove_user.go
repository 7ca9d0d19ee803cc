package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeUserCmd struct {
	id string
}

func (*removeUserCmd) Name() string     { return "remove-user" }
func (*removeUserCmd) Synopsis() string { return "remove a participant and their weekly overrides" }
func (*removeUserCmd) Usage() string {
	return `remove-user -id <id>

  Removes a participant. Any per-week ratio overrides for that participant
  are removed as well; recorded trades are untouched.
`
}

func (c *removeUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Participant id (required)")
}

func (c *removeUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := book.RemoveUser(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing participant: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Removed participant %s\n", c.id)
	return subcommands.ExitSuccess
}
