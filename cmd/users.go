package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UttU28/TradeTrackr/renderer"
	"github.com/google/subcommands"
)

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the participants and their default ratios" }
func (*usersCmd) Usage() string {
	return `users

  Lists every participant with their id and default profit-sharing ratio.
`
}

func (*usersCmd) SetFlags(f *flag.FlagSet) {}

func (c *usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.UsersMarkdown(book.Users()))
	return subcommands.ExitSuccess
}
