package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type currentWeekCmd struct {
	id string
}

func (*currentWeekCmd) Name() string     { return "current-week" }
func (*currentWeekCmd) Synopsis() string { return "show or change the current week" }
func (*currentWeekCmd) Usage() string {
	return `current-week [-id <id>]

  Without -id, prints the current week. With -id, makes that week current;
  new trades without an explicit week land there.
`
}

func (c *currentWeekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Week id to make current")
}

func (c *currentWeekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.id == "" {
		week := book.CurrentWeek()
		if week == nil {
			fmt.Println("No current week.")
			return subcommands.ExitSuccess
		}
		fmt.Printf("Current week: %s to %s (%s)\n", week.StartDate, week.EndDate, week.ID)
		return subcommands.ExitSuccess
	}

	if err := book.SetCurrentWeek(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting week: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Current week is now %s\n", c.id)
	return subcommands.ExitSuccess
}
