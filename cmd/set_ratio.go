package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type setRatioCmd struct {
	week  string
	user  string
	ratio string
}

func (*setRatioCmd) Name() string     { return "set-ratio" }
func (*setRatioCmd) Synopsis() string { return "override a participant's ratio for one week" }
func (*setRatioCmd) Usage() string {
	return `set-ratio -week <id> -user <id> -ratio <ratio>

  Sets a per-week profit-sharing ratio override. The override applies to
  that week only; other weeks keep using the participant's default ratio.
  Setting it again for the same week and participant replaces the previous
  override. A ratio of 0 is a real override, it excludes the participant
  from that week's allocation.
`
}

func (c *setRatioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.week, "week", "", "Week id (required)")
	f.StringVar(&c.user, "user", "", "Participant id (required)")
	f.StringVar(&c.ratio, "ratio", "", "Ratio for that week (required)")
}

func (c *setRatioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.week == "" || c.user == "" || c.ratio == "" {
		fmt.Fprintln(os.Stderr, "Error: -week, -user and -ratio flags are required.")
		return subcommands.ExitUsageError
	}
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

	if err := book.SetWeeklyRatio(c.week, c.user, ratio); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting ratio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Set ratio %s for participant %s on week %s\n", ratio, c.user, c.week)
	return subcommands.ExitSuccess
}
