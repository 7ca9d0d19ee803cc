package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type editWeekCmd struct {
	id         string
	start      string
	end        string
	startValue string
}

func (*editWeekCmd) Name() string     { return "edit-week" }
func (*editWeekCmd) Synopsis() string { return "edit a week's dates or start value" }
func (*editWeekCmd) Usage() string {
	return `edit-week -id <id> [-start <date>] [-end <date>] [-value <amount>]

  Updates a week. Omitted flags keep the current value. Recorded trades
  are untouched.
`
}

func (c *editWeekCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Week id (required)")
	f.StringVar(&c.start, "start", "", "New start date")
	f.StringVar(&c.end, "end", "", "New end date")
	f.StringVar(&c.startValue, "value", "", "New account value at week start")
}

func (c *editWeekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id flag is required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	week := book.Week(c.id)
	if week == nil {
		fmt.Fprintf(os.Stderr, "Error: no week with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	start, end, startValue := week.StartDate, week.EndDate, week.StartValue
	if c.start != "" {
		start, err = date.Parse(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		end, err = date.Parse(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.startValue != "" {
		startValue, err = decimal.NewFromString(c.startValue)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start value %q: %v\n", c.startValue, err)
			return subcommands.ExitUsageError
		}
	}

	if err := book.UpdateWeek(c.id, start, end, startValue); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating week: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Updated week %s to %s\n", start, end)
	return subcommands.ExitSuccess
}
