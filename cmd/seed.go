package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// seedAmounts is a realistic set of trade results used to populate a demo week.
var seedAmounts = []string{
	"120.67", "256.89", "383.16", "-125.21", "-423.95",
	"156.09", "-243.53", "-89.29", "764.94", "476.34",
	"-324.60", "239.16", "-95.61", "-156.57", "543.25",
	"-98.56", "-45.78", "104.89", "-345.69", "486.54",
}

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "populate the journal with a demo week" }
func (*seedCmd) Usage() string {
	return `seed

  Adds a demo week covering the current Monday to Sunday, starting at
  3500.00, with twenty sample trades spread across the week. Useful to
  try the reports on a fresh journal.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	// Current week, Monday through Sunday.
	now := time.Now()
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	sunday := monday.AddDate(0, 0, 6)
	start := date.New(monday.Year(), monday.Month(), monday.Day())
	end := date.New(sunday.Year(), sunday.Month(), sunday.Day())

	weekID, err := book.AddWeek(start, end, decimal.RequireFromString("3500.00"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding demo week: %v\n", err)
		return subcommands.ExitFailure
	}

	startMillis := monday.UnixMilli()
	span := sunday.UnixMilli() - startMillis
	for i, s := range seedAmounts {
		amount := decimal.RequireFromString(s)
		description := "Profitable trade"
		if amount.IsNegative() {
			description = "Loss trade"
		}
		id, err := book.AddTrade(weekID, amount, description)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error adding demo trade: %v\n", err)
			return subcommands.ExitFailure
		}
		// Spread the timestamps across the week.
		_, trade := book.Trade(id)
		trade.Timestamp = startMillis + span*int64(i)/int64(len(seedAmounts)*12/10)
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Seeded week %s to %s with %d trades\n", start, end, len(seedAmounts))
	return subcommands.ExitSuccess
}
