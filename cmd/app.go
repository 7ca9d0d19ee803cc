// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"flag"
	"fmt"
	"os"

	tradetrackr "github.com/UttU28/TradeTrackr"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&addUserCmd{},
	&editUserCmd{},
	&removeUserCmd{},
	&usersCmd{},

	&addWeekCmd{},
	&editWeekCmd{},
	&removeWeekCmd{},
	&weeksCmd{},
	&currentWeekCmd{},

	&setRatioCmd{},

	&addTradeCmd{},
	&editTradeCmd{},
	&removeTradeCmd{},
	&tradesCmd{},

	&summaryCmd{},
	&dashboardCmd{},
	&historyCmd{},
	&reportCmd{},

	&exportCmd{},
	&importCmd{},
	&seedCmd{},
	&resetCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (TOML)")
var bookFile = flag.String("book-file", "", "Path to the journal file, overrides the configuration")
var displayCurrency = flag.String("currency", "", "Display currency (ISO code), overrides the configuration")

// appConfig resolves the effective configuration: file values overridden by flags.
func appConfig() Config {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}
	if *bookFile != "" {
		cfg.Book = *bookFile
	}
	if *displayCurrency != "" {
		cfg.Currency = *displayCurrency
	}
	return cfg
}

// DecodeBook loads the journal from the configured path. A missing file
// yields an empty journal.
func DecodeBook() (*tradetrackr.Book, error) {
	return tradetrackr.LoadBook(appConfig().Book)
}

// EncodeBook saves the journal back to the configured path.
func EncodeBook(b *tradetrackr.Book) error {
	return tradetrackr.SaveBook(appConfig().Book, b)
}

// currency returns the display currency for reports.
func currency() string { return appConfig().Currency }

// printMarkdown renders a markdown document for the terminal, falling back
// to the raw text when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
