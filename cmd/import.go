package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tradetrackr "github.com/UttU28/TradeTrackr"
	"github.com/google/subcommands"
)

type importCmd struct {
	inputFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the journal with a JSON backup" }
func (*importCmd) Usage() string {
	return `import -i <file>

  Replaces the whole journal with the contents of a JSON backup. The
  backup must contain the users, weeks and weeklyRatios collections; a
  backup missing any of them is rejected and the journal is left
  untouched. The first week of the backup becomes the current week.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "i", "", "Backup file to import (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i flag is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", c.inputFile, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading journal: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := tradetrackr.ImportBook(in, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing backup: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving journal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Imported %d weeks and %d participants from %s\n",
		len(book.Weeks()), len(book.Users()), c.inputFile)
	return subcommands.ExitSuccess
}
