package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hourbook/hourbook"
)

type importLegacyCmd struct {
	file string
}

func (*importLegacyCmd) Name() string     { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string { return "import a legacy flat-file JSON ledger" }
func (*importLegacyCmd) Usage() string {
	return `import-legacy -file <ledger.json>

  Imports clients and entries from the previous application's flat-file
  JSON format (one object keyed by mobile number). Stored pending values
  are ignored; balances are derived again from the amounts, and serials
  are renumbered from file order.

Usage Examples:
$ hb import-legacy -file old_ledger.json
`
}

func (c *importLegacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Legacy JSON ledger file to import (required)")
}

func (c *importLegacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: a -file is required.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	clients, entries, err := hourbook.ImportLegacy(book, *owner, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Imported %d clients and %d entries from %q.\n", clients, entries, c.file)
	return subcommands.ExitSuccess
}
