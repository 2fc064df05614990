package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteEntryCmd struct {
	client int64
	mobile string
	entry  int64
}

func (*deleteEntryCmd) Name() string     { return "delete-entry" }
func (*deleteEntryCmd) Synopsis() string { return "delete a ledger entry" }
func (*deleteEntryCmd) Usage() string {
	return `delete-entry (-client <id> | -mobile <mobile>) -entry <id>

  Deletes an entry from the client's ledger. The remaining entries are
  renumbered so serials stay a contiguous 1..N.

Usage Examples:
$ hb delete-entry -mobile 0300-1234567 -entry 12
`
}

func (c *deleteEntryCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
	f.Int64Var(&c.entry, "entry", 0, "Entry id to delete (required)")
}

func (c *deleteEntryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.entry == 0 {
		fmt.Fprintln(os.Stderr, "Error: an -entry id is required.")
		return subcommands.ExitUsageError
	}

	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := resolveClient(book, c.client, c.mobile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !book.DeleteEntry(*owner, client.ID(), c.entry) {
		fmt.Fprintf(os.Stderr, "Error: entry %d not found for %s.\n", c.entry, client)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted entry %d of %s.\n", c.entry, client)
	return subcommands.ExitSuccess
}
