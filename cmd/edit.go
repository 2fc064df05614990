package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hourbook/hourbook"
)

type editCmd struct {
	client  int64
	mobile  string
	entry   int64
	date    string
	detail  string
	amount  string
	deposit string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing ledger entry" }
func (*editCmd) Usage() string {
	return `edit (-client <id> | -mobile <mobile>) -entry <id> [-date <date>] [-detail <text>] [-amount <decimal>] [-deposit <decimal>]

  Rewrites an entry with the given fields. The entry keeps its serial
  position; the pending balance is derived again from the new amounts.
  The entry must belong to the targeted client.

Usage Examples:
$ hb edit -mobile 0300-1234567 -entry 12 -amount 120 -detail "rate change"
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
	f.Int64Var(&c.entry, "entry", 0, "Entry id to edit (required)")
	f.StringVar(&c.date, "date", "", "Entry date, defaults to today")
	f.StringVar(&c.detail, "detail", "", "Entry detail text")
	f.StringVar(&c.amount, "amount", "", "Billed amount per hour")
	f.StringVar(&c.deposit, "deposit", "", "Deposited amount")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	err = book.UpdateEntry(*owner, client.ID(), c.entry, hourbook.EntryInput{
		Date:          c.date,
		Detail:        c.detail,
		AmountPerHour: c.amount,
		Deposit:       c.deposit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated entry %d of %s.\n", c.entry, client)
	return subcommands.ExitSuccess
}
