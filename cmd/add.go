package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hourbook/hourbook"
)

type addCmd struct {
	client  int64
	mobile  string
	date    string
	detail  string
	amount  string
	deposit string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an entry to a client's ledger" }
func (*addCmd) Usage() string {
	return `add (-client <id> | -mobile <mobile>) [-date <date>] [-detail <text>] [-amount <decimal>] [-deposit <decimal>]

  Appends an entry to the client's ledger:
  - date: any text; ISO "yyyy-mm-dd" is kept, anything else means today.
  - detail: free text describing the work or the payment.
  - amount: the billed amount per hour, non-negative, empty means zero.
  - deposit: the amount the client paid, non-negative, empty means zero.

  The pending balance is derived as deposit minus amount; it is never
  entered by hand.

Usage Examples:
$ hb add -mobile 0300-1234567 -date 2025-06-01 -detail "site survey" -amount 100
$ hb add -client 3 -detail "payment received" -deposit 250
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
	f.StringVar(&c.date, "date", "", "Entry date, defaults to today")
	f.StringVar(&c.detail, "detail", "", "Entry detail text")
	f.StringVar(&c.amount, "amount", "", "Billed amount per hour")
	f.StringVar(&c.deposit, "deposit", "", "Deposited amount")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	entry, err := book.AddEntry(*owner, client.ID(), hourbook.EntryInput{
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

	fmt.Printf("✅ Added entry %d (sr %d) to %s, pending %s.\n",
		entry.ID(), entry.Serial(), client, entry.Pending().Display())
	return subcommands.ExitSuccess
}
