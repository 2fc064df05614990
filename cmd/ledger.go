package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hourbook/hourbook/report"
)

type ledgerCmd struct {
	client int64
	mobile string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display a client's ledger" }
func (*ledgerCmd) Usage() string {
	return `ledger (-client <id> | -mobile <mobile>)

  Prints the client's ledger to the terminal with per-entry pending
  balances and the grand totals. Pending uses the statement convention:
  "-x.xx" means the client still owes x, "+x.xx" means they overpaid.

Usage Examples:
$ hb ledger -mobile 0300-1234567
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
}

func (c *ledgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	entries := book.Entries(*owner, client.ID())
	fmt.Print(render(report.LedgerMarkdown(client, entries, *displayCurrency)))
	return subcommands.ExitSuccess
}
