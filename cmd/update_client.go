package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateClientCmd struct {
	client    int64
	mobile    string
	newName   string
	newMobile string
}

func (*updateClientCmd) Name() string     { return "update-client" }
func (*updateClientCmd) Synopsis() string { return "rename a client or change their mobile" }
func (*updateClientCmd) Usage() string {
	return `update-client (-client <id> | -mobile <mobile>) [-name <new name>] [-new-mobile <new mobile>]

  Updates a client's name and/or mobile number. Omitted fields keep
  their current value. A mobile change is checked for uniqueness first;
  on a conflict nothing changes.

Usage Examples:
$ hb update-client -mobile 0300-1234567 -name "Asif Khan"
`
}

func (c *updateClientCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
	f.StringVar(&c.newName, "name", "", "New display name (optional)")
	f.StringVar(&c.newMobile, "new-mobile", "", "New mobile number (optional)")
}

func (c *updateClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.newName == "" && c.newMobile == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, give -name and/or -new-mobile.")
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

	updated, err := book.UpdateClient(*owner, client.ID(), c.newName, c.newMobile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated client %d, now %s.\n", updated.ID(), updated)
	return subcommands.ExitSuccess
}
