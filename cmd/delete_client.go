package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteClientCmd struct {
	client int64
	mobile string
}

func (*deleteClientCmd) Name() string     { return "delete-client" }
func (*deleteClientCmd) Synopsis() string { return "delete a client and their whole ledger" }
func (*deleteClientCmd) Usage() string {
	return `delete-client (-client <id> | -mobile <mobile>)

  Deletes a client and every entry of their ledger. There is no undo
  beyond the book file's own history.

Usage Examples:
$ hb delete-client -mobile 0300-1234567
`
}

func (c *deleteClientCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
}

func (c *deleteClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !book.DeleteClient(*owner, client.ID()) {
		fmt.Fprintf(os.Stderr, "Error: client %d not found.\n", client.ID())
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s and their ledger.\n", client)
	return subcommands.ExitSuccess
}
