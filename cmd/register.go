package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	name   string
	mobile string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new client" }
func (*registerCmd) Usage() string {
	return `register -name <name> -mobile <mobile>

  Registers a new client in the book:
  - name: the client's display name.
  - mobile: the client's mobile number, unique per owner.

Usage Examples:
$ hb register -name "Asif" -mobile 0300-1234567
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client display name (required)")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number, unique per owner (required)")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := book.RegisterClient(*owner, c.name, c.mobile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Registered %s with id %d.\n", client, client.ID())
	return subcommands.ExitSuccess
}
