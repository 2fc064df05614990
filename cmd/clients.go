package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hourbook/hourbook/report"
)

type clientsCmd struct {
	search string
}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list or search registered clients" }
func (*clientsCmd) Usage() string {
	return `clients [-search <query>]

  Lists the owner's registered clients sorted by name. With -search,
  lists only clients whose name or mobile contains the query.

Usage Examples:
$ hb clients
$ hb clients -search 0300
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Only list clients matching this name or mobile fragment")
}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	clients := book.Clients(*owner)
	if c.search != "" {
		clients = book.SearchClients(*owner, c.search)
	}

	fmt.Print(render(report.ClientsMarkdown(clients)))
	return subcommands.ExitSuccess
}
