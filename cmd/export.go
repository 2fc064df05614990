package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/hourbook/hourbook/pdf"
	"github.com/hourbook/hourbook/report"
)

type exportCmd struct {
	client int64
	mobile string
	out    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a ledger (or the client list) to PDF" }
func (*exportCmd) Usage() string {
	return `export [(-client <id> | -mobile <mobile>)] [-o <file.pdf>]

  Without a client, exports the list of registered clients. With one,
  exports that client's full ledger: the table header repeats on every
  page, running subtotals are carried over at each page break, and the
  grand totals close the document.

  The default output name is derived from the client and timestamped,
  e.g. Asif_0300-1234567_20250601_154211.pdf.

Usage Examples:
$ hb export -mobile 0300-1234567
$ hb export -client 3 -o statement.pdf
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.client, "client", 0, "Client id")
	f.StringVar(&c.mobile, "mobile", "", "Client mobile number")
	f.StringVar(&c.out, "o", "", "Output file name, defaults to a timestamped name")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := LoadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	stamp := time.Now().Format("20060102_150405")
	opts := report.Options{RepeatHeader: true, CarrySubtotals: true}

	var table *report.Table
	name := c.out
	if c.client == 0 && c.mobile == "" {
		table = report.ClientsTable(book.Clients(*owner), report.DefaultGeometry(), opts)
		if name == "" {
			name = fmt.Sprintf("clients_%s.pdf", stamp)
		}
	} else {
		client, err := resolveClient(book, c.client, c.mobile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		entries := book.Entries(*owner, client.ID())
		table = report.LedgerTable(client, entries, report.DefaultGeometry(), opts)
		if name == "" {
			name = fmt.Sprintf("%s_%s_%s.pdf",
				safeFilename(client.Name()), safeFilename(client.Mobile()), stamp)
		}
	}

	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := pdf.Render(out, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering PDF: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Exported %s.\n", name)
	return subcommands.ExitSuccess
}
