package report

import (
	"bytes"
	"fmt"

	"github.com/hourbook/hourbook"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders one client's ledger as a markdown document: the
// same columns the printable table uses, plus a currency-formatted
// totals line when a display currency is given.
func LedgerMarkdown(client hourbook.Client, entries []hourbook.Entry, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(client.String())

	table := md.TableSet{
		Header: []string{"Sr", "Date", "Detail", "Amount/hour", "Amount deposited", "Pending"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.Serial()),
			e.Date().String(),
			e.Detail(),
			e.AmountPerHour().String(),
			e.Deposit().String(),
			e.Pending().Display(),
		})
	}

	totals := hourbook.ComputeTotals(entries)
	table.Rows = append(table.Rows, []string{
		"",
		"",
		md.Bold("Total"),
		md.Bold(totals.AmountPerHour.String()),
		md.Bold(totals.Deposit.String()),
		md.Bold(totals.Pending.Display()),
	})
	doc.Table(table)

	if currency != "" {
		doc.PlainText(fmt.Sprintf("Billed %s, received %s, balance %s.",
			hourbook.M(totals.AmountPerHour, currency),
			hourbook.M(totals.Deposit, currency),
			hourbook.MB(totals.Pending, currency)))
	}

	return doc.String()
}

// ClientsMarkdown renders the list of registered clients as a markdown
// table.
func ClientsMarkdown(clients []hourbook.Client) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Registered Clients")

	table := md.TableSet{
		Header: []string{"Sr", "Name", "Mobile"},
	}
	for i, c := range clients {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Name(),
			c.Mobile(),
		})
	}
	doc.Table(table)

	return doc.String()
}
