package report

import (
	"fmt"

	"github.com/hourbook/hourbook"
)

// A4 portrait in millimeters, with the original export's margins: 10mm
// each side, 35mm of header (title + breathing room) above the table.
var defaultGeometry = Geometry{
	Left:         10,
	Top:          35,
	UsableHeight: 247, // 297 - 35 top - 15 bottom
	MinRowHeight: 8,
}

// DefaultGeometry returns the page geometry used by the PDF export.
func DefaultGeometry() Geometry { return defaultGeometry }

var ledgerColumns = []Column{
	{Title: "Sr", Width: 15},
	{Title: "Date", Width: 30},
	{Title: "Detail", Width: 80},
	{Title: "Amount/hour", Width: 30},
	{Title: "Amount deposited", Width: 35},
	{Title: "Pending", Width: 30},
}

var clientColumns = []Column{
	{Title: "Sr", Width: 15},
	{Title: "Name", Width: 80},
	{Title: "Mobile", Width: 60},
}

// LedgerTable builds the printable table for one client's ledger: a
// header row, one row per entry, a grand-totals row, and a running
// subtotal footer for page breaks. Pending columns use the sign-flip
// display convention (see hourbook.Balance.Display).
func LedgerTable(client hourbook.Client, entries []hourbook.Entry, geo Geometry, opts Options) *Table {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Serial()),
			e.Date().String(),
			e.Detail(),
			e.AmountPerHour().String(),
			e.Deposit().String(),
			e.Pending().Display(),
		})
	}

	totals := hourbook.ComputeTotals(entries)
	if opts.CarrySubtotals && opts.Subtotal == nil {
		opts.Subtotal = func(n int) []string {
			if n > len(entries) {
				n = len(entries)
			}
			return totalsRow("Carried over", hourbook.ComputeTotals(entries[:n]))
		}
	}

	return &Table{
		Title:    fmt.Sprintf("Client: %s", client),
		Columns:  ledgerColumns,
		Rows:     rows,
		Totals:   totalsRow("Total", totals),
		Geometry: geo,
		Options:  opts,
	}
}

func totalsRow(label string, t hourbook.Totals) []string {
	return []string{
		"",
		"",
		label,
		t.AmountPerHour.String(),
		t.Deposit.String(),
		t.Pending.Display(),
	}
}

// ClientsTable builds the printable list of registered clients.
func ClientsTable(clients []hourbook.Client, geo Geometry, opts Options) *Table {
	rows := make([][]string, 0, len(clients))
	for i, c := range clients {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Name(),
			c.Mobile(),
		})
	}
	return &Table{
		Title:    "Registered Clients",
		Columns:  clientColumns,
		Rows:     rows,
		Geometry: geo,
		Options:  opts,
	}
}
