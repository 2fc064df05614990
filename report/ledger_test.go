package report

import (
	"strings"
	"testing"

	"github.com/hourbook/hourbook"
)

// setupLedger builds a book with one client and a few entries.
func setupLedger(t *testing.T, pairs [][2]string) (hourbook.Client, []hourbook.Entry) {
	t.Helper()
	b := hourbook.NewBook()
	c, err := b.RegisterClient("tester", "Asif", "0300-1234567")
	if err != nil {
		t.Fatalf("RegisterClient() failed: %v", err)
	}
	for _, p := range pairs {
		if _, err := b.AddEntry("tester", c.ID(), hourbook.EntryInput{
			Date:          "2025-01-10",
			Detail:        "site work",
			AmountPerHour: p[0],
			Deposit:       p[1],
		}); err != nil {
			t.Fatalf("AddEntry() failed: %v", err)
		}
	}
	return c, b.Entries("tester", c.ID())
}

func TestLedgerTableSignDisplay(t *testing.T) {
	c, entries := setupLedger(t, [][2]string{{"100", "50"}})

	table := LedgerTable(c, entries, DefaultGeometry(), Options{})
	pages, err := table.Layout(grid)
	if err != nil {
		t.Fatalf("Layout() failed: %v", err)
	}

	var texts []string
	for _, cell := range pages[0].Cells {
		texts = append(texts, cell.Text)
	}
	joined := strings.Join(texts, "|")
	// amount=100, deposit=50: pending is -50, displayed inverted as +50.00.
	if !strings.Contains(joined, "+50.00") {
		t.Errorf("pending cell not sign-flipped: %q", joined)
	}
	if strings.Contains(joined, "-50.00") {
		t.Errorf("raw pending sign leaked into the table: %q", joined)
	}
}

func TestLedgerTableTotalsRow(t *testing.T) {
	c, entries := setupLedger(t, [][2]string{{"100", "100"}, {"80", "80"}})

	table := LedgerTable(c, entries, DefaultGeometry(), Options{})
	pages, err := table.Layout(grid)
	if err != nil {
		t.Fatalf("Layout() failed: %v", err)
	}

	last := pages[len(pages)-1]
	n := len(ledgerColumns)
	totals := last.Cells[len(last.Cells)-n:]
	for _, cell := range totals {
		if cell.Style != Totals {
			t.Errorf("totals cell %q has style %v", cell.Text, cell.Style)
		}
		if !cell.Style.IsEmphasized() {
			t.Errorf("totals cell %q is not emphasized", cell.Text)
		}
	}
	want := []string{"", "", "Total", "180.00", "180.00", "-0.00"}
	for i, cell := range totals {
		if cell.Text != want[i] {
			t.Errorf("totals[%d] = %q, want %q", i, cell.Text, want[i])
		}
	}
}

func TestLedgerTableTitle(t *testing.T) {
	c, entries := setupLedger(t, nil)
	table := LedgerTable(c, entries, DefaultGeometry(), Options{})
	if table.Title != "Client: Asif (0300-1234567)" {
		t.Errorf("Title = %q", table.Title)
	}
}

func TestLedgerTableRunningSubtotals(t *testing.T) {
	c, entries := setupLedger(t, [][2]string{{"100", "50"}, {"100", "50"}, {"100", "50"}})
	table := LedgerTable(c, entries, DefaultGeometry(), Options{CarrySubtotals: true})
	if table.Options.Subtotal == nil {
		t.Fatal("no default subtotal func installed")
	}
	row := table.Options.Subtotal(2)
	want := []string{"", "", "Carried over", "200.00", "100.00", "+100.00"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("subtotal[%d] = %q, want %q", i, row[i], want[i])
		}
	}
	// Counts past the end clamp to the full ledger.
	row = table.Options.Subtotal(99)
	if row[3] != "300.00" {
		t.Errorf("clamped subtotal = %q, want 300.00", row[3])
	}
}

func TestClientsTable(t *testing.T) {
	b := hourbook.NewBook()
	b.RegisterClient("tester", "Asif", "0300-1234567")
	b.RegisterClient("tester", "Bilal", "0311-7654321")

	table := ClientsTable(b.Clients("tester"), DefaultGeometry(), Options{})
	pages, err := table.Layout(grid)
	if err != nil {
		t.Fatalf("Layout() failed: %v", err)
	}
	var texts []string
	for _, cell := range pages[0].Cells {
		texts = append(texts, cell.Text)
	}
	joined := strings.Join(texts, "|")
	for _, want := range []string{"Asif", "0300-1234567", "Bilal", "0311-7654321"} {
		if !strings.Contains(joined, want) {
			t.Errorf("clients table misses %q: %q", want, joined)
		}
	}
}
