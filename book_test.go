package hourbook

import (
	"errors"
	"testing"

	"github.com/hourbook/hourbook/date"
)

const owner = "tester"

// setupBook creates a book with one registered client.
func setupBook(t *testing.T) (*Book, Client) {
	t.Helper()
	b := NewBook()
	c, err := b.RegisterClient(owner, "Asif", "0300-1234567")
	if err != nil {
		t.Fatalf("RegisterClient() failed: %v", err)
	}
	return b, c
}

func TestRegisterClient(t *testing.T) {
	b, _ := setupBook(t)

	if _, err := b.RegisterClient(owner, "", "0311-0000000"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: got %v, want ErrValidation", err)
	}
	if _, err := b.RegisterClient(owner, "Bilal", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty mobile: got %v, want ErrValidation", err)
	}
	if _, err := b.RegisterClient(owner, "Someone Else", "0300-1234567"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate mobile: got %v, want ErrDuplicate", err)
	}
	// The same mobile under another owner is a different key.
	if _, err := b.RegisterClient("other", "Asif", "0300-1234567"); err != nil {
		t.Errorf("same mobile, other owner: got %v, want success", err)
	}
}

func TestUpdateClientPartialAndAtomic(t *testing.T) {
	b, c := setupBook(t)
	other, err := b.RegisterClient(owner, "Bilal", "0311-7654321")
	if err != nil {
		t.Fatalf("RegisterClient() failed: %v", err)
	}

	// Empty arguments leave fields unchanged.
	got, err := b.UpdateClient(owner, c.ID(), "Asif Khan", "")
	if err != nil {
		t.Fatalf("UpdateClient() failed: %v", err)
	}
	if got.Name() != "Asif Khan" || got.Mobile() != "0300-1234567" {
		t.Errorf("partial update = %v %v, want name changed, mobile kept", got.Name(), got.Mobile())
	}

	// Renaming to a mobile already used by another client of the same
	// owner fails and must not apply the name change either.
	_, err = b.UpdateClient(owner, c.ID(), "New Name", other.Mobile())
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate mobile on update: got %v, want ErrDuplicate", err)
	}
	after, _ := b.Client(owner, c.ID())
	if after.Name() != "Asif Khan" || after.Mobile() != "0300-1234567" {
		t.Errorf("failed update mutated client: %v %v", after.Name(), after.Mobile())
	}

	if _, err := b.UpdateClient(owner, 999, "X", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown client: got %v, want ErrNotFound", err)
	}
}

func TestDeleteClientCascades(t *testing.T) {
	b, c := setupBook(t)
	if _, err := b.AddEntry(owner, c.ID(), EntryInput{Detail: "site visit", AmountPerHour: "100"}); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}

	if !b.DeleteClient(owner, c.ID()) {
		t.Fatal("DeleteClient() = false, want true")
	}
	if b.DeleteClient(owner, c.ID()) {
		t.Error("second DeleteClient() = true, want false")
	}
	if got := b.Entries(owner, c.ID()); got != nil {
		t.Errorf("entries survived client deletion: %v", got)
	}
}

func TestAddEntryValidation(t *testing.T) {
	b, c := setupBook(t)

	if _, err := b.AddEntry(owner, c.ID(), EntryInput{AmountPerHour: "lots"}); !errors.Is(err, ErrValidation) {
		t.Errorf("garbage amount: got %v, want ErrValidation", err)
	}
	if _, err := b.AddEntry(owner, c.ID(), EntryInput{Deposit: "-5"}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative deposit: got %v, want ErrValidation", err)
	}
	if _, err := b.AddEntry(owner, 999, EntryInput{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown client: got %v, want ErrNotFound", err)
	}

	e, err := b.AddEntry(owner, c.ID(), EntryInput{
		Date:          "2025-02-03",
		Detail:        "wiring",
		AmountPerHour: "100",
		Deposit:       "50",
	})
	if err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	if e.Serial() != 1 {
		t.Errorf("first serial = %d, want 1", e.Serial())
	}
	if e.Date().String() != "2025-02-03" {
		t.Errorf("date = %s, want 2025-02-03", e.Date())
	}
	if e.Pending().Display() != "+50.00" {
		t.Errorf("pending display = %q, want %q", e.Pending().Display(), "+50.00")
	}

	// A day-first date is not trusted; today is substituted.
	e2, err := b.AddEntry(owner, c.ID(), EntryInput{Date: "03-02-2025"})
	if err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}
	if e2.Date() != date.Today() {
		t.Errorf("day-first date = %s, want today", e2.Date())
	}
	if e2.Serial() != 2 {
		t.Errorf("second serial = %d, want 2", e2.Serial())
	}
}

func TestSerialContiguityAfterDelete(t *testing.T) {
	b, c := setupBook(t)
	var ids []int64
	for _, detail := range []string{"first", "second", "third"} {
		e, err := b.AddEntry(owner, c.ID(), EntryInput{Detail: detail, AmountPerHour: "10"})
		if err != nil {
			t.Fatalf("AddEntry(%s) failed: %v", detail, err)
		}
		ids = append(ids, e.ID())
	}

	if !b.DeleteEntry(owner, c.ID(), ids[1]) {
		t.Fatal("DeleteEntry() = false, want true")
	}

	entries := b.Entries(owner, c.ID())
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	for i, e := range entries {
		if e.Serial() != i+1 {
			t.Errorf("serial[%d] = %d, want %d", i, e.Serial(), i+1)
		}
	}
	if entries[0].Detail() != "first" || entries[1].Detail() != "third" {
		t.Errorf("relative order lost: %s, %s", entries[0].Detail(), entries[1].Detail())
	}

	// Add immediately followed by deleting the just-added entry keeps
	// the survivors contiguous.
	e, _ := b.AddEntry(owner, c.ID(), EntryInput{Detail: "fourth"})
	if e.Serial() != 3 {
		t.Errorf("serial after renumbering = %d, want 3", e.Serial())
	}
	b.DeleteEntry(owner, c.ID(), e.ID())
	for i, e := range b.Entries(owner, c.ID()) {
		if e.Serial() != i+1 {
			t.Errorf("serial[%d] = %d, want %d", i, e.Serial(), i+1)
		}
	}
}

func TestUpdateEntry(t *testing.T) {
	b, c := setupBook(t)
	stranger, _ := b.RegisterClient(owner, "Bilal", "0311-7654321")
	e, err := b.AddEntry(owner, c.ID(), EntryInput{Detail: "old", AmountPerHour: "80", Deposit: "80"})
	if err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}

	if err := b.UpdateEntry(owner, c.ID(), e.ID(), EntryInput{Detail: "new", AmountPerHour: "90", Deposit: "80"}); err != nil {
		t.Fatalf("UpdateEntry() failed: %v", err)
	}
	got := b.Entries(owner, c.ID())[0]
	if got.Detail() != "new" || !got.AmountPerHour().Equal(A(90)) {
		t.Errorf("update not applied: %v %v", got.Detail(), got.AmountPerHour())
	}
	if got.Serial() != e.Serial() {
		t.Errorf("serial changed on update: %d -> %d", e.Serial(), got.Serial())
	}

	// Parent mismatch is a not-found, never a reparent.
	if err := b.UpdateEntry(owner, stranger.ID(), e.ID(), EntryInput{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("parent mismatch: got %v, want ErrNotFound", err)
	}
	if err := b.UpdateEntry(owner, c.ID(), 999, EntryInput{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown entry: got %v, want ErrNotFound", err)
	}
	if err := b.UpdateEntry(owner, c.ID(), e.ID(), EntryInput{AmountPerHour: "oops"}); !errors.Is(err, ErrValidation) {
		t.Errorf("garbage amount: got %v, want ErrValidation", err)
	}
}

func TestPendingRecompute(t *testing.T) {
	b, c := setupBook(t)
	e, _ := b.AddEntry(owner, c.ID(), EntryInput{AmountPerHour: "100", Deposit: "60"})

	// Idempotent derivation.
	if !e.Pending().Equal(e.Pending()) {
		t.Error("Pending() is not stable")
	}
	// Editing unrelated fields leaves pending alone.
	if err := b.UpdateEntry(owner, c.ID(), e.ID(), EntryInput{Detail: "renamed", AmountPerHour: "100", Deposit: "60"}); err != nil {
		t.Fatalf("UpdateEntry() failed: %v", err)
	}
	if got := b.Entries(owner, c.ID())[0].Pending(); !got.Equal(A(60).Sub(A(100))) {
		t.Errorf("pending drifted: %v", got)
	}
	// Editing the amounts moves it.
	if err := b.UpdateEntry(owner, c.ID(), e.ID(), EntryInput{Detail: "renamed", AmountPerHour: "100", Deposit: "100"}); err != nil {
		t.Fatalf("UpdateEntry() failed: %v", err)
	}
	if got := b.Entries(owner, c.ID())[0].Pending(); !got.IsZero() {
		t.Errorf("pending = %v, want zero", got)
	}
}

func TestComputeTotals(t *testing.T) {
	b, c := setupBook(t)

	if got := ComputeTotals(nil); !got.AmountPerHour.IsZero() || !got.Deposit.IsZero() || !got.Pending.IsZero() {
		t.Errorf("ComputeTotals(nil) = %+v, want zeros", got)
	}

	for _, pair := range [][2]string{{"100", "100"}, {"80", "80"}} {
		if _, err := b.AddEntry(owner, c.ID(), EntryInput{AmountPerHour: pair[0], Deposit: pair[1]}); err != nil {
			t.Fatalf("AddEntry() failed: %v", err)
		}
	}

	entries := b.Entries(owner, c.ID())
	got := ComputeTotals(entries)
	if !got.AmountPerHour.Equal(A(180)) || !got.Deposit.Equal(A(180)) || !got.Pending.IsZero() {
		t.Errorf("ComputeTotals() = %+v, want {180 180 0}", got)
	}
	if got.Pending.Display() != "-0.00" {
		t.Errorf("zero pending displays as %q, want %q", got.Pending.Display(), "-0.00")
	}

	// Totals pending equals the sum of individually recomputed pendings.
	var sum Balance
	for _, e := range entries {
		sum = sum.Add(e.Pending())
	}
	if !sum.Equal(got.Pending) {
		t.Errorf("totals pending %v != elementwise sum %v", got.Pending, sum)
	}
	if !got.Deposit.Sub(got.AmountPerHour).Equal(got.Pending) {
		t.Error("pending != deposit - amountPerHour")
	}
}

func TestClientsAndSearch(t *testing.T) {
	b, _ := setupBook(t)
	b.RegisterClient(owner, "Zulfiqar", "0345-1111111")
	b.RegisterClient(owner, "Bilal", "0311-7654321")
	b.RegisterClient("other", "Hidden", "0399-0000000")

	clients := b.Clients(owner)
	if len(clients) != 3 {
		t.Fatalf("len(Clients()) = %d, want 3", len(clients))
	}
	// Name-sorted listing.
	if clients[0].Name() != "Asif" || clients[1].Name() != "Bilal" || clients[2].Name() != "Zulfiqar" {
		t.Errorf("listing not sorted by name: %v", clients)
	}

	if got := b.SearchClients(owner, "bil"); len(got) != 1 || got[0].Name() != "Bilal" {
		t.Errorf("SearchClients(bil) = %v", got)
	}
	if got := b.SearchClients(owner, "0345"); len(got) != 1 || got[0].Name() != "Zulfiqar" {
		t.Errorf("SearchClients(0345) = %v", got)
	}
	if got := b.SearchClients(owner, ""); got != nil {
		t.Errorf("SearchClients(empty) = %v, want nil", got)
	}
}
