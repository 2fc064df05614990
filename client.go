package hourbook

import (
	"fmt"

	"github.com/hourbook/hourbook/date"
)

// Client is one registered client of an owner. A client is identified by
// a book-assigned id and must have a mobile number unique among the
// owner's clients.
type Client struct {
	id     int64
	owner  string
	name   string
	mobile string
}

func (c Client) ID() int64      { return c.id }
func (c Client) Owner() string  { return c.owner }
func (c Client) Name() string   { return c.name }
func (c Client) Mobile() string { return c.mobile }

func (c Client) String() string { return fmt.Sprintf("%s (%s)", c.name, c.mobile) }

// Entry is one billing/deposit record in a client's ledger.
//
// The serial is the 1-based display position within the ledger; the book
// keeps serials contiguous and renumbers them after a deletion. The id is
// the creation-order identity and never changes.
type Entry struct {
	id            int64
	serial        int
	date          date.Date
	detail        string
	amountPerHour Amount
	deposit       Amount
}

func (e Entry) ID() int64             { return e.id }
func (e Entry) Serial() int           { return e.serial }
func (e Entry) Date() date.Date       { return e.date }
func (e Entry) Detail() string        { return e.detail }
func (e Entry) AmountPerHour() Amount { return e.amountPerHour }
func (e Entry) Deposit() Amount       { return e.deposit }

// Pending is the derived balance of the entry, deposit - amountPerHour.
// It is recomputed on every call and never stored, so it cannot go stale.
func (e Entry) Pending() Balance { return e.deposit.Sub(e.amountPerHour) }

// EntryInput carries the raw form fields for adding or editing an entry.
// All fields are text: parsing and validation belong to the book, not to
// the caller. There is exactly one input shape; the book never infers
// intent from how the values look.
type EntryInput struct {
	Date          string // free-form, normalized to ISO with today fallback
	Detail        string
	AmountPerHour string // non-negative decimal, empty means zero
	Deposit       string // non-negative decimal, empty means zero
}

// parsed is an EntryInput after validation.
type parsed struct {
	date          date.Date
	detail        string
	amountPerHour Amount
	deposit       Amount
}

func (in EntryInput) parse() (parsed, error) {
	aph, err := ParseAmount("amount per hour", in.AmountPerHour)
	if err != nil {
		return parsed{}, err
	}
	dep, err := ParseAmount("deposit", in.Deposit)
	if err != nil {
		return parsed{}, err
	}
	return parsed{
		date:          date.Normalize(in.Date),
		detail:        in.Detail,
		amountPerHour: aph,
		deposit:       dep,
	}, nil
}
