package hourbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The book is persisted as JSONL, one record per line, human-readable and
// git-friendly. Two record kinds share the file, discriminated by the
// "record" field: clients first in registration order, then each client's
// entries in serial order. The derived pending balance is never written;
// it is recomputed from the stored columns on every read.

type jrecord struct {
	Record string `json:"record"`
}

type jclient struct {
	Record string `json:"record"`
	ID     int64  `json:"id"`
	Owner  string `json:"owner,omitempty"`
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

type jentry struct {
	Record        string `json:"record"`
	Client        int64  `json:"client"`
	Date          string `json:"date"`
	Detail        string `json:"detail,omitempty"`
	AmountPerHour Amount `json:"amountPerHour"`
	Deposit       Amount `json:"deposit"`
}

// EncodeBook writes the book to w in its canonical JSONL form.
func EncodeBook(w io.Writer, b *Book) error {
	enc := json.NewEncoder(w)

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, c := range b.clients {
		jc := jclient{Record: "client", ID: c.id, Owner: c.owner, Name: c.name, Mobile: c.mobile}
		if err := enc.Encode(jc); err != nil {
			return fmt.Errorf("could not encode client %q: %w", c.name, err)
		}
	}
	for _, c := range b.clients {
		for _, e := range b.entries[c.id] {
			je := jentry{
				Record:        "entry",
				Client:        c.id,
				Date:          e.date.String(),
				Detail:        e.detail,
				AmountPerHour: e.amountPerHour,
				Deposit:       e.deposit,
			}
			if err := enc.Encode(je); err != nil {
				return fmt.Errorf("could not encode entry %d of client %q: %w", e.serial, c.name, err)
			}
		}
	}
	return nil
}

// DecodeBook reads a book from a stream of JSONL records. Entries are
// renumbered from read order, so serials are contiguous no matter what
// the file has been through. Entry and client ids are reassigned to keep
// the id counters dense.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	ids := make(map[int64]int64) // file client id -> book client id

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var rec jrecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch rec.Record {
		case "client":
			var jc jclient
			if err := json.Unmarshal(line, &jc); err != nil {
				return nil, fmt.Errorf("bad client record %q: %w", string(line), err)
			}
			c, err := book.RegisterClient(jc.Owner, jc.Name, jc.Mobile)
			if err != nil {
				return nil, fmt.Errorf("bad client record %q: %w", string(line), err)
			}
			ids[jc.ID] = c.ID()
		case "entry":
			var je jentry
			if err := json.Unmarshal(line, &je); err != nil {
				return nil, fmt.Errorf("bad entry record %q: %w", string(line), err)
			}
			clientID, ok := ids[je.Client]
			if !ok {
				return nil, fmt.Errorf("entry record %q references unknown client %d", string(line), je.Client)
			}
			owner := ""
			for _, c := range book.clients {
				if c.id == clientID {
					owner = c.owner
				}
			}
			in := EntryInput{
				Date:          je.Date,
				Detail:        je.Detail,
				AmountPerHour: je.AmountPerHour.value.String(),
				Deposit:       je.Deposit.value.String(),
			}
			if _, err := book.AddEntry(owner, clientID, in); err != nil {
				return nil, fmt.Errorf("bad entry record %q: %w", string(line), err)
			}
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %q", rec.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read book: %w", err)
	}
	return book, nil
}
