package hourbook

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Book is the authoritative store for clients and their ledger entries.
//
// Every operation is synchronous and atomic: it either fully applies or
// leaves prior state untouched, with no intermediate state observable by
// other callers. Clients and entries are returned by value so callers
// hold immutable snapshots.
type Book struct {
	mu           sync.Mutex
	clients      []*Client          // registration order
	entries      map[int64][]*Entry // per client id, creation order
	lastClientID int64
	lastEntryID  int64
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{entries: make(map[int64][]*Entry)}
}

// RegisterClient adds a new client for the owner. The name and mobile are
// required, and the (owner, mobile) pair must be unique.
func (b *Book) RegisterClient(owner, name, mobile string) (Client, error) {
	name, mobile = strings.TrimSpace(name), strings.TrimSpace(mobile)
	if name == "" {
		return Client{}, fmt.Errorf("client name is required: %w", ErrValidation)
	}
	if mobile == "" {
		return Client{}, fmt.Errorf("client mobile is required: %w", ErrValidation)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findByMobile(owner, mobile) != nil {
		return Client{}, fmt.Errorf("mobile %q %w for owner %q", mobile, ErrDuplicate, owner)
	}

	b.lastClientID++
	c := &Client{id: b.lastClientID, owner: owner, name: name, mobile: mobile}
	b.clients = append(b.clients, c)
	return *c, nil
}

// UpdateClient renames and/or re-mobiles a client. Empty arguments leave
// the corresponding field unchanged. A mobile change re-checks uniqueness
// before anything is committed; on a duplicate, neither field changes.
func (b *Book) UpdateClient(owner string, id int64, newName, newMobile string) (Client, error) {
	newName, newMobile = strings.TrimSpace(newName), strings.TrimSpace(newMobile)

	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.findClient(owner, id)
	if c == nil {
		return Client{}, fmt.Errorf("client %d %w for owner %q", id, ErrNotFound, owner)
	}
	if newMobile != "" && newMobile != c.mobile {
		if b.findByMobile(owner, newMobile) != nil {
			return Client{}, fmt.Errorf("mobile %q %w for owner %q", newMobile, ErrDuplicate, owner)
		}
	}
	// All checks passed, apply both changes.
	if newMobile != "" {
		c.mobile = newMobile
	}
	if newName != "" {
		c.name = newName
	}
	return *c, nil
}

// DeleteClient removes a client and all its entries. It returns false if
// the client does not exist for that owner.
func (b *Book) DeleteClient(owner string, id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, c := range b.clients {
		if c.owner == owner && c.id == id {
			b.clients = append(b.clients[:i], b.clients[i+1:]...)
			delete(b.entries, id)
			return true
		}
	}
	return false
}

// Client returns the client with the given id, if it exists for the owner.
func (b *Book) Client(owner string, id int64) (Client, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c := b.findClient(owner, id); c != nil {
		return *c, true
	}
	return Client{}, false
}

// FindByMobile returns the owner's client with the given mobile number.
func (b *Book) FindByMobile(owner, mobile string) (Client, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c := b.findByMobile(owner, mobile); c != nil {
		return *c, true
	}
	return Client{}, false
}

// Clients returns all clients of the owner sorted by name.
func (b *Book) Clients(owner string) []Client {
	b.mu.Lock()
	defer b.mu.Unlock()

	var list []Client
	for _, c := range b.clients {
		if c.owner == owner {
			list = append(list, *c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].name < list[j].name })
	return list
}

// SearchClients returns the owner's clients whose name or mobile contains
// the query, case-insensitively. An empty query matches nothing.
func (b *Book) SearchClients(owner, query string) []Client {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var list []Client
	for _, c := range b.Clients(owner) {
		if strings.Contains(strings.ToLower(c.name), query) ||
			strings.Contains(strings.ToLower(c.mobile), query) {
			list = append(list, c)
		}
	}
	return list
}

// AddEntry validates the input and appends an entry to the client's
// ledger with serial = current count + 1.
func (b *Book) AddEntry(owner string, clientID int64, in EntryInput) (Entry, error) {
	p, err := in.parse()
	if err != nil {
		return Entry{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findClient(owner, clientID) == nil {
		return Entry{}, fmt.Errorf("client %d %w for owner %q", clientID, ErrNotFound, owner)
	}

	b.lastEntryID++
	e := &Entry{
		id:            b.lastEntryID,
		serial:        len(b.entries[clientID]) + 1,
		date:          p.date,
		detail:        p.detail,
		amountPerHour: p.amountPerHour,
		deposit:       p.deposit,
	}
	b.entries[clientID] = append(b.entries[clientID], e)
	return *e, nil
}

// UpdateEntry edits an entry in place. The serial is never touched. An
// unknown entry id, or an entry belonging to a different client, is an
// ErrNotFound: entries are never silently reparented.
func (b *Book) UpdateEntry(owner string, clientID, entryID int64, in EntryInput) error {
	p, err := in.parse()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findClient(owner, clientID) == nil {
		return fmt.Errorf("client %d %w for owner %q", clientID, ErrNotFound, owner)
	}
	for _, e := range b.entries[clientID] {
		if e.id == entryID {
			e.date = p.date
			e.detail = p.detail
			e.amountPerHour = p.amountPerHour
			e.deposit = p.deposit
			return nil
		}
	}
	return fmt.Errorf("entry %d %w for client %d", entryID, ErrNotFound, clientID)
}

// DeleteEntry removes an entry and renumbers the remaining entries of the
// client so serials stay a contiguous 1..N in the original relative
// order. It returns false if the entry does not exist for that client.
func (b *Book) DeleteEntry(owner string, clientID, entryID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findClient(owner, clientID) == nil {
		return false
	}
	list := b.entries[clientID]
	for i, e := range list {
		if e.id == entryID {
			list = append(list[:i], list[i+1:]...)
			// Correctness-first: renumber everything after every delete.
			for j, r := range list {
				r.serial = j + 1
			}
			b.entries[clientID] = list
			return true
		}
	}
	return false
}

// Entries returns the client's entries in creation order (ascending id),
// which is stable regardless of any serial renumbering churn.
func (b *Book) Entries(owner string, clientID int64) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findClient(owner, clientID) == nil {
		return nil
	}
	list := make([]Entry, 0, len(b.entries[clientID]))
	for _, e := range b.entries[clientID] {
		list = append(list, *e)
	}
	return list
}

// findClient returns the owner's client with the given id. Callers hold the lock.
func (b *Book) findClient(owner string, id int64) *Client {
	for _, c := range b.clients {
		if c.owner == owner && c.id == id {
			return c
		}
	}
	return nil
}

// findByMobile returns the owner's client with the given mobile. Callers hold the lock.
func (b *Book) findByMobile(owner, mobile string) *Client {
	for _, c := range b.clients {
		if c.owner == owner && c.mobile == mobile {
			return c
		}
	}
	return nil
}
