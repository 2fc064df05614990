// Package cmd implements the CLI application to manage client ledgers.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hourbook/hourbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "clients")
	c.Register(&clientsCmd{}, "clients")
	c.Register(&updateClientCmd{}, "clients")
	c.Register(&deleteClientCmd{}, "clients")

	c.Register(&addCmd{}, "entries")
	c.Register(&editCmd{}, "entries")
	c.Register(&deleteEntryCmd{}, "entries")

	c.Register(&ledgerCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&importLegacyCmd{}, "data")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "hourbook.jsonl", "Path to the book file containing clients and entries (JSONL format)")
var owner = flag.String("owner", "default", "Owner whose clients the commands operate on")
var displayCurrency = flag.String("currency", "USD", "Currency used to format report totals, 3-letter code")

// LoadBook decodes the book from the app book file.
func LoadBook() (*hourbook.Book, error) {
	b, err := hourbook.LoadBook(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book file does not exist, starting with an empty book instead")
		return hourbook.NewBook(), nil
	}
	return b, err
}

// SaveBook encodes the book back into the app book file.
func SaveBook(b *hourbook.Book) error {
	return hourbook.SaveBook(*bookFile, b)
}

// resolveClient finds the client a command targets, by id or by mobile
// number. Exactly one of the two must be given.
func resolveClient(b *hourbook.Book, id int64, mobile string) (hourbook.Client, error) {
	switch {
	case id != 0 && mobile != "":
		return hourbook.Client{}, errors.New("give either -client or -mobile, not both")
	case id != 0:
		if c, ok := b.Client(*owner, id); ok {
			return c, nil
		}
		return hourbook.Client{}, fmt.Errorf("client %d %w", id, hourbook.ErrNotFound)
	case mobile != "":
		if c, ok := b.FindByMobile(*owner, mobile); ok {
			return c, nil
		}
		return hourbook.Client{}, fmt.Errorf("client with mobile %q %w", mobile, hourbook.ErrNotFound)
	default:
		return hourbook.Client{}, errors.New("a -client id or a -mobile is required")
	}
}

// render pretty-prints markdown for the terminal; on any rendering
// trouble the raw markdown is still perfectly readable.
func render(markdown string) string {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		return markdown
	}
	return out
}

// safeFilename keeps letters, digits and "._- " and substitutes
// everything else, so client names cannot escape into path syntax.
func safeFilename(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
