package hourbook

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadBook opens, decodes, and returns the book stored at path.
// A missing file is reported as-is (fs.ErrNotExist) so callers can decide
// to start with an empty book.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	return book, nil
}

// SaveBook writes the book to path in canonical JSONL form, creating the
// parent directory if needed.
func SaveBook(path string, b *Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeBook(f, b)
}
