package tradetrackr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadBook opens and decodes the book file. A missing file is not an error:
// a fresh journal starts from an empty book.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	b, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	return b, nil
}

// SaveBook persists the book to its file, creating parent directories as
// needed. The file is written through a temporary sibling and renamed into
// place so a crash mid-write cannot leave a truncated book behind.
func SaveBook(path string, b *Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".book-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBook(tmp, b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace book file %q: %w", path, err)
	}
	return nil
}
