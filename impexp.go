package tradetrackr

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the backup import/export format.
// It should remain human readable and diffable: one indented JSON document,
// collections in insertion order, stable field order within each object.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// document is the backup format: exactly three top-level collections. The
// current-week pointer is UI convenience state, not a backup concern, and is
// deliberately absent.
type document struct {
	Users  []User        `json:"users"`
	Weeks  []*Week       `json:"weeks"`
	Ratios []WeeklyRatio `json:"weeklyRatios"`
}

// ExportBook writes the book's users, weeks (with nested trades) and ratio
// overrides to 'w' as one indented JSON document.
func ExportBook(w io.Writer, b *Book) error {
	doc := document{
		Users:  b.users,
		Weeks:  b.weeks,
		Ratios: b.ratios,
	}
	if doc.Users == nil {
		doc.Users = []User{}
	}
	if doc.Weeks == nil {
		doc.Weeks = []*Week{}
	}
	if doc.Ratios == nil {
		doc.Ratios = []WeeklyRatio{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot export book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export document: %w", err)
	}
	return nil
}

// ImportBook reads a backup document from 'r' and wholesale replaces the
// book's collections with its content (no merge). The current week is reset
// to the first imported week, or to none when the document holds no weeks.
//
// The book is left completely untouched when the document cannot be parsed or
// lacks one of the three required collections.
func ImportBook(r io.Reader, b *Book) error {
	// pointer slices discriminate a missing collection from an empty one.
	var doc struct {
		Users  *[]User        `json:"users"`
		Weeks  *[]*Week       `json:"weeks"`
		Ratios *[]WeeklyRatio `json:"weeklyRatios"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("cannot parse document: %v: %w", err, ErrSerialization)
	}
	switch {
	case doc.Users == nil:
		return fmt.Errorf("document is missing the %q collection: %w", "users", ErrValidation)
	case doc.Weeks == nil:
		return fmt.Errorf("document is missing the %q collection: %w", "weeks", ErrValidation)
	case doc.Ratios == nil:
		return fmt.Errorf("document is missing the %q collection: %w", "weeklyRatios", ErrValidation)
	}
	// all validation happens before the first assignment below, so a bad
	// document can never leave a half-replaced book behind.
	for i, w := range *doc.Weeks {
		if w == nil {
			return fmt.Errorf("weeks[%d] is null: %w", i, ErrSerialization)
		}
	}

	b.users = *doc.Users
	b.weeks = *doc.Weeks
	b.ratios = *doc.Ratios
	for _, w := range b.weeks {
		if w.Trades == nil {
			w.Trades = []Trade{}
		}
	}
	b.currentWeekID = ""
	if len(b.weeks) > 0 {
		b.currentWeekID = b.weeks[0].ID
	}
	return nil
}
