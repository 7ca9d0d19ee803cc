package tradetrackr

import (
	"testing"
	"time"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build exact decimal values from literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// on is a helper for tests to build dates from ISO literals.
func on(s string) date.Date { return date.MustParse(s) }

// testInstant is the fixed clock used by books under test.
var testInstant = time.Date(2025, time.August, 25, 9, 30, 0, 0, time.UTC)

// newTestBook creates an empty book with a deterministic clock.
func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook()
	b.now = func() time.Time { return testInstant }
	return b
}

// addWeek adds a week or fails the test.
func addWeek(t *testing.T, b *Book, start, end string, startValue string) string {
	t.Helper()
	id, err := b.AddWeek(on(start), on(end), dec(startValue))
	if err != nil {
		t.Fatalf("AddWeek() failed: %v", err)
	}
	return id
}

// addUser adds a user or fails the test.
func addUser(t *testing.T, b *Book, name, ratio string) string {
	t.Helper()
	id, err := b.AddUser(name, dec(ratio))
	if err != nil {
		t.Fatalf("AddUser(%q) failed: %v", name, err)
	}
	return id
}

// addTrade adds a trade or fails the test.
func addTrade(t *testing.T, b *Book, weekID, amount, description string) string {
	t.Helper()
	id, err := b.AddTrade(weekID, dec(amount), description)
	if err != nil {
		t.Fatalf("AddTrade(%s) failed: %v", amount, err)
	}
	return id
}
