package tradetrackr

import (
	"encoding/json"
	"fmt"
	"io"
)

// this file contains the codec for the durable-storage blob: the whole
// AppState, current-week pointer included, as one JSON document. The blob is
// a superset of the backup format so a storage file is also a valid backup.

// EncodeBook persists the whole book state to 'w' as one JSON blob.
func EncodeBook(w io.Writer, b *Book) error {
	var jw jsonObjectWriter
	users := b.users
	if users == nil {
		users = []User{}
	}
	weeks := b.weeks
	if weeks == nil {
		weeks = []*Week{}
	}
	ratios := b.ratios
	if ratios == nil {
		ratios = []WeeklyRatio{}
	}
	jw.Append("users", users)
	jw.Append("weeks", weeks)
	jw.Append("weeklyRatios", ratios)
	jw.Optional("currentWeekId", b.currentWeekID)

	raw, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot encode book: %w", err)
	}
	data, err := indentJSON(raw)
	if err != nil {
		return fmt.Errorf("cannot encode book: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write book: %w", err)
	}
	return nil
}

func indentJSON(raw []byte) ([]byte, error) {
	var msg json.RawMessage = raw
	return json.MarshalIndent(msg, "", "  ")
}

// DecodeBook reads a whole book state from 'r'. A blob with no currentWeekId
// (or one pointing at a week that no longer exists) falls back to the first
// week, keeping the pointer invariant: when set, it references an existing week.
func DecodeBook(r io.Reader) (*Book, error) {
	var blob struct {
		Users         []User        `json:"users"`
		Weeks         []*Week       `json:"weeks"`
		Ratios        []WeeklyRatio `json:"weeklyRatios"`
		CurrentWeekID string        `json:"currentWeekId"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&blob); err != nil {
		return nil, fmt.Errorf("cannot parse book: %v: %w", err, ErrSerialization)
	}
	for i, w := range blob.Weeks {
		if w == nil {
			return nil, fmt.Errorf("weeks[%d] is null: %w", i, ErrSerialization)
		}
	}

	b := NewBook()
	b.users = blob.Users
	b.weeks = blob.Weeks
	b.ratios = blob.Ratios
	for _, w := range b.weeks {
		if w.Trades == nil {
			w.Trades = []Trade{}
		}
	}
	if b.week(blob.CurrentWeekID) != nil {
		b.currentWeekID = blob.CurrentWeekID
	} else if len(b.weeks) > 0 {
		b.currentWeekID = b.weeks[0].ID
	}
	return b, nil
}
