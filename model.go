package tradetrackr

import (
	"time"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/shopspring/decimal"
)

// User is a participant entitled to a proportional share of a week's net gain.
type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DefaultRatio decimal.Decimal `json:"defaultRatio"` // baseline sharing weight, absent a week override
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (u User) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", u.ID)
	w.Append("name", u.Name)
	w.Append("defaultRatio", u.DefaultRatio)
	return w.MarshalJSON()
}

// Trade is a single signed monetary event within a week. The sign of Amount
// conveys gain or loss. The timestamp is assigned at creation and survives a
// move to another week.
type Trade struct {
	ID          string          `json:"id"`
	WeekID      string          `json:"weekId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Timestamp   int64           `json:"timestamp"` // milliseconds since epoch
}

// Time returns the trade's creation instant.
func (t Trade) Time() time.Time { return time.UnixMilli(t.Timestamp) }

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("weekId", t.WeekID)
	w.Append("amount", t.Amount)
	w.Append("description", t.Description)
	w.Append("timestamp", t.Timestamp)
	return w.MarshalJSON()
}

// Week is a bounded accounting period with a starting account value and an
// insertion-ordered collection of trades it owns.
type Week struct {
	ID         string          `json:"id"`
	StartDate  date.Date       `json:"startDate"`
	EndDate    date.Date       `json:"endDate"` // expected >= StartDate, not enforced
	StartValue decimal.Decimal `json:"startValue"`
	Trades     []Trade         `json:"trades"`
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (w Week) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("id", w.ID)
	jw.Append("startDate", w.StartDate)
	jw.Append("endDate", w.EndDate)
	jw.Append("startValue", w.StartValue)
	trades := w.Trades
	if trades == nil {
		trades = []Trade{}
	}
	jw.Append("trades", trades)
	return jw.MarshalJSON()
}

// WeeklyRatio overrides a user's default sharing ratio for one specific week.
// The (WeekID, UserID) pair is the natural key: at most one row per pair.
type WeeklyRatio struct {
	WeekID string          `json:"weekId"`
	UserID string          `json:"userId"`
	Ratio  decimal.Decimal `json:"ratio"`
}

// MarshalJSON implements the json.Marshaler interface with a stable field order.
func (r WeeklyRatio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("weekId", r.WeekID)
	w.Append("userId", r.UserID)
	w.Append("ratio", r.Ratio)
	return w.MarshalJSON()
}
