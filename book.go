package tradetrackr

import (
	"fmt"
	"time"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the canonical state container for the whole journal: participants,
// weeks (each owning its trades), per-week ratio overrides and the
// current-week pointer. It is constructed once and passed by handle to every
// collaborator; there is no ambient global state.
//
// All mutators are synchronous and atomic: they validate first and mutate
// only after, so a failed operation leaves the book untouched.
type Book struct {
	users         []User
	weeks         []*Week
	ratios        []WeeklyRatio
	currentWeekID string

	now func() time.Time // trade timestamp source, replaceable in tests
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{now: time.Now}
}

// ---- lookups (read-only) ----

// Users returns the participants in insertion order.
func (b *Book) Users() []User { return b.users }

// Weeks returns the weeks in insertion order.
func (b *Book) Weeks() []*Week { return b.weeks }

// Ratios returns the per-week ratio overrides in insertion order.
func (b *Book) Ratios() []WeeklyRatio { return b.ratios }

// CurrentWeekID returns the id of the current week, or "" if none is set.
func (b *Book) CurrentWeekID() string { return b.currentWeekID }

// CurrentWeek returns the current week, or nil if none is set.
func (b *Book) CurrentWeek() *Week { return b.week(b.currentWeekID) }

// User returns the user with this id, or nil if unknown.
func (b *Book) User(id string) *User {
	for i := range b.users {
		if b.users[i].ID == id {
			return &b.users[i]
		}
	}
	return nil
}

// Week returns the week with this id, or nil if unknown.
func (b *Book) Week(id string) *Week { return b.week(id) }

func (b *Book) week(id string) *Week {
	if id == "" {
		return nil
	}
	for _, w := range b.weeks {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Trade returns the trade with this id and its owning week, or nils if unknown.
func (b *Book) Trade(id string) (*Week, *Trade) {
	for _, w := range b.weeks {
		for i := range w.Trades {
			if w.Trades[i].ID == id {
				return w, &w.Trades[i]
			}
		}
	}
	return nil, nil
}

// ---- user mutators ----

// AddUser creates a participant with a fresh id and returns the id.
func (b *Book) AddUser(name string, defaultRatio decimal.Decimal) (string, error) {
	if name == "" {
		return "", fmt.Errorf("user name is empty: %w", ErrValidation)
	}
	if defaultRatio.IsNegative() {
		return "", fmt.Errorf("default ratio %s is negative: %w", defaultRatio, ErrValidation)
	}
	u := User{ID: uuid.NewString(), Name: name, DefaultRatio: defaultRatio}
	b.users = append(b.users, u)
	return u.ID, nil
}

// UpdateUser replaces the name and default ratio of an existing user in place.
// The id and existing ratio overrides are unchanged.
func (b *Book) UpdateUser(id, name string, defaultRatio decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("user name is empty: %w", ErrValidation)
	}
	if defaultRatio.IsNegative() {
		return fmt.Errorf("default ratio %s is negative: %w", defaultRatio, ErrValidation)
	}
	u := b.User(id)
	if u == nil {
		return fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	u.Name = name
	u.DefaultRatio = defaultRatio
	return nil
}

// RemoveUser removes a user and cascades deletion of all ratio overrides
// referencing it.
func (b *Book) RemoveUser(id string) error {
	if b.User(id) == nil {
		return fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	users := b.users[:0]
	for _, u := range b.users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	b.users = users
	b.dropRatios(func(r WeeklyRatio) bool { return r.UserID == id })
	return nil
}

// ---- week mutators ----

// AddWeek creates a week with a fresh id and an empty trade collection, and
// returns the new week's id. The first week ever added becomes the current week.
func (b *Book) AddWeek(start, end date.Date, startValue decimal.Decimal) (string, error) {
	if start.IsZero() || end.IsZero() {
		return "", fmt.Errorf("week boundaries are not set: %w", ErrValidation)
	}
	w := &Week{
		ID:         uuid.NewString(),
		StartDate:  start,
		EndDate:    end,
		StartValue: startValue,
		Trades:     []Trade{},
	}
	b.weeks = append(b.weeks, w)
	if b.currentWeekID == "" {
		b.currentWeekID = w.ID
	}
	return w.ID, nil
}

// UpdateWeek replaces the boundaries and starting value of an existing week.
// Trades are untouched.
func (b *Book) UpdateWeek(id string, start, end date.Date, startValue decimal.Decimal) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("week boundaries are not set: %w", ErrValidation)
	}
	w := b.week(id)
	if w == nil {
		return fmt.Errorf("week %q: %w", id, ErrNotFound)
	}
	w.StartDate = start
	w.EndDate = end
	w.StartValue = startValue
	return nil
}

// RemoveWeek deletes a week together with all its trades, cascades deletion of
// ratio overrides referencing it, and repairs the current-week pointer: the
// most recently created remaining week becomes current, or none remain and the
// pointer is cleared.
func (b *Book) RemoveWeek(id string) error {
	if b.week(id) == nil {
		return fmt.Errorf("week %q: %w", id, ErrNotFound)
	}
	weeks := b.weeks[:0]
	for _, w := range b.weeks {
		if w.ID != id {
			weeks = append(weeks, w)
		}
	}
	b.weeks = weeks
	b.dropRatios(func(r WeeklyRatio) bool { return r.WeekID == id })
	if b.currentWeekID == id {
		b.currentWeekID = ""
		if len(b.weeks) > 0 {
			b.currentWeekID = b.weeks[len(b.weeks)-1].ID
		}
	}
	return nil
}

// SetCurrentWeek moves the current-week pointer to an existing week.
func (b *Book) SetCurrentWeek(id string) error {
	if b.week(id) == nil {
		return fmt.Errorf("week %q: %w", id, ErrNotFound)
	}
	b.currentWeekID = id
	return nil
}

// ---- ratio mutators ----

// SetWeeklyRatio upserts the ratio override for the (week, user) pair: an
// existing row is replaced in place, a new pair is appended.
func (b *Book) SetWeeklyRatio(weekID, userID string, ratio decimal.Decimal) error {
	if ratio.IsNegative() {
		return fmt.Errorf("ratio %s is negative: %w", ratio, ErrValidation)
	}
	if b.week(weekID) == nil {
		return fmt.Errorf("week %q: %w", weekID, ErrNotFound)
	}
	if b.User(userID) == nil {
		return fmt.Errorf("user %q: %w", userID, ErrNotFound)
	}
	for i := range b.ratios {
		if b.ratios[i].WeekID == weekID && b.ratios[i].UserID == userID {
			b.ratios[i].Ratio = ratio
			return nil
		}
	}
	b.ratios = append(b.ratios, WeeklyRatio{WeekID: weekID, UserID: userID, Ratio: ratio})
	return nil
}

func (b *Book) dropRatios(drop func(WeeklyRatio) bool) {
	ratios := b.ratios[:0]
	for _, r := range b.ratios {
		if !drop(r) {
			ratios = append(ratios, r)
		}
	}
	b.ratios = ratios
}

// ---- trade mutators ----

// AddTrade appends a trade, stamped with the current instant, to the named
// week. An empty weekID targets the current week; recording a trade while no
// current week is set is a hard error rather than a silent no-op, so a "trade
// silently didn't save" can not happen.
func (b *Book) AddTrade(weekID string, amount decimal.Decimal, description string) (string, error) {
	if weekID == "" {
		if b.currentWeekID == "" {
			return "", fmt.Errorf("cannot record trade: %w", ErrNoCurrentWeek)
		}
		weekID = b.currentWeekID
	}
	w := b.week(weekID)
	if w == nil {
		return "", fmt.Errorf("week %q: %w", weekID, ErrNotFound)
	}
	t := Trade{
		ID:          uuid.NewString(),
		WeekID:      w.ID,
		Amount:      amount,
		Description: description,
		Timestamp:   b.now().UnixMilli(),
	}
	w.Trades = append(w.Trades, t)
	return t.ID, nil
}

// UpdateTrade replaces a trade's amount and description. A non-empty weekID
// that differs from the owning week moves the trade: it is removed from its
// old week and appended to the new one, preserving its creation timestamp.
// An unknown target week is a hard error, the trade stays where it is.
func (b *Book) UpdateTrade(id, weekID string, amount decimal.Decimal, description string) error {
	owner, t := b.Trade(id)
	if t == nil {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	if weekID != "" && weekID != owner.ID {
		target := b.week(weekID)
		if target == nil {
			return fmt.Errorf("target week %q: %w", weekID, ErrNotFound)
		}
		moved := *t
		moved.WeekID = target.ID
		moved.Amount = amount
		moved.Description = description
		b.removeTradeFrom(owner, id)
		target.Trades = append(target.Trades, moved)
		return nil
	}
	t.Amount = amount
	t.Description = description
	return nil
}

// RemoveTrade removes a trade from whichever week holds it.
func (b *Book) RemoveTrade(id string) error {
	owner, t := b.Trade(id)
	if t == nil {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	b.removeTradeFrom(owner, id)
	return nil
}

func (b *Book) removeTradeFrom(w *Week, id string) {
	trades := w.Trades[:0]
	for _, t := range w.Trades {
		if t.ID != id {
			trades = append(trades, t)
		}
	}
	w.Trades = trades
}

// Reset clears all collections and the current-week pointer back to the
// initial empty state.
func (b *Book) Reset() {
	b.users = nil
	b.weeks = nil
	b.ratios = nil
	b.currentWeekID = ""
}
