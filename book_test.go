package tradetrackr

import (
	"errors"
	"testing"
)

func TestAddUserValidation(t *testing.T) {
	b := newTestBook(t)

	testCases := []struct {
		name     string
		userName string
		ratio    string
	}{
		{name: "empty name", userName: "", ratio: "1"},
		{name: "negative ratio", userName: "Alice", ratio: "-0.5"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.AddUser(tc.userName, dec(tc.ratio)); !errors.Is(err, ErrValidation) {
				t.Errorf("AddUser() error = %v, want ErrValidation", err)
			}
		})
	}
	if len(b.Users()) != 0 {
		t.Errorf("rejected AddUser() must not mutate the book, got %d users", len(b.Users()))
	}
}

func TestUpdateUser(t *testing.T) {
	b := newTestBook(t)
	id := addUser(t, b, "Alice", "1")

	if err := b.UpdateUser(id, "Alicia", dec("2.5")); err != nil {
		t.Fatalf("UpdateUser() failed: %v", err)
	}
	u := b.User(id)
	if u.Name != "Alicia" || !u.DefaultRatio.Equal(dec("2.5")) {
		t.Errorf("UpdateUser() got %s ratio %s, want Alicia ratio 2.5", u.Name, u.DefaultRatio)
	}

	if err := b.UpdateUser("missing", "Bob", dec("1")); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateUser(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestRemoveUserCascadesRatios(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1")
	bob := addUser(t, b, "Bob", "2")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")
	if err := b.SetWeeklyRatio(week, alice, dec("3")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}
	if err := b.SetWeeklyRatio(week, bob, dec("1")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}

	if err := b.RemoveUser(alice); err != nil {
		t.Fatalf("RemoveUser() failed: %v", err)
	}
	for _, r := range b.Ratios() {
		if r.UserID == alice {
			t.Errorf("RemoveUser() left a ratio override behind: %+v", r)
		}
	}
	if len(b.Ratios()) != 1 {
		t.Errorf("got %d ratios, want 1", len(b.Ratios()))
	}

	if err := b.RemoveUser(alice); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveUser(removed) error = %v, want ErrNotFound", err)
	}
}

func TestAddWeekSetsCurrentOnlyWhenNoneSet(t *testing.T) {
	b := newTestBook(t)
	first := addWeek(t, b, "2025-08-18", "2025-08-24", "1000")
	if b.CurrentWeekID() != first {
		t.Fatalf("first AddWeek() did not become current")
	}
	addWeek(t, b, "2025-08-25", "2025-08-31", "1100")
	if b.CurrentWeekID() != first {
		t.Errorf("second AddWeek() stole the current-week pointer")
	}
}

func TestUpdateWeek(t *testing.T) {
	b := newTestBook(t)
	id := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")
	addTrade(t, b, id, "50", "scalp")

	if err := b.UpdateWeek(id, on("2025-09-01"), on("2025-09-07"), dec("2000")); err != nil {
		t.Fatalf("UpdateWeek() failed: %v", err)
	}
	w := b.Week(id)
	if w.StartDate != on("2025-09-01") || w.EndDate != on("2025-09-07") || !w.StartValue.Equal(dec("2000")) {
		t.Errorf("UpdateWeek() did not replace fields: %+v", w)
	}
	if len(w.Trades) != 1 {
		t.Errorf("UpdateWeek() must not touch trades, got %d", len(w.Trades))
	}

	if err := b.UpdateWeek("missing", on("2025-09-01"), on("2025-09-07"), dec("0")); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateWeek(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestRemoveWeekCascades(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1")
	w1 := addWeek(t, b, "2025-08-18", "2025-08-24", "1000")
	w2 := addWeek(t, b, "2025-08-25", "2025-08-31", "1100")
	tradeID := addTrade(t, b, w1, "100", "")
	if err := b.SetWeeklyRatio(w1, alice, dec("2")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}

	if err := b.RemoveWeek(w1); err != nil {
		t.Fatalf("RemoveWeek() failed: %v", err)
	}
	if b.Week(w1) != nil {
		t.Errorf("RemoveWeek() left the week behind")
	}
	if _, tr := b.Trade(tradeID); tr != nil {
		t.Errorf("RemoveWeek() left an owned trade behind")
	}
	if len(b.Ratios()) != 0 {
		t.Errorf("RemoveWeek() left %d ratio overrides behind", len(b.Ratios()))
	}
	// w1 was current: the most recently created remaining week takes over.
	if b.CurrentWeekID() != w2 {
		t.Errorf("current week = %q, want %q", b.CurrentWeekID(), w2)
	}
}

func TestRemoveOnlyWeekClearsCurrent(t *testing.T) {
	b := newTestBook(t)
	id := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")
	if err := b.RemoveWeek(id); err != nil {
		t.Fatalf("RemoveWeek() failed: %v", err)
	}
	if b.CurrentWeekID() != "" {
		t.Errorf("current week = %q, want none", b.CurrentWeekID())
	}
	if b.CurrentWeek() != nil {
		t.Errorf("CurrentWeek() = %v, want nil", b.CurrentWeek())
	}
}

func TestSetCurrentWeek(t *testing.T) {
	b := newTestBook(t)
	addWeek(t, b, "2025-08-18", "2025-08-24", "1000")
	w2 := addWeek(t, b, "2025-08-25", "2025-08-31", "1100")

	if err := b.SetCurrentWeek(w2); err != nil {
		t.Fatalf("SetCurrentWeek() failed: %v", err)
	}
	if b.CurrentWeekID() != w2 {
		t.Errorf("current week = %q, want %q", b.CurrentWeekID(), w2)
	}
	if err := b.SetCurrentWeek("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetCurrentWeek(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestSetWeeklyRatioUpserts(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")

	if err := b.SetWeeklyRatio(week, alice, dec("2")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}
	if err := b.SetWeeklyRatio(week, alice, dec("3")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}
	if len(b.Ratios()) != 1 {
		t.Fatalf("re-setting a pair must update in place, got %d rows", len(b.Ratios()))
	}
	if !b.Ratios()[0].Ratio.Equal(dec("3")) {
		t.Errorf("ratio = %s, want 3", b.Ratios()[0].Ratio)
	}

	if err := b.SetWeeklyRatio("missing", alice, dec("1")); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetWeeklyRatio(unknown week) error = %v, want ErrNotFound", err)
	}
	if err := b.SetWeeklyRatio(week, "missing", dec("1")); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetWeeklyRatio(unknown user) error = %v, want ErrNotFound", err)
	}
	if err := b.SetWeeklyRatio(week, alice, dec("-1")); !errors.Is(err, ErrValidation) {
		t.Errorf("SetWeeklyRatio(negative) error = %v, want ErrValidation", err)
	}
}

func TestAddTrade(t *testing.T) {
	b := newTestBook(t)

	// no week at all: hard error, not a silent no-op.
	if _, err := b.AddTrade("", dec("10"), ""); !errors.Is(err, ErrNoCurrentWeek) {
		t.Errorf("AddTrade(no current week) error = %v, want ErrNoCurrentWeek", err)
	}

	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")

	// empty target falls back to the current week.
	id := addTrade(t, b, "", "12.50", "breakout")
	_, tr := b.Trade(id)
	if tr == nil || tr.WeekID != week {
		t.Fatalf("AddTrade(\"\") did not land in the current week")
	}
	if tr.Timestamp != testInstant.UnixMilli() {
		t.Errorf("timestamp = %d, want %d", tr.Timestamp, testInstant.UnixMilli())
	}
	if tr.Description != "breakout" {
		t.Errorf("description = %q, want %q", tr.Description, "breakout")
	}

	// explicit unknown target is a hard error.
	if _, err := b.AddTrade("missing", dec("10"), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddTrade(unknown week) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateTrade(t *testing.T) {
	b := newTestBook(t)
	w1 := addWeek(t, b, "2025-08-18", "2025-08-24", "1000")
	w2 := addWeek(t, b, "2025-08-25", "2025-08-31", "1100")
	id := addTrade(t, b, w1, "100", "entry")

	t.Run("in place", func(t *testing.T) {
		if err := b.UpdateTrade(id, "", dec("150"), "revised"); err != nil {
			t.Fatalf("UpdateTrade() failed: %v", err)
		}
		owner, tr := b.Trade(id)
		if owner.ID != w1 || !tr.Amount.Equal(dec("150")) || tr.Description != "revised" {
			t.Errorf("UpdateTrade() got week %q amount %s %q", owner.ID, tr.Amount, tr.Description)
		}
	})

	t.Run("move to unknown week", func(t *testing.T) {
		if err := b.UpdateTrade(id, "missing", dec("150"), "revised"); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
		owner, _ := b.Trade(id)
		if owner.ID != w1 {
			t.Errorf("failed move must leave the trade under its old week")
		}
	})

	t.Run("move preserves timestamp", func(t *testing.T) {
		if err := b.UpdateTrade(id, w2, dec("175"), "moved"); err != nil {
			t.Fatalf("UpdateTrade() failed: %v", err)
		}
		owner, tr := b.Trade(id)
		if owner.ID != w2 {
			t.Fatalf("trade still under week %q, want %q", owner.ID, w2)
		}
		if tr.WeekID != w2 {
			t.Errorf("trade WeekID = %q, want %q", tr.WeekID, w2)
		}
		if tr.Timestamp != testInstant.UnixMilli() {
			t.Errorf("move must preserve the creation timestamp")
		}
		if len(b.Week(w1).Trades) != 0 {
			t.Errorf("trade left behind in the old week")
		}
	})

	t.Run("unknown trade", func(t *testing.T) {
		if err := b.UpdateTrade("missing", "", dec("1"), ""); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestRemoveTrade(t *testing.T) {
	b := newTestBook(t)
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")
	id := addTrade(t, b, week, "100", "")

	if err := b.RemoveTrade(id); err != nil {
		t.Fatalf("RemoveTrade() failed: %v", err)
	}
	if len(b.Week(week).Trades) != 0 {
		t.Errorf("RemoveTrade() left the trade behind")
	}
	if err := b.RemoveTrade(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveTrade(removed) error = %v, want ErrNotFound", err)
	}
}

func TestReset(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")
	addTrade(t, b, week, "100", "")
	if err := b.SetWeeklyRatio(week, alice, dec("2")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}

	b.Reset()
	if len(b.Users()) != 0 || len(b.Weeks()) != 0 || len(b.Ratios()) != 0 || b.CurrentWeekID() != "" {
		t.Errorf("Reset() left state behind: %d users, %d weeks, %d ratios, current %q",
			len(b.Users()), len(b.Weeks()), len(b.Ratios()), b.CurrentWeekID())
	}
}
