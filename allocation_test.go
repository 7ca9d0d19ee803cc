package tradetrackr

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAllocateDefaults(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1")
	bob := addUser(t, b, "Bob", "2")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")

	shares := b.Allocate(week, dec("300"))
	if len(shares) != 2 {
		t.Fatalf("got %d shares, want 2", len(shares))
	}
	if !shares[0].NetGain.Equal(dec("100")) {
		t.Errorf("%s share = %s, want 100", alice, shares[0].NetGain)
	}
	if !shares[1].NetGain.Equal(dec("200")) {
		t.Errorf("%s share = %s, want 200", bob, shares[1].NetGain)
	}
}

func TestAllocateOverridesTakePrecedenceEntirely(t *testing.T) {
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

	shares := b.Allocate(week, dec("300"))
	if !shares[0].NetGain.Equal(dec("225")) {
		t.Errorf("Alice share = %s, want 225", shares[0].NetGain)
	}
	if !shares[1].NetGain.Equal(dec("75")) {
		t.Errorf("Bob share = %s, want 75", shares[1].NetGain)
	}

	// the override applies to this week only: another week uses defaults.
	other := addWeek(t, b, "2025-09-01", "2025-09-07", "1000")
	shares = b.Allocate(other, dec("300"))
	if !shares[0].NetGain.Equal(dec("100")) || !shares[1].NetGain.Equal(dec("200")) {
		t.Errorf("other week shares = %s/%s, want 100/200", shares[0].NetGain, shares[1].NetGain)
	}
}

func TestAllocateZeroTotalRatio(t *testing.T) {
	b := newTestBook(t)
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")

	t.Run("no users", func(t *testing.T) {
		if shares := b.Allocate(week, dec("300")); len(shares) != 0 {
			t.Errorf("got %d shares, want 0", len(shares))
		}
	})

	t.Run("all ratios zero", func(t *testing.T) {
		addUser(t, b, "Alice", "0")
		addUser(t, b, "Bob", "0")
		shares := b.Allocate(week, dec("300"))
		for _, s := range shares {
			if !s.NetGain.IsZero() {
				t.Errorf("%s share = %s, want 0", s.UserName, s.NetGain)
			}
		}
	})
}

func TestAllocateSharesSumExactly(t *testing.T) {
	b := newTestBook(t)
	// three equal weights over a gain not divisible by three
	addUser(t, b, "Alice", "1")
	addUser(t, b, "Bob", "1")
	addUser(t, b, "Carol", "1")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")

	netGain := dec("100")
	shares := b.Allocate(week, netGain)
	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.NetGain)
	}
	if !sum.Equal(netGain) {
		t.Errorf("shares sum to %s, want exactly %s", sum, netGain)
	}
}

func TestAllocateExcludesRemovedUser(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1")
	bob := addUser(t, b, "Bob", "1")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")
	if err := b.SetWeeklyRatio(week, alice, dec("5")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}
	if err := b.RemoveUser(alice); err != nil {
		t.Fatalf("RemoveUser() failed: %v", err)
	}

	shares := b.Allocate(week, dec("300"))
	if len(shares) != 1 {
		t.Fatalf("removed user must be absent, not zeroed: got %d shares", len(shares))
	}
	if shares[0].UserID != bob {
		t.Errorf("remaining share belongs to %q, want %q", shares[0].UserID, bob)
	}
	if !shares[0].NetGain.Equal(dec("300")) {
		t.Errorf("remaining share = %s, want the full 300", shares[0].NetGain)
	}
}

func TestEffectiveRatio(t *testing.T) {
	b := newTestBook(t)
	alice := addUser(t, b, "Alice", "1.5")
	week := addWeek(t, b, "2025-08-25", "2025-08-31", "1000")

	if got := b.EffectiveRatio(week, alice); !got.Equal(dec("1.5")) {
		t.Errorf("EffectiveRatio() = %s, want the default 1.5", got)
	}
	if err := b.SetWeeklyRatio(week, alice, dec("0")); err != nil {
		t.Fatalf("SetWeeklyRatio() failed: %v", err)
	}
	// a zero override is a real override, not a fallback to the default.
	if got := b.EffectiveRatio(week, alice); !got.IsZero() {
		t.Errorf("EffectiveRatio() = %s, want the 0 override", got)
	}
	if got := b.EffectiveRatio(week, "missing"); !got.IsZero() {
		t.Errorf("EffectiveRatio(unknown user) = %s, want 0", got)
	}
}
