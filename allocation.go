package tradetrackr

import "github.com/shopspring/decimal"

// This file implements the profit-sharing allocation: resolving the effective
// ratio for every (week, user) pair and converting ratios into proportional
// shares of a week's net gain.

// UserShare is one user's slice of a week's net gain.
type UserShare struct {
	UserID   string          `json:"userId"`
	UserName string          `json:"userName"`
	Ratio    decimal.Decimal `json:"ratio"`
	NetGain  decimal.Decimal `json:"netGain"`
}

// EffectiveRatio resolves the ratio actually used for a (week, user) pair:
// the week override when one exists, else the user's default ratio.
// An unknown user resolves to zero.
func (b *Book) EffectiveRatio(weekID, userID string) decimal.Decimal {
	for _, r := range b.ratios {
		if r.WeekID == weekID && r.UserID == userID {
			return r.Ratio
		}
	}
	if u := b.User(userID); u != nil {
		return u.DefaultRatio
	}
	return decimal.Zero
}

// Allocate splits netGain among all known users proportionally to their
// effective ratios for the given week. When the total effective ratio is zero
// (no users, or all ratios zero) every share is zero; no fallback split is
// attempted. Ratios are free weights, they are not normalized to any total.
//
// The division residual is folded into the last user with a positive ratio so
// the shares always sum exactly to netGain.
func (b *Book) Allocate(weekID string, netGain decimal.Decimal) []UserShare {
	shares := make([]UserShare, 0, len(b.users))
	total := decimal.Zero
	for _, u := range b.users {
		ratio := b.EffectiveRatio(weekID, u.ID)
		total = total.Add(ratio)
		shares = append(shares, UserShare{UserID: u.ID, UserName: u.Name, Ratio: ratio})
	}
	if !total.IsPositive() {
		return shares
	}

	last := -1 // index of the last positive-ratio share, receives the residual
	for i := range shares {
		if shares[i].Ratio.IsPositive() {
			last = i
		}
	}
	allocated := decimal.Zero
	for i := range shares {
		if i == last {
			shares[i].NetGain = netGain.Sub(allocated)
			continue
		}
		shares[i].NetGain = shares[i].Ratio.Div(total).Mul(netGain)
		allocated = allocated.Add(shares[i].NetGain)
	}
	return shares
}
