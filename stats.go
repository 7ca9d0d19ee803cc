package tradetrackr

import (
	"slices"

	"github.com/UttU28/TradeTrackr/date"
	"github.com/shopspring/decimal"
)

// This file implements the derivation functions over the book. Nothing here
// mutates state and nothing is cached: every call recomputes from the
// canonical collections, so results are always consistent with the book.

// TradeStats are the per-week aggregates derived from a week's trade collection.
type TradeStats struct {
	NetGain       decimal.Decimal `json:"netGain"`
	AvgPerTrade   decimal.Decimal `json:"avgPerTrade"`
	PositiveCount int             `json:"positiveCount"`
	NegativeCount int             `json:"negativeCount"` // zero-amount trades count toward neither
	LargestGain   decimal.Decimal `json:"largestGain"`
	LargestLoss   decimal.Decimal `json:"largestLoss"` // absolute value of the worst trade
}

// TradeStats derives the aggregates for one week. An unknown week id yields
// zeroed stats: the read path degrades gracefully instead of failing.
func (b *Book) TradeStats(weekID string) TradeStats {
	var stats TradeStats
	w := b.week(weekID)
	if w == nil || len(w.Trades) == 0 {
		return stats
	}

	min, max := w.Trades[0].Amount, w.Trades[0].Amount
	for _, t := range w.Trades {
		stats.NetGain = stats.NetGain.Add(t.Amount)
		switch {
		case t.Amount.IsPositive():
			stats.PositiveCount++
		case t.Amount.IsNegative():
			stats.NegativeCount++
		}
		if t.Amount.GreaterThan(max) {
			max = t.Amount
		}
		if t.Amount.LessThan(min) {
			min = t.Amount
		}
	}
	// floors: a week of only losses has no "largest gain", and vice versa
	if max.IsPositive() {
		stats.LargestGain = max
	}
	if min.IsNegative() {
		stats.LargestLoss = min.Abs()
	}
	stats.AvgPerTrade = stats.NetGain.Div(decimal.NewFromInt(int64(len(w.Trades))))
	return stats
}

// WeeklySummary combines a week's stored starting value with its derived
// statistics and the per-user allocation of its net gain.
type WeeklySummary struct {
	WeekID     string          `json:"weekId"`
	StartDate  date.Date       `json:"startDate"`
	EndDate    date.Date       `json:"endDate"`
	StartValue decimal.Decimal `json:"startValue"`
	EndValue   decimal.Decimal `json:"endValue"`
	NetGain    decimal.Decimal `json:"netGain"`
	TradeCount int             `json:"tradeCount"`
	Stats      TradeStats      `json:"stats"`
	Shares     []UserShare     `json:"userSummaries"`
}

// WeeklySummary derives the full summary for one week. An unknown week id
// yields a zeroed summary with an empty share list, never an error.
func (b *Book) WeeklySummary(weekID string) WeeklySummary {
	w := b.week(weekID)
	if w == nil {
		return WeeklySummary{Shares: []UserShare{}}
	}
	stats := b.TradeStats(weekID)
	return WeeklySummary{
		WeekID:     w.ID,
		StartDate:  w.StartDate,
		EndDate:    w.EndDate,
		StartValue: w.StartValue,
		EndValue:   w.StartValue.Add(stats.NetGain),
		NetGain:    stats.NetGain,
		TradeCount: len(w.Trades),
		Stats:      stats,
		Shares:     b.Allocate(w.ID, stats.NetGain),
	}
}

// Summaries derives one summary per week, in the book's insertion order.
func (b *Book) Summaries() []WeeklySummary {
	summaries := make([]WeeklySummary, 0, len(b.weeks))
	for _, w := range b.weeks {
		summaries = append(summaries, b.WeeklySummary(w.ID))
	}
	return summaries
}

// ChartPoint is one week of the cross-week performance series.
type ChartPoint struct {
	Week           date.Date       `json:"week"` // the week's start date
	WeekGain       decimal.Decimal `json:"weekGain"`
	CumulativeGain decimal.Decimal `json:"cumulativeGain"`
	PercentChange  Percent         `json:"percentChange"` // (end-start)/|start| within the week
}

// ChartSeries produces the chart data for a set of summaries: weeks sorted
// ascending by start date, each paired with the running cumulative net gain
// over all weeks so far. The series is fully recomputed on each call.
func ChartSeries(summaries []WeeklySummary) []ChartPoint {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b WeeklySummary) int {
		switch {
		case a.StartDate.Before(b.StartDate):
			return -1
		case a.StartDate.After(b.StartDate):
			return 1
		default:
			return 0
		}
	})

	points := make([]ChartPoint, 0, len(sorted))
	cumulative := decimal.Zero
	for _, s := range sorted {
		cumulative = cumulative.Add(s.NetGain)
		points = append(points, ChartPoint{
			Week:           s.StartDate,
			WeekGain:       s.NetGain,
			CumulativeGain: cumulative,
			PercentChange:  percentChange(s.StartValue, s.EndValue),
		})
	}
	return points
}

// percentChange computes the fractional change between two values, 0 when the
// starting value is zero.
func percentChange(start, end decimal.Decimal) Percent {
	if start.IsZero() {
		return 0
	}
	change, _ := end.Sub(start).Div(start.Abs()).Float64()
	return Percent(change)
}

// Overview are the dashboard-level aggregates reduced over all week summaries.
type Overview struct {
	StartValue    decimal.Decimal // starting value of the first summary
	EndValue      decimal.Decimal // ending value of the last summary
	TotalNetGain  decimal.Decimal
	AvgWeeklyGain decimal.Decimal
	TotalTrades   int
	AvgPerTrade   decimal.Decimal // overall, across all trades of all weeks
	BestWeek      WeeklySummary   // by net gain; ties break toward the first encountered
	WorstWeek     WeeklySummary
}

// NewOverview reduces a set of week summaries into the dashboard aggregates.
// Summaries are consumed in the order given; callers wanting a date-ordered
// best/worst tie-break should pre-sort. An empty input yields a zero Overview.
func NewOverview(summaries []WeeklySummary) Overview {
	var o Overview
	if len(summaries) == 0 {
		return o
	}
	o.StartValue = summaries[0].StartValue
	o.EndValue = summaries[len(summaries)-1].EndValue
	o.BestWeek = summaries[0]
	o.WorstWeek = summaries[0]
	for _, s := range summaries {
		o.TotalNetGain = o.TotalNetGain.Add(s.NetGain)
		o.TotalTrades += s.TradeCount
		if s.NetGain.GreaterThan(o.BestWeek.NetGain) {
			o.BestWeek = s
		}
		if s.NetGain.LessThan(o.WorstWeek.NetGain) {
			o.WorstWeek = s
		}
	}
	o.AvgWeeklyGain = o.TotalNetGain.Div(decimal.NewFromInt(int64(len(summaries))))
	if o.TotalTrades > 0 {
		o.AvgPerTrade = o.TotalNetGain.Div(decimal.NewFromInt(int64(o.TotalTrades)))
	}
	return o
}

// AggregateTradeStats rolls several weeks' trade statistics into one: sums of
// gains and counts, extremes of the largest gain and loss. The average per
// trade is over the counted (non-zero) trades only.
func AggregateTradeStats(statsList ...TradeStats) TradeStats {
	var agg TradeStats
	for _, s := range statsList {
		agg.NetGain = agg.NetGain.Add(s.NetGain)
		agg.PositiveCount += s.PositiveCount
		agg.NegativeCount += s.NegativeCount
		if s.LargestGain.GreaterThan(agg.LargestGain) {
			agg.LargestGain = s.LargestGain
		}
		if s.LargestLoss.GreaterThan(agg.LargestLoss) {
			agg.LargestLoss = s.LargestLoss
		}
	}
	if counted := agg.PositiveCount + agg.NegativeCount; counted > 0 {
		agg.AvgPerTrade = agg.NetGain.Div(decimal.NewFromInt(int64(counted)))
	}
	return agg
}
