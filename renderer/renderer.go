// Package renderer turns derived journal reports into markdown documents
// ready for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	tradetrackr "github.com/UttU28/TradeTrackr"
	md "github.com/nao1215/markdown"
)

// WeeklySummaryMarkdown renders one week's summary: the monetary roll-up,
// the derived trade statistics and the profit-sharing allocation.
func WeeklySummaryMarkdown(s tradetrackr.WeeklySummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Week %s to %s", s.StartDate, s.EndDate))
	doc.PlainText(fmt.Sprintf("Start value %s, end value %s, net gain %s over %d trades.",
		tradetrackr.M(s.StartValue, currency),
		tradetrackr.M(s.EndValue, currency),
		tradetrackr.M(s.NetGain, currency).SignedString(),
		s.TradeCount))

	doc.H2("Trade Statistics")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Net gain", tradetrackr.M(s.Stats.NetGain, currency).SignedString()},
			{"Average per trade", tradetrackr.M(s.Stats.AvgPerTrade, currency).SignedString()},
			{"Winning trades", fmt.Sprintf("%d", s.Stats.PositiveCount)},
			{"Losing trades", fmt.Sprintf("%d", s.Stats.NegativeCount)},
			{"Largest gain", tradetrackr.M(s.Stats.LargestGain, currency).String()},
			{"Largest loss", tradetrackr.M(s.Stats.LargestLoss, currency).String()},
		},
	})

	if len(s.Shares) > 0 {
		doc.H2("Profit Sharing")
		rows := make([][]string, 0, len(s.Shares))
		for _, share := range s.Shares {
			rows = append(rows, []string{
				share.UserName,
				share.Ratio.String(),
				tradetrackr.M(share.NetGain, currency).SignedString(),
			})
		}
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Participant", "Ratio", "Share"},
			Rows:      rows,
		})
	}

	return doc.String()
}

// OverviewMarkdown renders the dashboard aggregates across all weeks.
func OverviewMarkdown(o tradetrackr.Overview, weekCount int, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Performance Summary")
	if weekCount == 0 {
		doc.PlainText("Add weeks and trades to see statistics.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Start value", tradetrackr.M(o.StartValue, currency).String()},
			{"End value", tradetrackr.M(o.EndValue, currency).String()},
			{"Total net gain", tradetrackr.M(o.TotalNetGain, currency).SignedString()},
			{"Average weekly gain", tradetrackr.M(o.AvgWeeklyGain, currency).SignedString()},
			{"Total trades", fmt.Sprintf("%d", o.TotalTrades)},
			{"Average per trade", tradetrackr.M(o.AvgPerTrade, currency).SignedString()},
		},
	})

	doc.H2("Best and Worst")
	doc.Table(md.TableSet{
		Header: []string{"", "Week", "Net Gain"},
		Rows: [][]string{
			{"Best", o.BestWeek.StartDate.String(), tradetrackr.M(o.BestWeek.NetGain, currency).SignedString()},
			{"Worst", o.WorstWeek.StartDate.String(), tradetrackr.M(o.WorstWeek.NetGain, currency).SignedString()},
		},
	})

	return doc.String()
}

// HistoryMarkdown renders the cross-week chart series as a table: per-week
// gain, running cumulative gain and the in-week percent change.
func HistoryMarkdown(points []tradetrackr.ChartPoint, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Performance History")
	if len(points) == 0 {
		doc.PlainText("No weeks recorded yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Week.String(),
			tradetrackr.M(p.WeekGain, currency).SignedString(),
			tradetrackr.M(p.CumulativeGain, currency).SignedString(),
			p.PercentChange.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Week", "Gain", "Cumulative", "Change"},
		Rows:      rows,
	})

	return doc.String()
}

// UsersMarkdown renders the participant list with their default ratios.
func UsersMarkdown(users []tradetrackr.User) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Participants")
	if len(users) == 0 {
		doc.PlainText("No participants yet.")
		return doc.String()
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Name, u.DefaultRatio.String()})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Name", "Default Ratio"},
		Rows:   rows,
	})
	return doc.String()
}

// WeeksMarkdown renders the week list; the current week is marked.
func WeeksMarkdown(summaries []tradetrackr.WeeklySummary, currentWeekID, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Weeks")
	if len(summaries) == 0 {
		doc.PlainText("No weeks recorded yet.")
		return doc.String()
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		marker := ""
		if s.WeekID == currentWeekID {
			marker = "current"
		}
		rows = append(rows, []string{
			s.WeekID,
			s.StartDate.String(),
			s.EndDate.String(),
			tradetrackr.M(s.NetGain, currency).SignedString(),
			fmt.Sprintf("%d", s.TradeCount),
			marker,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Start", "End", "Net Gain", "Trades", ""},
		Rows:   rows,
	})
	return doc.String()
}

// TradesMarkdown renders a week's trade list in insertion order.
func TradesMarkdown(trades []tradetrackr.Trade, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trades")
	if len(trades) == 0 {
		doc.PlainText("No trades recorded yet.")
		return doc.String()
	}
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			t.ID,
			t.Time().Format("2006-01-02 15:04"),
			tradetrackr.M(t.Amount, currency).SignedString(),
			t.Description,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Recorded", "Amount", "Description"},
		Rows:   rows,
	})
	return doc.String()
}
