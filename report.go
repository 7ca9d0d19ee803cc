package tradetrackr

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// reportHeader is the column layout of the tabular report, one row per week.
var reportHeader = []string{"Week", "Start Date", "End Date", "Start Value", "End Value", "Net Gain", "Trade Count"}

// weekLabelFormat is the human label of a week in reports, e.g. 08/25/2025.
const weekLabelFormat = "01/02/2006"

// WriteReport writes the weekly summaries to 'w' as a CSV report with a
// header row. Summaries are written in the order given; callers typically
// pass them date-sorted.
func WriteReport(w io.Writer, summaries []WeeklySummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("cannot write report header: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			s.StartDate.Format(weekLabelFormat),
			s.StartDate.String(),
			s.EndDate.String(),
			s.StartValue.String(),
			s.EndValue.String(),
			s.NetGain.String(),
			strconv.Itoa(s.TradeCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write report row for week %q: %w", s.WeekID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
