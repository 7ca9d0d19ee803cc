package tradetrackr

import (
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	b := newTestBook(t)
	w1 := addWeek(t, b, "2025-08-18", "2025-08-24", "1000")
	addWeek(t, b, "2025-08-25", "2025-08-31", "1075")
	addTrade(t, b, w1, "100", "")
	addTrade(t, b, w1, "-25", "")

	var sb strings.Builder
	if err := WriteReport(&sb, b.Summaries()); err != nil {
		t.Fatalf("WriteReport() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), sb.String())
	}
	if lines[0] != "Week,Start Date,End Date,Start Value,End Value,Net Gain,Trade Count" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "08/18/2025,2025-08-18,2025-08-24,1000,1075,75,2" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[2] != "08/25/2025,2025-08-25,2025-08-31,1075,1075,0,0" {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestWriteReportEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteReport(&sb, nil); err != nil {
		t.Fatalf("WriteReport() failed: %v", err)
	}
	if got := strings.TrimRight(sb.String(), "\n"); !strings.HasPrefix(got, "Week,") || strings.Contains(got, "\n") {
		t.Errorf("empty report must still carry the header row, got %q", got)
	}
}
