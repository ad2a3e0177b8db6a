package boundary

import "testing"

func TestSplitList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"a", []string{"a"}},
		{"a, b,c", []string{"a", "b", "c"}},
		{"a,, b", []string{"a", "b"}},
	}
	for _, c := range cases {
		got := splitList(c.in)
		if len(got) != len(c.want) {
			t.Errorf("splitList(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("splitList(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestLoadWorkersAccumulatesRowErrors(t *testing.T) {
	rows := []WorkerRow{
		{ID: "w1", Name: "Ann", RestrictedShifts: "night"},
		{ID: "", Name: "missing id"},
		{ID: "w2", Name: "Bo", RestrictedShifts: "night", PreferredShifts: "night"},
	}
	result := LoadWorkers(rows)
	if len(result.Rows) != 1 {
		t.Errorf("expected 1 clean row, got %d", len(result.Rows))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Row != 2 {
		t.Errorf("first error should be attributed to row 2, got %d", result.Errors[0].Row)
	}
}

func TestLoadAvailabilitiesSharesDateParserAcrossRows(t *testing.T) {
	dp := NewDateParser(DateAuto)
	rows := []AvailabilityRow{
		{WorkerID: "w1", StartDate: "03/05/2026", EndDate: "03/06/2026", AvailabilityType: "unavailable"},
		{WorkerID: "w2", StartDate: "03/05/2026", EndDate: "03/07/2026", AvailabilityType: "unavailable"},
	}
	result := LoadAvailabilities(rows, dp)
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 clean rows, got %d: %v", len(result.Rows), result.Errors)
	}
	// Three distinct ambiguous literals (03/05 appears twice): one warning each.
	if len(result.Warnings) != 3 {
		t.Errorf("the repeated ambiguous literal should warn only once, want 3 warnings total, got %d", len(result.Warnings))
	}
}

func TestLoadRequestsRejectsBadPriority(t *testing.T) {
	dp := NewDateParser(DateAuto)
	rows := []RequestRow{
		{WorkerID: "w1", StartDate: "2026-01-01", EndDate: "2026-01-01", RequestType: "positive", ShiftTypeID: "day", Priority: "0"},
		{WorkerID: "w1", StartDate: "2026-01-01", EndDate: "2026-01-01", RequestType: "positive", ShiftTypeID: "day", Priority: "abc"},
		{WorkerID: "w1", StartDate: "2026-01-01", EndDate: "2026-01-01", RequestType: "positive", ShiftTypeID: "day"},
	}
	result := LoadRequests(rows, dp)
	if len(result.Rows) != 1 {
		t.Errorf("expected 1 clean row (blank priority defaults to 1), got %d", len(result.Rows))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 priority errors, got %d: %v", len(result.Errors), result.Errors)
	}
}
