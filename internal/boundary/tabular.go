package boundary

import (
	"strconv"
	"strings"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/shifterr"
)

// WorkerRow is one row of the worker table (spec.md §6.2).
type WorkerRow struct {
	ID               string
	Name             string
	WorkerType       string
	RestrictedShifts string
	PreferredShifts  string
}

// AvailabilityRow is one row of the availability table.
type AvailabilityRow struct {
	WorkerID         string
	StartDate        string
	EndDate          string
	AvailabilityType string
	ShiftTypeID      string
}

// RequestRow is one row of the requests table.
type RequestRow struct {
	WorkerID    string
	StartDate   string
	EndDate     string
	RequestType string
	ShiftTypeID string
	Priority    string // optional; blank means priority 1
}

// LoadResult bundles what a tabular loader produced: the rows that parsed
// cleanly, one BoundaryError per bad row (never silently dropped, per
// spec.md §7), and deduplicated ambiguous-date warnings.
type LoadResult[T any] struct {
	Rows     []T
	Errors   []*shifterr.Error
	Warnings []DateWarning
}

// splitList splits a comma-separated cell into a trimmed, blank-filtered
// list; an empty or whitespace-only cell yields an empty slice, per
// spec.md §6.2.
func splitList(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// LoadWorkers converts worker rows into domain.Worker values, accumulating
// a BoundaryError per invalid row rather than aborting the whole load.
func LoadWorkers(rows []WorkerRow) LoadResult[domain.Worker] {
	var out LoadResult[domain.Worker]
	for i, row := range rows {
		if row.ID == "" || row.Name == "" {
			out.Errors = append(out.Errors, shifterr.Boundary("workers", i+1, "id and name are required"))
			continue
		}
		w, err := domain.NewWorker(row.ID, row.Name, splitList(row.RestrictedShifts), splitList(row.PreferredShifts))
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("workers", i+1, "%s", err.Error()))
			continue
		}
		w.WorkerType = row.WorkerType
		out.Rows = append(out.Rows, w)
	}
	return out
}

// LoadAvailabilities converts availability rows, parsing dates through a
// shared DateParser so ambiguous-literal warnings dedupe across the whole
// table, per the tabular loader contract supplement.
func LoadAvailabilities(rows []AvailabilityRow, dateParser *DateParser) LoadResult[domain.Availability] {
	var out LoadResult[domain.Availability]
	for i, row := range rows {
		if row.WorkerID == "" {
			out.Errors = append(out.Errors, shifterr.Boundary("availability", i+1, "worker_id is required"))
			continue
		}
		start, warn, err := dateParser.Parse(row.StartDate)
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("availability", i+1, "invalid start_date: %s", err.Error()))
			continue
		}
		if warn != nil {
			out.Warnings = append(out.Warnings, *warn)
		}
		end, warn, err := dateParser.Parse(row.EndDate)
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("availability", i+1, "invalid end_date: %s", err.Error()))
			continue
		}
		if warn != nil {
			out.Warnings = append(out.Warnings, *warn)
		}
		a, err := domain.NewAvailability(row.WorkerID, start, end, domain.AvailabilityType(row.AvailabilityType), row.ShiftTypeID)
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("availability", i+1, "%s", err.Error()))
			continue
		}
		out.Rows = append(out.Rows, a)
	}
	return out
}

// LoadRequests converts request rows, rejecting non-positive or fractional
// priority values with the offending row number, per spec.md §6.2.
func LoadRequests(rows []RequestRow, dateParser *DateParser) LoadResult[domain.SchedulingRequest] {
	var out LoadResult[domain.SchedulingRequest]
	for i, row := range rows {
		priority := 1
		if strings.TrimSpace(row.Priority) != "" {
			p, err := strconv.Atoi(strings.TrimSpace(row.Priority))
			if err != nil || p < 1 {
				out.Errors = append(out.Errors, shifterr.Boundary("requests", i+1, "priority must be a positive integer, got %q", row.Priority))
				continue
			}
			priority = p
		}
		start, warn, err := dateParser.Parse(row.StartDate)
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("requests", i+1, "invalid start_date: %s", err.Error()))
			continue
		}
		if warn != nil {
			out.Warnings = append(out.Warnings, *warn)
		}
		end, warn, err := dateParser.Parse(row.EndDate)
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("requests", i+1, "invalid end_date: %s", err.Error()))
			continue
		}
		if warn != nil {
			out.Warnings = append(out.Warnings, *warn)
		}
		r, err := domain.NewSchedulingRequest(row.WorkerID, start, end, domain.RequestKind(row.RequestType), row.ShiftTypeID, priority, nil)
		if err != nil {
			out.Errors = append(out.Errors, shifterr.Boundary("requests", i+1, "%s", err.Error()))
			continue
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

// SampleSpec is the generator-shape contract of spec.md's supplemented
// sample-data feature: counts plus a seed. The generator itself is out of
// scope; this type only names the shape a future generator would populate.
type SampleSpec struct {
	NumWorkers    int
	NumShiftTypes int
	NumPeriods    int
	Seed          int64
}
