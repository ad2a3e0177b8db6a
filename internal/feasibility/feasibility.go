// Package feasibility implements the cheap, pre-solve sanity pass of
// spec.md §4.F: for each (period, shift type) it computes the workers not
// hard-excluded by restriction or unavailability and flags a coverage gap
// before the solver is ever invoked.
package feasibility

import (
	"fmt"

	"github.com/shiftsolver/core/internal/domain"
)

// Issue describes one infeasibility finding.
type Issue struct {
	PeriodIndex   int
	ShiftTypeID   string
	Required      int
	Available     int
	Message       string
}

// Result is the checker's verdict.
type Result struct {
	Feasible bool
	Issues   []Issue
}

// Input bundles everything the checker needs; it mirrors the
// orchestrator's inputs minus solver parameters.
type Input struct {
	Workers       []domain.Worker
	ShiftTypes    []domain.ShiftType
	Periods       []domain.Period
	Availabilities []domain.Availability
	Requests      []domain.SchedulingRequest
}

// Check runs the pre-solve pass described in spec.md §4.F.
func Check(in Input) Result {
	result := Result{Feasible: true}

	excludedByUnavailability := buildUnavailabilityIndex(in.Availabilities, in.Periods)
	hardNegative := buildHardNegativeIndex(in.Requests, in.Periods)
	hardPositive := buildHardPositiveIndex(in.Requests, in.Periods)

	for p := range in.Periods {
		for _, s := range in.ShiftTypes {
			if !shiftActiveInPeriod(s, in.Periods[p]) {
				continue
			}
			available := 0
			for _, w := range in.Workers {
				excluded := w.IsRestrictedFrom(s.ID) ||
					excludedByUnavailability[unavailKey{w.ID, p, s.ID}] ||
					excludedByUnavailability[unavailKey{w.ID, p, ""}] ||
					hardNegative[hardReqKey{w.ID, p, s.ID}]

				if hardPositive[hardReqKey{w.ID, p, s.ID}] && excluded {
					result.Feasible = false
					result.Issues = append(result.Issues, Issue{
						PeriodIndex: p,
						ShiftTypeID: s.ID,
						Required:    s.WorkersRequired,
						Available:   available,
						Message: fmt.Sprintf(
							"period %d shift %s: hard positive request for worker %s conflicts with a hard exclusion",
							p, s.ID, w.ID,
						),
					})
				}
				if excluded {
					continue
				}
				available++
			}
			if available < s.WorkersRequired {
				result.Feasible = false
				result.Issues = append(result.Issues, Issue{
					PeriodIndex: p,
					ShiftTypeID: s.ID,
					Required:    s.WorkersRequired,
					Available:   available,
					Message: fmt.Sprintf(
						"period %d shift %s: coverage gap (%d available < %d required)",
						p, s.ID, available, s.WorkersRequired,
					),
				})
			}
		}
	}
	return result
}

type unavailKey struct {
	workerID    string
	period      int
	shiftTypeID string
}

// buildUnavailabilityIndex keys on shiftTypeID == "" for entries that
// prohibit every shift type, mirroring the zero-value check callers use.
func buildUnavailabilityIndex(avail []domain.Availability, periods []domain.Period) map[unavailKey]bool {
	out := map[unavailKey]bool{}
	for _, a := range avail {
		if a.Type != domain.Unavailable {
			continue
		}
		for _, p := range domain.OverlappingPeriods(periods, a.Start, a.End) {
			out[unavailKey{a.WorkerID, p, a.ShiftTypeID}] = true
		}
	}
	return out
}

type hardReqKey struct {
	workerID    string
	period      int
	shiftTypeID string
}

func buildHardNegativeIndex(requests []domain.SchedulingRequest, periods []domain.Period) map[hardReqKey]bool {
	out := map[hardReqKey]bool{}
	for _, r := range requests {
		if r.Kind != domain.Negative || r.IsHard == nil || !*r.IsHard {
			continue
		}
		for _, p := range domain.OverlappingPeriods(periods, r.Start, r.End) {
			out[hardReqKey{r.WorkerID, p, r.ShiftTypeID}] = true
		}
	}
	return out
}

func buildHardPositiveIndex(requests []domain.SchedulingRequest, periods []domain.Period) map[hardReqKey]bool {
	out := map[hardReqKey]bool{}
	for _, r := range requests {
		if r.Kind != domain.Positive || r.IsHard == nil || !*r.IsHard {
			continue
		}
		for _, p := range domain.OverlappingPeriods(periods, r.Start, r.End) {
			out[hardReqKey{r.WorkerID, p, r.ShiftTypeID}] = true
		}
	}
	return out
}

func shiftActiveInPeriod(s domain.ShiftType, p domain.Period) bool {
	if p.End.Equal(p.Start) {
		weekday := (int(p.Start.Weekday()) + 6) % 7
		return s.AppliesOnDay(weekday)
	}
	return true
}
