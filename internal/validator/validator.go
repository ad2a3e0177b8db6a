// Package validator independently re-verifies every enforced invariant
// against an extracted Schedule and reports fairness and fulfillment
// statistics (spec.md §4.I). It never trusts the solver: every check here
// re-derives truth from the Schedule and the original inputs.
package validator

import (
	"fmt"
	"math"
	"time"

	"github.com/shiftsolver/core/internal/domain"
)

// Violation is one invariant breach the validator independently found.
type Violation struct {
	Type    string
	Message string
}

// FairnessStats summarizes the spread of per-worker assignment counts.
type FairnessStats struct {
	Mean              float64
	PopulationStdDev  float64
	Min               int
	Max               int
	UndesirableMean   float64
}

// RequestStats summarizes request fulfillment across the schedule.
type RequestStats struct {
	Total      int
	Fulfilled  int
	Violated   int
	Rate       float64
}

// Statistics bundles everything the validator computes beyond pass/fail.
type Statistics struct {
	Fairness FairnessStats
	Requests RequestStats
}

// Result is the validator's full report.
type Result struct {
	IsValid    bool
	Violations []Violation
	Warnings   []string
	Statistics Statistics
}

// Input bundles the schedule and the original inputs needed to
// independently recompute every invariant.
type Input struct {
	Schedule       domain.Schedule
	Workers        []domain.Worker
	ShiftTypes     []domain.ShiftType
	Periods        []domain.Period
	Availabilities []domain.Availability
	Requests       []domain.SchedulingRequest
}

// Validate re-verifies invariants P1-P3 of spec.md §3/§8 against the
// extracted schedule and computes fairness + request fulfillment stats.
func Validate(in Input) Result {
	result := Result{IsValid: true}

	result.Violations = append(result.Violations, checkCoverage(in)...)
	result.Violations = append(result.Violations, checkRestriction(in)...)
	result.Violations = append(result.Violations, checkAvailability(in)...)
	if len(result.Violations) > 0 {
		result.IsValid = false
	}

	result.Statistics.Fairness = computeFairness(in)
	result.Statistics.Requests = computeRequestStats(in)

	return result
}

// checkCoverage re-verifies P1: for every (p,s), Sum_w x[w,p,s] >=
// s.workers_required.
func checkCoverage(in Input) []Violation {
	var out []Violation
	for pi, period := range in.Schedule.Periods {
		counts := map[string]int{}
		for _, instances := range period.Assignments {
			for _, inst := range instances {
				counts[inst.ShiftTypeID]++
			}
		}
		for _, s := range in.ShiftTypes {
			if !shiftActiveInPeriod(s, in.Periods[pi]) {
				continue
			}
			if counts[s.ID] < s.WorkersRequired {
				out = append(out, Violation{
					Type: "coverage",
					Message: fmt.Sprintf("period %d shift %s: %d assigned < %d required",
						pi, s.ID, counts[s.ID], s.WorkersRequired),
				})
			}
		}
	}
	return out
}

// checkRestriction re-verifies P2: no worker is assigned a shift type in
// their restricted_shifts.
func checkRestriction(in Input) []Violation {
	var out []Violation
	for pi, period := range in.Schedule.Periods {
		for workerID, instances := range period.Assignments {
			w, ok := domain.FindWorker(in.Workers, workerID)
			if !ok {
				continue
			}
			for _, inst := range instances {
				if w.IsRestrictedFrom(inst.ShiftTypeID) {
					out = append(out, Violation{
						Type: "restriction",
						Message: fmt.Sprintf("period %d: worker %s assigned restricted shift %s",
							pi, workerID, inst.ShiftTypeID),
					})
				}
			}
		}
	}
	return out
}

// checkAvailability re-verifies P3: no worker is assigned during a period
// their unavailability covers.
func checkAvailability(in Input) []Violation {
	var out []Violation
	for _, a := range in.Availabilities {
		if a.Type != domain.Unavailable {
			continue
		}
		for _, pi := range domain.OverlappingPeriods(in.Periods, a.Start, a.End) {
			if pi >= len(in.Schedule.Periods) {
				continue
			}
			for _, inst := range in.Schedule.Periods[pi].Assignments[a.WorkerID] {
				if a.AppliesToShift(inst.ShiftTypeID) {
					out = append(out, Violation{
						Type: "availability",
						Message: fmt.Sprintf("period %d: worker %s assigned shift %s during unavailability",
							pi, a.WorkerID, inst.ShiftTypeID),
					})
				}
			}
		}
	}
	return out
}

// computeFairness computes mean/population-stddev/min/max of per-worker
// total assignment counts, and the mean of per-worker undesirable counts.
func computeFairness(in Input) FairnessStats {
	if len(in.Workers) == 0 {
		return FairnessStats{}
	}
	undesirable := map[string]struct{}{}
	for _, s := range in.ShiftTypes {
		if s.IsUndesirable {
			undesirable[s.ID] = struct{}{}
		}
	}

	totals := make([]int, 0, len(in.Workers))
	undesirableTotals := make([]int, 0, len(in.Workers))
	for _, w := range in.Workers {
		st := in.Schedule.Statistics[w.ID]
		totals = append(totals, st.TotalShifts)
		undesirableCount := 0
		for sid, count := range st.PerShiftType {
			if _, ok := undesirable[sid]; ok {
				undesirableCount += count
			}
		}
		undesirableTotals = append(undesirableTotals, undesirableCount)
	}

	sum, min, max := 0, totals[0], totals[0]
	for _, t := range totals {
		sum += t
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	mean := float64(sum) / float64(len(totals))

	var sqDiffSum float64
	for _, t := range totals {
		d := float64(t) - mean
		sqDiffSum += d * d
	}
	stdDev := math.Sqrt(sqDiffSum / float64(len(totals)))

	uSum := 0
	for _, u := range undesirableTotals {
		uSum += u
	}
	uMean := float64(uSum) / float64(len(undesirableTotals))

	return FairnessStats{
		Mean:             mean,
		PopulationStdDev: stdDev,
		Min:              min,
		Max:              max,
		UndesirableMean:  uMean,
	}
}

// computeRequestStats reports fulfilled/violated counts across every
// calendar date in every request's range, defaulting to a 1.0 rate with no
// requests (spec.md §4.I). Dates are counted individually rather than by
// period so a request spanning a week/biweek/month-granular period is
// weighted by the number of days it actually covers, matching the original
// validator's day-by-day walk.
func computeRequestStats(in Input) RequestStats {
	stats := RequestStats{Rate: 1.0}
	for _, r := range in.Requests {
		for date := r.Start; !date.After(r.End); date = date.AddDate(0, 0, 1) {
			pi, ok := periodContaining(in.Periods, date)
			if !ok {
				continue
			}
			stats.Total++
			assigned := in.Schedule.AssignmentValue(r.WorkerID, pi, r.ShiftTypeID)
			fulfilled := (r.Kind == domain.Positive && assigned) || (r.Kind == domain.Negative && !assigned)
			if fulfilled {
				stats.Fulfilled++
			} else {
				stats.Violated++
			}
		}
	}
	if stats.Total > 0 {
		stats.Rate = float64(stats.Fulfilled) / float64(stats.Total)
	}
	return stats
}

// periodContaining returns the index of the period whose inclusive range
// covers date, if any.
func periodContaining(periods []domain.Period, date time.Time) (int, bool) {
	for _, p := range periods {
		if !p.Start.After(date) && !p.End.Before(date) {
			return p.Index, true
		}
	}
	return 0, false
}

func shiftActiveInPeriod(s domain.ShiftType, p domain.Period) bool {
	if p.End.Equal(p.Start) {
		weekday := (int(p.Start.Weekday()) + 6) % 7
		return s.AppliesOnDay(weekday)
	}
	return true
}
