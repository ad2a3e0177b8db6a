// Package extractor reads the solver's value oracle and reconstructs the
// domain Schedule plus per-worker statistics (spec.md §4.H).
package extractor

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/variables"
)

// ValueOracle is the subset of mip.Solution the extractor needs; narrowing
// the dependency keeps this package testable with a fake.
type ValueOracle interface {
	Value(v mip.Bool) float64
}

// Extract rebuilds a domain.Schedule from a solved model's variable
// assignment, one ShiftInstance per (w,p,s) with x[w,p,s] >= 0.5 (per
// spec.md §4.H — the 0.5 threshold tolerates solver floating-point slack
// on a variable that is constrained to {0,1}).
func Extract(scheduleID string, workers []domain.Worker, shiftTypes []domain.ShiftType, periods []domain.Period, vars *variables.Variables, solution ValueOracle) domain.Schedule {
	periodAssignments := make([]domain.PeriodAssignment, len(periods))
	stats := make(map[string]domain.WorkerStatistics, len(workers))
	for _, w := range workers {
		stats[w.ID] = domain.WorkerStatistics{PerShiftType: map[string]int{}}
	}

	for pi, period := range periods {
		pa := domain.PeriodAssignment{
			Index:       period.Index,
			Start:       period.Start,
			End:         period.End,
			Assignments: map[string][]domain.ShiftInstance{},
		}
		for _, w := range workers {
			periodHasAssignment := false
			for _, s := range shiftTypes {
				x, ok := vars.Assignment(w.ID, pi, s.ID)
				if !ok || solution.Value(x) < 0.5 {
					continue
				}
				inst := domain.ShiftInstance{
					ShiftTypeID: s.ID,
					PeriodIndex: period.Index,
					Date:        period.Start,
					WorkerID:    w.ID,
				}
				pa.Assignments[w.ID] = append(pa.Assignments[w.ID], inst)

				st := stats[w.ID]
				st.TotalShifts++
				st.PerShiftType[s.ID]++
				stats[w.ID] = st
				periodHasAssignment = true
			}
			if periodHasAssignment {
				st := stats[w.ID]
				st.PeriodsWorked++
				stats[w.ID] = st
			}
		}
		periodAssignments[pi] = pa
	}

	var start, end domain.Period
	if len(periods) > 0 {
		start = periods[0]
		end = periods[len(periods)-1]
	}

	return domain.Schedule{
		ScheduleID: scheduleID,
		Start:      start.Start,
		End:        end.End,
		PeriodType: domain.DerivePeriodType(periods),
		Periods:    periodAssignments,
		Workers:    workers,
		ShiftTypes: shiftTypes,
		Statistics: stats,
	}
}
