package constraints

import (
	"fmt"

	"github.com/shiftsolver/core/internal/sctx"
)

// MaxAbsenceID is the registry id of the max-absence constraint.
const MaxAbsenceID = "max_absence"

// MaxAbsence bounds consecutive periods of zero assignments per worker.
// It mirrors Frequency's sliding-window reification, but the predicate is
// "at least one assignment of any shift type" rather than a filtered set
// (spec.md §4.C.8). Parameter: max_periods_between (window size W).
type MaxAbsence struct{}

// ID implements Constraint.
func (MaxAbsence) ID() string { return MaxAbsenceID }

// Apply implements Constraint.
func (MaxAbsence) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	window := intParam(cfg.Parameters, "max_periods_between", 0)
	if window < 1 {
		return result, nil
	}
	if window > ctx.NumPeriods {
		window = ctx.NumPeriods
	}

	for _, w := range ctx.Workers {
		for start := 0; start+window <= ctx.NumPeriods; start++ {
			var bools []boolVar
			for p := start; p < start+window; p++ {
				for _, s := range ctx.ShiftTypes {
					if x, ok := ctx.Vars.Assignment(w.ID, p, s.ID); ok {
						bools = append(bools, boolVar{v: x})
					}
				}
			}
			has := reifyOr(ctx.Model, toBools(bools))
			violation := reifyComplement(ctx.Model, has)
			name := fmt.Sprintf("max_absence:%s:%d", w.ID, start)
			result.addViolation(name, violation, cfg.eventPriority())
		}
	}
	return result, nil
}
