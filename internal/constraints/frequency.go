package constraints

import (
	"fmt"

	"github.com/shiftsolver/core/internal/sctx"
)

// FrequencyID is the registry id of the frequency constraint.
const FrequencyID = "frequency"

// Frequency discourages a worker going too long without working one of a
// filtered set of shift types. Parameters: max_periods_between (window
// size W, required, int >= 1) and an optional shift_types filter (defaults
// to all shift types). For each worker and each sliding window of W
// consecutive periods, it reifies has = OR(assignments in window) and
// records violation v = NOT has (spec.md §4.C.5).
type Frequency struct{}

// ID implements Constraint.
func (Frequency) ID() string { return FrequencyID }

// Apply implements Constraint.
func (Frequency) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	window := intParam(cfg.Parameters, "max_periods_between", 0)
	if window < 1 {
		return result, nil
	}
	filter := stringSliceParam(cfg.Parameters, "shift_types")
	shiftTypeIDs := filter
	if len(shiftTypeIDs) == 0 {
		for _, s := range ctx.ShiftTypes {
			shiftTypeIDs = append(shiftTypeIDs, s.ID)
		}
	}

	if window > ctx.NumPeriods {
		window = ctx.NumPeriods
	}
	if window < 1 {
		return result, nil
	}

	for _, w := range ctx.Workers {
		for start := 0; start+window <= ctx.NumPeriods; start++ {
			var bools []boolVar
			for p := start; p < start+window; p++ {
				for _, sid := range shiftTypeIDs {
					x, ok := ctx.Vars.Assignment(w.ID, p, sid)
					if !ok {
						continue
					}
					bools = append(bools, boolVar{v: x})
				}
			}
			has := reifyOr(ctx.Model, toBools(bools))
			violation := reifyComplement(ctx.Model, has)
			name := fmt.Sprintf("frequency:%s:%d", w.ID, start)
			result.addViolation(name, violation, cfg.eventPriority())
		}
	}
	return result, nil
}

func (cfg Config) eventPriority() int {
	if p, ok := cfg.Parameters["priority"]; ok {
		if pi, ok := p.(int); ok && pi > 0 {
			return pi
		}
	}
	return 1
}
