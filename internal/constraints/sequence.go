package constraints

import (
	"fmt"

	"github.com/shiftsolver/core/internal/sctx"
)

// SequenceID is the registry id of the sequence constraint.
const SequenceID = "sequence"

// Sequence discourages consecutive periods in the same category
// (spec.md §4.C.7). Optional parameters.categories restricts which
// categories are scoped; the default is every distinct category present
// in ctx.ShiftTypes.
type Sequence struct{}

// ID implements Constraint.
func (Sequence) ID() string { return SequenceID }

// Apply implements Constraint.
func (Sequence) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	categories := stringSliceParam(cfg.Parameters, "categories")
	if len(categories) == 0 {
		seen := map[string]struct{}{}
		for _, s := range ctx.ShiftTypes {
			if s.Category == "" {
				continue
			}
			if _, ok := seen[s.Category]; !ok {
				seen[s.Category] = struct{}{}
				categories = append(categories, s.Category)
			}
		}
	}
	shiftsByCategory := map[string][]string{}
	for _, s := range ctx.ShiftTypes {
		shiftsByCategory[s.Category] = append(shiftsByCategory[s.Category], s.ID)
	}

	for _, w := range ctx.Workers {
		for p := 0; p+1 < ctx.NumPeriods; p++ {
			for _, c := range categories {
				var curBools, nextBools []boolVar
				for _, sid := range shiftsByCategory[c] {
					if x, ok := ctx.Vars.Assignment(w.ID, p, sid); ok {
						curBools = append(curBools, boolVar{v: x})
					}
					if x, ok := ctx.Vars.Assignment(w.ID, p+1, sid); ok {
						nextBools = append(nextBools, boolVar{v: x})
					}
				}
				if len(curBools) == 0 || len(nextBools) == 0 {
					continue
				}
				inCurrent := reifyOr(ctx.Model, toBools(curBools))
				inNext := reifyOr(ctx.Model, toBools(nextBools))
				violation := reifyAnd(ctx.Model, inCurrent, inNext)
				name := fmt.Sprintf("sequence:%s:%d:%s", w.ID, p, c)
				result.addViolation(name, violation, cfg.eventPriority())
			}
		}
	}
	return result, nil
}
