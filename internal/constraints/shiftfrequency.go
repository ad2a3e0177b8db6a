package constraints

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/sctx"
)

// ShiftFrequencyID is the registry id of the shift-frequency-requirement
// constraint.
const ShiftFrequencyID = "shift_frequency_requirement"

// ShiftFrequency enforces each domain.ShiftFrequencyRequirement: in every
// sliding window of min(W, N) consecutive periods, the worker must have at
// least one assignment from the requirement's shift-type set
// (spec.md §4.C.9, property P6). Hard or soft per cfg.IsHard. If no
// assignment variables exist for the set in a window (the worker is
// restricted from every shift type in the set), the hard posture posts an
// unsatisfiable constraint directly; the soft posture records a
// constant-true violation.
type ShiftFrequency struct{}

// ID implements Constraint.
func (ShiftFrequency) ID() string { return ShiftFrequencyID }

// Apply implements Constraint.
func (ShiftFrequency) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}

	for ri, req := range ctx.ShiftFrequencyRequirements {
		window := req.MaxPeriodsBetween
		if window > ctx.NumPeriods {
			window = ctx.NumPeriods
		}
		if window < 1 {
			continue
		}
		for start := 0; start+window <= ctx.NumPeriods; start++ {
			var bools []boolVar
			for p := start; p < start+window; p++ {
				for sid := range req.ShiftTypes {
					if x, ok := ctx.Vars.Assignment(req.WorkerID, p, sid); ok {
						bools = append(bools, boolVar{v: x})
					}
				}
			}
			if cfg.IsHard {
				con := ctx.Model.NewConstraint(mip.GreaterThanOrEqual, 1)
				for _, b := range bools {
					con.NewTerm(1, b.v)
				}
				continue
			}
			var violation mip.Bool
			if len(bools) == 0 {
				violation = ctx.Model.NewBool()
				pinTrue(ctx.Model, violation)
			} else {
				has := reifyOr(ctx.Model, toBools(bools))
				violation = reifyComplement(ctx.Model, has)
			}
			name := fmt.Sprintf("shift_frequency:%d:%d", ri, start)
			result.addViolation(name, violation, cfg.eventPriority())
		}
	}
	return result, nil
}
