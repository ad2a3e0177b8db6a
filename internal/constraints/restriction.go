package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/sctx"
)

// RestrictionID is the registry id of the restriction constraint.
const RestrictionID = "restriction"

// Restriction posts x[w,p,s] = 0 for every worker w, shift type
// s in w.restricted_shifts, and period p. It is always hard. Restrictions
// naming unknown shift type ids are silently ignored, per spec.md §4.C.2.
type Restriction struct{}

// ID implements Constraint.
func (Restriction) ID() string { return RestrictionID }

// Apply implements Constraint.
func (Restriction) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	shiftTypes := ctx.ShiftTypesByID()
	for _, w := range ctx.Workers {
		for shiftTypeID := range w.RestrictedShifts {
			if _, known := shiftTypes[shiftTypeID]; !known {
				continue
			}
			for p := 0; p < ctx.NumPeriods; p++ {
				x, ok := ctx.Vars.Assignment(w.ID, p, shiftTypeID)
				if !ok {
					continue
				}
				con := ctx.Model.NewConstraint(mip.Equal, 0)
				con.NewTerm(1, x)
			}
		}
	}
	return result, nil
}
