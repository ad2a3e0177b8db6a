package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/sctx"
)

// AvailabilityID is the registry id of the availability constraint.
const AvailabilityID = "availability"

// Availability posts x[w,p,t] = 0 for every "unavailable" entry whose date
// range overlaps period p, for all shift types t (entry with no
// shift_type_id) or only t = entry.shift_type_id. Always hard; "preferred"
// and "required" entries are not enforced here (spec.md §3, §9 open
// question (i)) — they are carried through untouched for the validator's
// statistics.
type Availability struct{}

// ID implements Constraint.
func (Availability) ID() string { return AvailabilityID }

// Apply implements Constraint.
func (Availability) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	for _, a := range ctx.Availabilities {
		if a.Type != domain.Unavailable {
			continue
		}
		for _, p := range domain.OverlappingPeriods(ctx.Periods, a.Start, a.End) {
			for _, s := range ctx.ShiftTypes {
				if !a.AppliesToShift(s.ID) {
					continue
				}
				x, ok := ctx.Vars.Assignment(a.WorkerID, p, s.ID)
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
