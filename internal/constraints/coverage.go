package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/sctx"
)

// CoverageID is the registry id of the coverage constraint.
const CoverageID = "coverage"

// Coverage posts, for every (period, shift type):
//
//	Sum_w x[w,p,s] >= s.workers_required
//
// It is always hard: per spec.md §4.C.1 it has no soft posture. When a
// shift type's applicable_days excludes every day of a period, coverage is
// posted as an equality to 0 instead of a lower bound, pinning the shift
// type off for that period.
type Coverage struct{}

// ID implements Constraint.
func (Coverage) ID() string { return CoverageID }

// Apply implements Constraint.
func (Coverage) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}

	for _, s := range ctx.ShiftTypes {
		for p := 0; p < ctx.NumPeriods; p++ {
			active := shiftActiveInPeriod(s, ctx, p)

			var con mip.Constraint
			if active {
				con = ctx.Model.NewConstraint(mip.GreaterThanOrEqual, float64(s.WorkersRequired))
			} else {
				con = ctx.Model.NewConstraint(mip.Equal, 0)
			}
			for _, w := range ctx.Workers {
				x, ok := ctx.Vars.Assignment(w.ID, p, s.ID)
				if !ok {
					continue
				}
				con.NewTerm(1, x)
			}
		}
	}
	return result, nil
}

// shiftActiveInPeriod reports whether s can be worked at all in period p.
// Multi-day periods are treated as always active per spec.md §9 (day
// granularity only matters for applicable_days when periods are
// day-granular); for a single-day period, applicable_days is consulted
// against that day's weekday.
func shiftActiveInPeriod(s interface {
	AppliesOnDay(int) bool
}, ctx sctx.Context, periodIndex int) bool {
	period := ctx.Periods[periodIndex]
	isDayGranular := period.End.Equal(period.Start)
	if !isDayGranular {
		return true
	}
	weekday := int(period.Start.Weekday())
	// time.Weekday: Sunday=0..Saturday=6; spec.md uses 0=Monday.
	mondayIndexed := (weekday + 6) % 7
	return s.AppliesOnDay(mondayIndexed)
}
