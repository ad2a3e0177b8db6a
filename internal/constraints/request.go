package constraints

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/sctx"
)

// RequestID is the registry id of the request constraint.
const RequestID = "request"

// Request honors per-worker scheduling asks (spec.md §4.C.6). Soft by
// default; a request may be pinned hard either by the request itself
// (SchedulingRequest.IsHard) or by the constraint's own configuration
// (cfg.IsHard) when the request leaves it unset. Requests naming an
// unknown worker or shift type are silently skipped (they cannot resolve
// to any assignment variable).
type Request struct{}

// ID implements Constraint.
func (Request) ID() string { return RequestID }

// Apply implements Constraint.
func (r Request) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	workers := ctx.WorkersByID()
	shiftTypes := ctx.ShiftTypesByID()

	for i, req := range ctx.Requests {
		if _, ok := workers[req.WorkerID]; !ok {
			continue
		}
		if _, ok := shiftTypes[req.ShiftTypeID]; !ok {
			continue
		}
		hard := cfg.IsHard
		if req.IsHard != nil {
			hard = *req.IsHard
		}
		desired := req.DesiredValue()

		for _, p := range domain.OverlappingPeriods(ctx.Periods, req.Start, req.End) {
			x, ok := ctx.Vars.Assignment(req.WorkerID, p, req.ShiftTypeID)
			if !ok {
				continue
			}
			if hard {
				con := ctx.Model.NewConstraint(mip.Equal, desired)
				con.NewTerm(1, x)
				continue
			}
			var violation mip.Bool
			if desired == 1 {
				violation = reifyComplement(ctx.Model, x)
			} else {
				violation = x
			}
			name := fmt.Sprintf("request:%d:%d", i, p)
			result.addViolation(name, violation, req.Priority)
		}
	}
	return result, nil
}
