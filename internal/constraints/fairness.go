package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/sctx"
)

// FairnessID is the registry id of the fairness constraint.
const FairnessID = "fairness"

// SpreadViolationName is the fixed key Fairness uses for its single
// violation indicator (there is only ever one spread per run, unlike the
// per-event violations of the other soft constraints).
const SpreadViolationName = "spread"

// Fairness balances undesirable load — or, when parameters.categories is a
// nonempty list, load restricted to shift types whose category is in that
// list — across workers. It introduces max_T/min_T bounding variables and
// records spread = max_T - min_T as the single violation indicator
// (spec.md §4.C.4). With <= 1 worker, Fairness contributes nothing
// (property B3).
//
// Preserved quirk (spec.md §9): an explicit empty categories list silently
// falls back to is_undesirable, exactly as the original behaves; a future
// revision should probably reject this instead of guessing.
type Fairness struct{}

// ID implements Constraint.
func (Fairness) ID() string { return FairnessID }

// Apply implements Constraint.
func (Fairness) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled || len(ctx.Workers) <= 1 {
		return result, nil
	}

	categories := stringSliceParam(cfg.Parameters, "categories")
	useCategories := len(categories) > 0
	categorySet := toSet(categories)

	totals := make([]mip.Float, 0, len(ctx.Workers))
	for _, w := range ctx.Workers {
		total := ctx.Model.NewFloat(0, float64(ctx.NumPeriods))
		link := ctx.Model.NewConstraint(mip.Equal, 0)
		link.NewTerm(-1, total)
		for p := 0; p < ctx.NumPeriods; p++ {
			for _, s := range ctx.ShiftTypes {
				include := s.IsUndesirable
				if useCategories {
					_, include = categorySet[s.Category]
				}
				if !include {
					continue
				}
				x, ok := ctx.Vars.Assignment(w.ID, p, s.ID)
				if !ok {
					continue
				}
				link.NewTerm(1, x)
			}
		}
		totals = append(totals, total)
	}

	maxT := ctx.Model.NewFloat(0, float64(ctx.NumPeriods))
	minT := ctx.Model.NewFloat(0, float64(ctx.NumPeriods))
	for _, total := range totals {
		upper := ctx.Model.NewConstraint(mip.GreaterThanOrEqual, 0)
		upper.NewTerm(1, maxT)
		upper.NewTerm(-1, total)

		lower := ctx.Model.NewConstraint(mip.LessThanOrEqual, 0)
		lower.NewTerm(1, minT)
		lower.NewTerm(-1, total)
	}

	spread := ctx.Model.NewFloat(0, float64(ctx.NumPeriods))
	link := ctx.Model.NewConstraint(mip.Equal, 0)
	link.NewTerm(1, spread)
	link.NewTerm(-1, maxT)
	link.NewTerm(1, minT)

	result.addViolation(SpreadViolationName, spread, 1)
	return result, nil
}

func stringSliceParam(params map[string]any, key string) []string {
	raw, ok := params[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
