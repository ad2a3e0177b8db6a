package constraints

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/sctx"
)

// ShiftOrderID is the registry id of the shift-order-preference constraint.
const ShiftOrderID = "shift_order_preference"

// ShiftOrder implements spec.md §4.C.10: three trigger kinds crossed with
// two directions and two preferred kinds, optionally limited to a subset
// of workers. For every worker in scope and every adjacent period pair,
// it builds a trigger indicator and a preferred indicator and records
// violation v = trigger AND NOT preferred.
type ShiftOrder struct{}

// ID implements Constraint.
func (ShiftOrder) ID() string { return ShiftOrderID }

// Apply implements Constraint.
func (ShiftOrder) Apply(cfg Config, ctx sctx.Context) (*Result, error) {
	result := newResult()
	if !cfg.Enabled {
		return result, nil
	}
	shiftsByCategory := map[string][]string{}
	for _, s := range ctx.ShiftTypes {
		shiftsByCategory[s.Category] = append(shiftsByCategory[s.Category], s.ID)
	}
	restricted := map[string]map[string]struct{}{}
	for _, w := range ctx.Workers {
		restricted[w.ID] = w.RestrictedShifts
	}

	for _, rule := range ctx.ShiftOrderPreferences {
		for _, w := range ctx.Workers {
			if !rule.AppliesToWorker(w.ID) {
				continue
			}
			for n := 0; n < ctx.NumPeriods; n++ {
				var preferredPeriod int
				switch rule.Direction {
				case domain.DirectionAfter:
					preferredPeriod = n + 1
				case domain.DirectionBefore:
					preferredPeriod = n - 1
				default:
					continue
				}
				if preferredPeriod < 0 || preferredPeriod >= ctx.NumPeriods {
					continue
				}

				triggerVar, triggerConst, triggerOK := buildTrigger(ctx, w, rule, n, shiftsByCategory)
				if !triggerOK {
					continue
				}

				preferredVar, preferredConstFalse := buildPreferred(ctx, w, rule, preferredPeriod, shiftsByCategory, restricted[w.ID])

				violation := combineTriggerPreferred(ctx.Model, triggerVar, triggerConst, preferredVar, preferredConstFalse)
				if violation == nil {
					continue
				}
				name := fmt.Sprintf("shift_order:%s:%s:%d", rule.RuleID, w.ID, n)
				result.addViolation(name, violation, rule.Priority)
			}
		}
	}
	return result, nil
}

// buildTrigger returns (var, isConstantTrue, applicable). When applicable
// is false the rule instance contributes nothing (the trigger can never
// fire, e.g. a category with no member shift types).
func buildTrigger(ctx sctx.Context, w domain.Worker, rule domain.ShiftOrderPreference, period int, shiftsByCategory map[string][]string) (mip.Bool, bool, bool) {
	switch rule.Trigger {
	case domain.TriggerShiftType:
		x, ok := ctx.Vars.Assignment(w.ID, period, rule.TriggerValue)
		if !ok {
			return mip.Bool{}, false, false
		}
		return x, false, true
	case domain.TriggerCategory:
		var bools []boolVar
		for _, sid := range shiftsByCategory[rule.TriggerValue] {
			if x, ok := ctx.Vars.Assignment(w.ID, period, sid); ok {
				bools = append(bools, boolVar{v: x})
			}
		}
		if len(bools) == 0 {
			return mip.Bool{}, false, false
		}
		return reifyOr(ctx.Model, toBools(bools)), false, true
	case domain.TriggerUnavailability:
		for _, a := range ctx.Availabilities {
			if a.WorkerID != w.ID || a.Type != domain.Unavailable {
				continue
			}
			if !a.AppliesToShift("") {
				continue
			}
			for _, p := range domain.OverlappingPeriods(ctx.Periods, a.Start, a.End) {
				if p == period {
					return mip.Bool{}, true, true
				}
			}
		}
		return mip.Bool{}, false, false
	default:
		return mip.Bool{}, false, false
	}
}

// buildPreferred returns (var, isConstantFalse). A constant-false result
// means the preference can never be satisfied (restricted shift, or an
// empty category), so the combiner treats any trigger as a guaranteed
// violation.
func buildPreferred(ctx sctx.Context, w domain.Worker, rule domain.ShiftOrderPreference, period int, shiftsByCategory map[string][]string, restricted map[string]struct{}) (mip.Bool, bool) {
	switch rule.Preferred {
	case domain.PreferredShiftType:
		if _, isRestricted := restricted[rule.PreferredValue]; isRestricted {
			return mip.Bool{}, true
		}
		x, ok := ctx.Vars.Assignment(w.ID, period, rule.PreferredValue)
		if !ok {
			return mip.Bool{}, true
		}
		return x, false
	case domain.PreferredCategory:
		var bools []boolVar
		for _, sid := range shiftsByCategory[rule.PreferredValue] {
			if _, isRestricted := restricted[sid]; isRestricted {
				continue
			}
			if x, ok := ctx.Vars.Assignment(w.ID, period, sid); ok {
				bools = append(bools, boolVar{v: x})
			}
		}
		if len(bools) == 0 {
			return mip.Bool{}, true
		}
		return reifyOr(ctx.Model, toBools(bools)), false
	default:
		return mip.Bool{}, true
	}
}

func combineTriggerPreferred(m mip.Model, triggerVar mip.Bool, triggerConst bool, preferredVar mip.Bool, preferredConstFalse bool) mip.Bool {
	switch {
	case triggerConst && preferredConstFalse:
		v := m.NewBool()
		pinTrue(m, v)
		return v
	case triggerConst && !preferredConstFalse:
		return reifyComplement(m, preferredVar)
	case !triggerConst && preferredConstFalse:
		return triggerVar
	default:
		return reifyAndNot(m, triggerVar, preferredVar)
	}
}
