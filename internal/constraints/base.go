// Package constraints holds one module per business rule (spec.md §4.C).
// Every constraint implements the shared Constraint contract: a stable id,
// an Apply that posts hard constraints and/or creates violation indicators
// against the shared sctx.Context, and two accumulators (violation
// variables and their per-event priorities) collected by the objective
// builder.
package constraints

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/sctx"
)

// Config is a constraint's per-run configuration, merged from the
// registry's defaults and an operator-supplied override (spec.md §6.3).
type Config struct {
	Enabled    bool
	IsHard     bool
	Weight     float64
	Parameters map[string]any
}

// Result accumulates what a single Apply call contributed: the violation
// indicators it created (keyed by a constraint-chosen, globally unique
// name) and the priority multiplier for each, defaulting to 1 when absent.
// Most violation indicators are 0/1 booleans, but Fairness's spread is a
// bounded continuous aggregate — spec.md §4.C.4 calls it a "violation
// variable" too — so the map holds the solver's common variable interface
// rather than mip.Bool specifically.
type Result struct {
	ViolationVariables  map[string]mip.Var
	ViolationPriorities map[string]int
}

func newResult() *Result {
	return &Result{
		ViolationVariables:  map[string]mip.Var{},
		ViolationPriorities: map[string]int{},
	}
}

// addViolation records a violation indicator with the given priority
// (defaulting to 1 when priority <= 0).
func (r *Result) addViolation(name string, v mip.Var, priority int) {
	if priority <= 0 {
		priority = 1
	}
	r.ViolationVariables[name] = v
	r.ViolationPriorities[name] = priority
}

// Constraint is the capability set every business rule implements:
// {constraint_id, apply(context), violation_variables, violation_priorities}
// of spec.md §9 "Polymorphism" — a dispatch table keyed by constraint_id
// stands in for runtime class lookup.
type Constraint interface {
	// ID is the stable identifier used by the registry and by overrides.
	ID() string
	// Apply reads ctx, consults cfg, posts hard constraints and/or creates
	// violation indicators, and returns the violations it created. When
	// cfg.Enabled is false, Apply is a no-op and returns an empty Result.
	Apply(cfg Config, ctx sctx.Context) (*Result, error)
}

// Posture reports whether a constraint should behave as hard or soft for
// constraints that support either, honoring cfg.IsHard.
func Posture(cfg Config) bool { return cfg.IsHard }
