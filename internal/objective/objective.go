// Package objective fuses every applied soft constraint's violation
// indicators into the single weighted objective the solver minimizes
// (spec.md §4.E):
//
//	minimize  Sum_c  w_c * Sum_{v in violations(c)}  priority_c(v) * v
package objective

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/constraints"
)

// Builder accumulates contributions across every applied constraint and
// finalizes them onto the model's objective.
type Builder struct {
	model mip.Model
	terms int
}

// New returns a Builder targeting the given model's objective, which is
// set to minimize (the core only ever minimizes violation weight).
func New(m mip.Model) *Builder {
	m.Objective().SetMinimize()
	return &Builder{model: m}
}

// Add folds one constraint's weighted violations into the objective. It is
// a no-op for constraints that ran hard (no violation indicators) or were
// disabled (empty Result).
func (b *Builder) Add(weight float64, result *constraints.Result) {
	if result == nil || weight == 0 {
		return
	}
	for name, v := range result.ViolationVariables {
		priority := result.ViolationPriorities[name]
		if priority <= 0 {
			priority = 1
		}
		b.model.Objective().NewTerm(weight*float64(priority), v)
		b.terms++
	}
}

// Terms reports how many objective terms were added, for diagnostics.
func (b *Builder) Terms() int { return b.terms }
