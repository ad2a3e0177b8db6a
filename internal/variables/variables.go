// Package variables materializes the decision and derived-aggregate
// variables of the constraint model (spec.md §4.B) and keeps them in
// lockstep with the assignment decisions via linking equalities posted on
// the solver model.
package variables

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/model"

	"github.com/iancoleman/strcase"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/shifterr"
)

// AssignmentKey indexes x[w,p,s]. It implements model.Identifier so it can
// key a model.MultiMap directly, the way the teacher's flat "assignment"
// structs key their own MultiMaps.
type AssignmentKey struct {
	WorkerID    string
	Period      int
	ShiftTypeID string
}

// ID implements model.Identifier.
func (k AssignmentKey) ID() string {
	return fmt.Sprintf("%s|%d|%s", k.WorkerID, k.Period, k.ShiftTypeID)
}

// CountKey indexes count[w,s].
type CountKey struct {
	WorkerID    string
	ShiftTypeID string
}

// ID implements model.Identifier.
func (k CountKey) ID() string { return k.WorkerID + "|" + k.ShiftTypeID }

// WorkerKey indexes undesirable_total[w]. It is a thin wrapper rather than
// domain.Worker itself because domain.Worker already declares a field
// named ID, which cannot coexist with a same-named method.
type WorkerKey struct {
	WorkerID string
}

// ID implements model.Identifier.
func (k WorkerKey) ID() string { return k.WorkerID }

// Variables is the built handle exposed to constraints, per spec.md §4.B's
// contract: typed accessors that return a lookup failure instead of
// guessing when a tuple was never created.
type Variables struct {
	assign            model.MultiMap[mip.Bool, AssignmentKey]
	assignKeys        []AssignmentKey
	count             model.MultiMap[mip.Float, CountKey]
	undesirableTotal  model.MultiMap[mip.Float, WorkerKey]
	names             map[string]string
	numPeriods        int
	undesirableCount  int
}

// Assignment returns x[w,p,s] and whether the tuple exists.
func (v *Variables) Assignment(workerID string, period int, shiftTypeID string) (mip.Bool, bool) {
	key := AssignmentKey{WorkerID: workerID, Period: period, ShiftTypeID: shiftTypeID}
	if !v.hasAssignment(key) {
		var zero mip.Bool
		return zero, false
	}
	return v.assign.Get(key), true
}

func (v *Variables) hasAssignment(key AssignmentKey) bool {
	_, ok := v.names[key.ID()]
	return ok
}

// Count returns count[w,s] and whether it exists.
func (v *Variables) Count(workerID, shiftTypeID string) (mip.Float, bool) {
	key := CountKey{WorkerID: workerID, ShiftTypeID: shiftTypeID}
	if _, ok := v.names["count:"+key.ID()]; !ok {
		var zero mip.Float
		return zero, false
	}
	return v.count.Get(key), true
}

// UndesirableTotal returns undesirable_total[w] and whether it exists.
func (v *Variables) UndesirableTotal(workerID string) (mip.Float, bool) {
	key := WorkerKey{WorkerID: workerID}
	if _, ok := v.names["undesirable:"+key.ID()]; !ok {
		var zero mip.Float
		return zero, false
	}
	return v.undesirableTotal.Get(key), true
}

// AllAssignmentKeys returns every (w,p,s) tuple the layer created, in a
// stable order (workers outer, then period, then shift type) so callers
// that iterate for model-building get reproducible constraint ordering.
func (v *Variables) AllAssignmentKeys() []AssignmentKey {
	out := make([]AssignmentKey, len(v.assignKeys))
	copy(out, v.assignKeys)
	return out
}

// NumPeriods returns the horizon length the layer was built with.
func (v *Variables) NumPeriods() int { return v.numPeriods }

// Build allocates x[w,p,s], count[w,s] and undesirable_total[w] for every
// worker/shift-type/period combination and posts the linking equalities of
// spec.md §4.B. workers and shiftTypes must be nonempty and numPeriods must
// be positive, or Build fails with InvalidInput.
func Build(m mip.Model, workers []domain.Worker, shiftTypes []domain.ShiftType, numPeriods int) (*Variables, error) {
	if len(workers) == 0 {
		return nil, shifterr.Invalid("variable layer: workers must not be empty")
	}
	if len(shiftTypes) == 0 {
		return nil, shifterr.Invalid("variable layer: shift_types must not be empty")
	}
	if numPeriods <= 0 {
		return nil, shifterr.Invalid("variable layer: num_periods must be > 0")
	}

	assignKeys := make([]AssignmentKey, 0, len(workers)*len(shiftTypes)*numPeriods)
	names := make(map[string]string, len(assignKeys))
	for _, w := range workers {
		for p := 0; p < numPeriods; p++ {
			for _, s := range shiftTypes {
				key := AssignmentKey{WorkerID: w.ID, Period: p, ShiftTypeID: s.ID}
				assignKeys = append(assignKeys, key)
				names[key.ID()] = variableName("assign", w.ID, p, s.ID)
			}
		}
	}

	assign := model.NewMultiMap(
		func(...AssignmentKey) mip.Bool { return m.NewBool() },
		assignKeys,
	)

	countKeys := make([]CountKey, 0, len(workers)*len(shiftTypes))
	for _, w := range workers {
		for _, s := range shiftTypes {
			key := CountKey{WorkerID: w.ID, ShiftTypeID: s.ID}
			countKeys = append(countKeys, key)
			names["count:"+key.ID()] = variableName("count", w.ID, -1, s.ID)
		}
	}
	count := model.NewMultiMap(
		func(...CountKey) mip.Float { return m.NewFloat(0, float64(numPeriods)) },
		countKeys,
	)

	undesirableCount := 0
	for _, s := range shiftTypes {
		if s.IsUndesirable {
			undesirableCount++
		}
	}
	bound := float64(numPeriods) * float64(max(1, undesirableCount))

	workerKeys := make([]WorkerKey, 0, len(workers))
	for _, w := range workers {
		workerKeys = append(workerKeys, WorkerKey{WorkerID: w.ID})
		names["undesirable:"+w.ID] = variableName("undesirable_total", w.ID, -1, "")
	}
	undesirableTotal := model.NewMultiMap(
		func(...WorkerKey) mip.Float { return m.NewFloat(0, bound) },
		workerKeys,
	)

	v := &Variables{
		assign:           assign,
		assignKeys:       assignKeys,
		count:            count,
		undesirableTotal: undesirableTotal,
		names:            names,
		numPeriods:       numPeriods,
		undesirableCount: undesirableCount,
	}

	// Invariant 2: count[w,s] = Sum_p x[w,p,s].
	for _, w := range workers {
		for _, s := range shiftTypes {
			linking := m.NewConstraint(mip.Equal, 0)
			linking.NewTerm(-1, count.Get(CountKey{WorkerID: w.ID, ShiftTypeID: s.ID}))
			for p := 0; p < numPeriods; p++ {
				linking.NewTerm(1, assign.Get(AssignmentKey{WorkerID: w.ID, Period: p, ShiftTypeID: s.ID}))
			}
		}
	}

	// Invariant 3: undesirable_total[w] = Sum_{p,s: undesirable} x[w,p,s],
	// or pinned to 0 when there are no undesirable shift types.
	for _, w := range workers {
		linking := m.NewConstraint(mip.Equal, 0)
		linking.NewTerm(-1, undesirableTotal.Get(WorkerKey{WorkerID: w.ID}))
		if undesirableCount > 0 {
			for p := 0; p < numPeriods; p++ {
				for _, s := range shiftTypes {
					if !s.IsUndesirable {
						continue
					}
					linking.NewTerm(1, assign.Get(AssignmentKey{WorkerID: w.ID, Period: p, ShiftTypeID: s.ID}))
				}
			}
		}
	}

	return v, nil
}

func variableName(prefix, workerID string, period int, shiftTypeID string) string {
	switch {
	case period >= 0 && shiftTypeID != "":
		return strcase.ToSnake(fmt.Sprintf("%s_%s_p%d_%s", prefix, workerID, period, shiftTypeID))
	case shiftTypeID != "":
		return strcase.ToSnake(fmt.Sprintf("%s_%s_%s", prefix, workerID, shiftTypeID))
	default:
		return strcase.ToSnake(fmt.Sprintf("%s_%s", prefix, workerID))
	}
}

// Name returns the descriptive, debug-only name for an assignment tuple.
// The solver never parses these; they exist for logging only.
func (v *Variables) Name(key AssignmentKey) string {
	return v.names[key.ID()]
}
