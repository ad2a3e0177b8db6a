package objective

import (
	"testing"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/constraints"
)

func TestAddIsNoOpForNilResultOrZeroWeight(t *testing.T) {
	m := mip.NewModel()
	b := New(m)

	b.Add(0, &constraints.Result{ViolationVariables: map[string]mip.Var{"x": m.NewBool()}})
	b.Add(100, nil)

	if b.Terms() != 0 {
		t.Errorf("Terms() = %d, want 0", b.Terms())
	}
}

func TestAddAccumulatesTermsAcrossCalls(t *testing.T) {
	m := mip.NewModel()
	b := New(m)

	r1 := &constraints.Result{
		ViolationVariables:  map[string]mip.Var{"a": m.NewBool(), "b": m.NewBool()},
		ViolationPriorities: map[string]int{"a": 2},
	}
	r2 := &constraints.Result{
		ViolationVariables: map[string]mip.Var{"c": m.NewBool()},
	}

	b.Add(100, r1)
	b.Add(50, r2)

	if b.Terms() != 3 {
		t.Errorf("Terms() = %d, want 3", b.Terms())
	}
}
