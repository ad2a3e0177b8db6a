package constraints

import (
	"testing"
	"time"

	"github.com/nextmv-io/sdk/mip"
)

func TestFrequencyFlagsWindowWithNoMatchingShiftType(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 2)

	result, err := (Frequency{}).Apply(Config{Enabled: true, Parameters: map[string]any{"max_periods_between": 2}}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 1 {
		t.Fatalf("expected exactly 1 window violation, got %d", len(result.ViolationVariables))
	}

	var violation mip.Bool
	for _, v := range result.ViolationVariables {
		violation = v.(mip.Bool)
	}

	x0, _ := ctx.Vars.Assignment("w1", 0, "day")
	x1, _ := ctx.Vars.Assignment("w1", 1, "day")
	con0 := ctx.Model.NewConstraint(mip.Equal, 0.0)
	con0.NewTerm(1, x0)
	con1 := ctx.Model.NewConstraint(mip.Equal, 0.0)
	con1.NewTerm(1, x1)
	pin := ctx.Model.NewConstraint(mip.Equal, 0.0)
	pin.NewTerm(1, violation)

	solver, err := mip.NewSolver(mip.Highs, ctx.Model)
	if err != nil {
		t.Fatal(err)
	}
	opts := mip.SolveOptions{}
	opts.Duration = 5 * time.Second
	opts.Verbosity = mip.Off
	solution, err := solver.Solve(opts)
	if err != nil {
		t.Fatal(err)
	}
	if solution != nil && solution.HasValues() {
		t.Error("no matching assignment in the window should force the violation true")
	}
}

func TestFrequencyZeroWindowIsNoOp(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 2)

	result, err := (Frequency{}).Apply(Config{Enabled: true, Parameters: map[string]any{"max_periods_between": 0}}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 0 {
		t.Errorf("a zero window should contribute nothing, got %d", len(result.ViolationVariables))
	}
}

func TestFrequencyFilterRestrictsShiftTypeSet(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 2)

	result, err := (Frequency{}).Apply(Config{
		Enabled:    true,
		Parameters: map[string]any{"max_periods_between": 2, "shift_types": []any{"ghost-shift"}},
	}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 1 {
		t.Fatalf("expected 1 window, got %d", len(result.ViolationVariables))
	}

	var violation mip.Bool
	for _, v := range result.ViolationVariables {
		violation = v.(mip.Bool)
	}

	x0, _ := ctx.Vars.Assignment("w1", 0, "day")
	x1, _ := ctx.Vars.Assignment("w1", 1, "day")
	con0 := ctx.Model.NewConstraint(mip.Equal, 1.0)
	con0.NewTerm(1, x0)
	con1 := ctx.Model.NewConstraint(mip.Equal, 1.0)
	con1.NewTerm(1, x1)
	pin := ctx.Model.NewConstraint(mip.Equal, 0.0)
	pin.NewTerm(1, violation)

	solver, err := mip.NewSolver(mip.Highs, ctx.Model)
	if err != nil {
		t.Fatal(err)
	}
	opts := mip.SolveOptions{}
	opts.Duration = 5 * time.Second
	opts.Verbosity = mip.Off
	solution, err := solver.Solve(opts)
	if err != nil {
		t.Fatal(err)
	}
	if solution != nil && solution.HasValues() {
		t.Error("the filter excludes the only shift type worked, so the violation must stay true even at full assignment")
	}
}
