package constraints

import (
	"testing"
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
)

func TestShiftFrequencyHardPostsUnsatisfiableConstraintWhenNoAssignments(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 2)

	req, err := domain.NewShiftFrequencyRequirement("w1", []string{"day"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	ctx.ShiftFrequencyRequirements = []domain.ShiftFrequencyRequirement{req}

	if _, err := (ShiftFrequency{}).Apply(Config{Enabled: true, IsHard: true}, ctx); err != nil {
		t.Fatal(err)
	}

	x0, _ := ctx.Vars.Assignment("w1", 0, "day")
	x1, _ := ctx.Vars.Assignment("w1", 1, "day")
	con0 := ctx.Model.NewConstraint(mip.Equal, 0.0)
	con0.NewTerm(1, x0)
	con1 := ctx.Model.NewConstraint(mip.Equal, 0.0)
	con1.NewTerm(1, x1)

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
		t.Error("the hard posture requires at least one assignment in the window")
	}
}

func TestShiftFrequencySoftRecordsOneViolationPerWindow(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 2)

	req, err := domain.NewShiftFrequencyRequirement("w1", []string{"day"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	ctx.ShiftFrequencyRequirements = []domain.ShiftFrequencyRequirement{req}

	result, err := (ShiftFrequency{}).Apply(Config{Enabled: true, IsHard: false}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 1 {
		t.Fatalf("a 2-period schedule with window 2 has exactly one window, got %d", len(result.ViolationVariables))
	}
}

func TestShiftFrequencyDisabledIsNoOp(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 2)

	req, err := domain.NewShiftFrequencyRequirement("w1", []string{"day"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	ctx.ShiftFrequencyRequirements = []domain.ShiftFrequencyRequirement{req}

	result, err := (ShiftFrequency{}).Apply(Config{Enabled: false}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 0 {
		t.Errorf("expected no violations when disabled, got %d", len(result.ViolationVariables))
	}
}
