package constraints

import (
	"testing"
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/sctx"
	"github.com/shiftsolver/core/internal/variables"
)

func requestContext(t *testing.T, requests []domain.SchedulingRequest) sctx.Context {
	t.Helper()
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContextN(t, workers, shiftTypes, 1)
	ctx.Requests = requests
	return ctx
}

func TestRequestHardPositivePinsAssignmentToOne(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2026-01-01")
	end, _ := time.Parse("2006-01-02", "2026-01-01")
	isHard := true
	req, err := domain.NewSchedulingRequest("w1", start, end, domain.Positive, "day", 1, &isHard)
	if err != nil {
		t.Fatal(err)
	}
	ctx := requestContext(t, []domain.SchedulingRequest{req})

	result, err := (Request{}).Apply(Config{Enabled: true}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 0 {
		t.Errorf("a hard request should not create a violation variable, got %d", len(result.ViolationVariables))
	}

	x, _ := ctx.Vars.Assignment("w1", 0, "day")
	force := ctx.Model.NewConstraint(mip.Equal, 0.0)
	force.NewTerm(1, x)

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
		t.Error("expected a hard positive request pinned to 1 to conflict with forcing the assignment to 0")
	}
}

func TestRequestSoftNegativeRecordsAssignmentAsItsOwnViolation(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2026-01-01")
	end, _ := time.Parse("2006-01-02", "2026-01-01")
	req, err := domain.NewSchedulingRequest("w1", start, end, domain.Negative, "day", 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := requestContext(t, []domain.SchedulingRequest{req})

	result, err := (Request{}).Apply(Config{Enabled: true, IsHard: false}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 1 {
		t.Fatalf("expected exactly 1 violation variable, got %d", len(result.ViolationVariables))
	}
	for name, priority := range result.ViolationPriorities {
		if priority != 3 {
			t.Errorf("violation %q priority = %d, want 3 (the request's own priority)", name, priority)
		}
	}
}

func TestRequestSkipsUnknownWorkerOrShiftType(t *testing.T) {
	start, _ := time.Parse("2006-01-02", "2026-01-01")
	end, _ := time.Parse("2006-01-02", "2026-01-01")
	byUnknownWorker, err := domain.NewSchedulingRequest("ghost", start, end, domain.Positive, "day", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	byUnknownShift, err := domain.NewSchedulingRequest("w1", start, end, domain.Positive, "ghost-shift", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := requestContext(t, []domain.SchedulingRequest{byUnknownWorker, byUnknownShift})

	result, err := (Request{}).Apply(Config{Enabled: true}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 0 {
		t.Errorf("requests referencing unknown workers/shift types should be skipped, got %d violations", len(result.ViolationVariables))
	}
}
