package shifterr

import (
	"errors"
	"testing"
)

func TestInvalidFormatsMessageAndKind(t *testing.T) {
	err := Invalid("bad value %d", 7)
	if err.Kind != InvalidInput {
		t.Errorf("Kind = %v, want InvalidInput", err.Kind)
	}
	if err.Error() != "invalid_input: bad value 7" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestBoundaryIncludesPathAndRow(t *testing.T) {
	err := Boundary("workers.csv", 3, "missing id")
	want := "boundary_error: workers.csv (row 3): missing id"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestBoundaryWithoutRowOmitsRowSuffix(t *testing.T) {
	err := Boundary("workers.csv", -1, "missing id")
	want := "boundary_error: workers.csv: missing id"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesUnderlyingError(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(SolverFailure, cause, "solve failed")
	if !errors.Is(err, cause) {
		t.Error("expected Wrap to preserve the underlying error for errors.Is")
	}
	if err.Kind != SolverFailure {
		t.Errorf("Kind = %v, want SolverFailure", err.Kind)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		InvalidInput:       "invalid_input",
		FeasibilityFailure: "feasibility_failure",
		SolverFailure:      "solver_failure",
		BoundaryError:      "boundary_error",
		Kind(99):           "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
