// Package shifterr defines the error kinds shared across the scheduling
// core, per the error handling design: invalid input is surfaced to the
// caller and never swallowed, feasibility and solver failures are carried
// as result payloads rather than exceptions, and boundary errors always
// carry enough context (file, row) to locate the offending record.
package shifterr

import "fmt"

// Kind classifies an error for callers that branch on error type instead of
// string matching.
type Kind int

const (
	// InvalidInput marks malformed or inconsistent input detected before
	// a solve is attempted.
	InvalidInput Kind = iota
	// FeasibilityFailure marks a pre-solve verdict that no solution can
	// exist given the hard exclusions.
	FeasibilityFailure
	// SolverFailure marks a solver outcome of UNSAT or a time limit with
	// no feasible solution.
	SolverFailure
	// BoundaryError marks a parse/shape failure at a loader or exporter.
	BoundaryError
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case FeasibilityFailure:
		return "feasibility_failure"
	case SolverFailure:
		return "solver_failure"
	case BoundaryError:
		return "boundary_error"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the core. It always carries a
// Kind so callers can branch without string matching, plus an optional
// source location for boundary errors.
type Error struct {
	Kind    Kind
	Message string
	// Path and Row are set only for BoundaryError; Row is 1-indexed and -1
	// when the error is not attributable to a specific row.
	Path string
	Row  int
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == BoundaryError && e.Path != "" && e.Row >= 0:
		return fmt.Sprintf("%s: %s (row %d): %s", e.Kind, e.Path, e.Row, e.Message)
	case e.Kind == BoundaryError && e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid builds an InvalidInput error.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: InvalidInput, Message: fmt.Sprintf(format, args...), Row: -1}
}

// Boundary builds a BoundaryError attributed to path/row.
func Boundary(path string, row int, format string, args ...any) *Error {
	return &Error{Kind: BoundaryError, Message: fmt.Sprintf(format, args...), Path: path, Row: row}
}

// Wrap attaches a Kind to an underlying error without discarding it.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err, Row: -1}
}
