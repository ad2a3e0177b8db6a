package boundary

import (
	"encoding/json"

	"github.com/shiftsolver/core/internal/orchestrator"
	"github.com/shiftsolver/core/internal/shifterr"
)

// SolverParametersWire is the wire shape of spec.md §6.4.
// TimeLimitSeconds is required; the rest carry a provider default when
// absent/zero.
type SolverParametersWire struct {
	TimeLimitSeconds  float64 `json:"time_limit_seconds"`
	NumSearchWorkers  int     `json:"num_search_workers,omitempty"`
	RelativeGapLimit  float64 `json:"relative_gap_limit,omitempty"`
	LogSearchProgress bool    `json:"log_search_progress,omitempty"`
	RandomSeed        int     `json:"random_seed,omitempty"`
}

// ParseSolverParameters parses and validates the solver parameters of
// spec.md §6.4, rejecting a missing or non-positive time_limit_seconds.
func ParseSolverParameters(raw []byte) (orchestrator.SolverParameters, error) {
	var wire SolverParametersWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return orchestrator.SolverParameters{}, shifterr.Wrap(shifterr.BoundaryError, err, "solver parameters: malformed JSON")
	}
	if wire.TimeLimitSeconds <= 0 {
		return orchestrator.SolverParameters{}, shifterr.Invalid("solver parameters: time_limit_seconds must be > 0")
	}
	return orchestrator.SolverParameters{
		TimeLimitSeconds:  wire.TimeLimitSeconds,
		NumSearchWorkers:  wire.NumSearchWorkers,
		RelativeGapLimit:  wire.RelativeGapLimit,
		LogSearchProgress: wire.LogSearchProgress,
		RandomSeed:        wire.RandomSeed,
	}, nil
}

// ResultEnvelope is the wire shape of spec.md §6.5.
type ResultEnvelope struct {
	Success           bool               `json:"success"`
	Schedule          *ScheduleDocument  `json:"schedule,omitempty"`
	Status            string             `json:"status"`
	StatusName        string             `json:"status_name"`
	SolveTimeSeconds  float64            `json:"solve_time_seconds"`
	ObjectiveValue    *float64           `json:"objective_value,omitempty"`
	FeasibilityIssues []FeasibilityIssue `json:"feasibility_issues,omitempty"`
}

// FeasibilityIssue mirrors feasibility.Issue for JSON.
type FeasibilityIssue struct {
	PeriodIndex int    `json:"period_index"`
	ShiftTypeID string `json:"shift_type_id"`
	Required    int    `json:"required"`
	Available   int    `json:"available"`
	Message     string `json:"message"`
}

// ExportResult converts an orchestrator.Result into the wire envelope.
func ExportResult(res orchestrator.Result) ResultEnvelope {
	env := ResultEnvelope{
		Success:          res.Success,
		Status:           res.Status,
		StatusName:       res.StatusName,
		SolveTimeSeconds: res.SolveTimeSeconds,
		ObjectiveValue:   res.ObjectiveValue,
	}
	if res.Schedule != nil {
		doc := ExportSchedule(*res.Schedule)
		env.Schedule = &doc
	}
	for _, issue := range res.FeasibilityIssues {
		env.FeasibilityIssues = append(env.FeasibilityIssues, FeasibilityIssue{
			PeriodIndex: issue.PeriodIndex,
			ShiftTypeID: issue.ShiftTypeID,
			Required:    issue.Required,
			Available:   issue.Available,
			Message:     issue.Message,
		})
	}
	return env
}
