// package main holds the implementation of the shift scheduling solver.
package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/nextmv-io/sdk"
	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/schema"
	"github.com/nextmv-io/sdk/run/statistics"

	"github.com/shiftsolver/core/internal/boundary"
	"github.com/shiftsolver/core/internal/orchestrator"
	"github.com/shiftsolver/core/internal/registry"
)

func main() {
	err := run.CLI(solver).Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
}

// options are the solver-level knobs a caller can set independently of the
// scheduling input itself, per spec.md §6.4.
type options struct {
	Solve mip.SolveOptions `json:"solve" usage:"holds fields to configure the solver"`
}

// builtins is populated once; every constraint id it knows about carries
// the documented default configuration until a request overrides it.
var builtins = func() *registry.Registry {
	r := registry.New()
	registry.RegisterBuiltins(r)
	return r
}()

func solver(_ context.Context, in input, opts options) (schema.Output, error) {
	parsed, err := buildDomain(in)
	if err != nil {
		return schema.Output{}, err
	}

	scheduleID := in.ScheduleID
	if scheduleID == "" {
		scheduleID = uuid.NewString()
	}

	result, err := orchestrator.Solve(builtins, orchestrator.Input{
		ScheduleID:                 scheduleID,
		Workers:                    parsed.Workers,
		ShiftTypes:                 parsed.ShiftTypes,
		Periods:                    parsed.Periods,
		Availabilities:             parsed.Availabilities,
		Requests:                   parsed.Requests,
		ShiftFrequencyRequirements: parsed.ShiftFrequencyRequirements,
		ShiftOrderPreferences:      parsed.ShiftOrderPreferences,
		Overrides:                  in.ConstraintConfigs.ToOverrides(),
		Solver: orchestrator.SolverParameters{
			TimeLimitSeconds:  opts.Solve.Duration.Seconds(),
			RelativeGapLimit:  opts.Solve.MIP.Gap.Relative,
			LogSearchProgress: opts.Solve.Verbosity != mip.Off,
		},
	})
	if err != nil {
		return schema.Output{}, err
	}

	return format(result), nil
}

// scheduleResult is the JSON shape nested under schema.Output.Solutions,
// mirroring the result envelope of spec.md §6.5.
type scheduleResult struct {
	ScheduleID        string                `json:"schedule_id"`
	Success           bool                  `json:"success"`
	Schedule          any                   `json:"schedule,omitempty"`
	Status            string                `json:"status"`
	StatusName        string                `json:"status_name"`
	FeasibilityIssues []feasibilityIssueOut `json:"feasibility_issues,omitempty"`
}

type feasibilityIssueOut struct {
	PeriodIndex int    `json:"period_index"`
	ShiftTypeID string `json:"shift_type_id"`
	Required    int    `json:"required"`
	Available   int    `json:"available"`
	Message     string `json:"message"`
}

type customResultStatistics struct {
	ConstraintsApplied int `json:"constraints_applied"`
}

func format(result orchestrator.Result) schema.Output {
	o := schema.Output{
		Version: schema.Version{Sdk: sdk.VERSION},
	}

	stats := statistics.NewStatistics()
	statResult := statistics.Result{}
	statRun := statistics.Run{}

	duration := round(result.SolveTimeSeconds)
	statRun.Duration = &duration
	statResult.Duration = &duration
	if result.ObjectiveValue != nil {
		val := statistics.Float64(round(*result.ObjectiveValue))
		statResult.Value = &val
	}
	applied := 0
	for _, cfg := range result.ConstraintConfigs {
		if cfg.Enabled {
			applied++
		}
	}
	statResult.Custom = customResultStatistics{ConstraintsApplied: applied}

	stats.Result = &statResult
	stats.Run = &statRun
	o.Statistics = stats

	sr := scheduleResult{
		ScheduleID: result.ScheduleID,
		Success:    result.Success,
		Status:     result.Status,
		StatusName: result.StatusName,
	}
	if result.Schedule != nil {
		sr.Schedule = boundary.ExportSchedule(*result.Schedule)
	}
	for _, issue := range result.FeasibilityIssues {
		sr.FeasibilityIssues = append(sr.FeasibilityIssues, feasibilityIssueOut{
			PeriodIndex: issue.PeriodIndex,
			ShiftTypeID: issue.ShiftTypeID,
			Required:    issue.Required,
			Available:   issue.Available,
			Message:     issue.Message,
		})
	}
	o.Solutions = append(o.Solutions, sr)

	return o
}

func round(value float64) float64 {
	const precision = 1e6
	return float64(int64(value*precision+0.5)) / precision
}
