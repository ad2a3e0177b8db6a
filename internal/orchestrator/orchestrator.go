// Package orchestrator wires the feasibility checker, variable layer,
// constraint registry, objective builder, solver and extractor into the
// single entry point of spec.md §4.G.
package orchestrator

import (
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/constraints"
	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/extractor"
	"github.com/shiftsolver/core/internal/feasibility"
	"github.com/shiftsolver/core/internal/objective"
	"github.com/shiftsolver/core/internal/registry"
	"github.com/shiftsolver/core/internal/sctx"
	"github.com/shiftsolver/core/internal/variables"
)

// SolverParameters are the tunables of spec.md §6.4. TimeLimitSeconds is the
// only required one; everything else carries a provider default when zero.
type SolverParameters struct {
	TimeLimitSeconds  float64
	NumSearchWorkers  int
	RelativeGapLimit  float64
	LogSearchProgress bool
	RandomSeed        int
}

// Input bundles a scheduling problem instance plus the per-run constraint
// overlay and solver parameters.
type Input struct {
	ScheduleID                 string
	Workers                    []domain.Worker
	ShiftTypes                 []domain.ShiftType
	Periods                    []domain.Period
	Availabilities             []domain.Availability
	Requests                   []domain.SchedulingRequest
	ShiftFrequencyRequirements []domain.ShiftFrequencyRequirement
	ShiftOrderPreferences      []domain.ShiftOrderPreference
	Overrides                  map[string]registry.Override
	Solver                     SolverParameters
}

// Result is the envelope of spec.md §6.5, extended with a schedule_id echo
// and the resolved constraint configuration of every registered constraint,
// enabled or not (not in spec.md's envelope fields; the CLI output carries
// the schedule_id and reports how many constraints were applied).
type Result struct {
	ScheduleID        string
	Success           bool
	Schedule          *domain.Schedule
	Status            string
	StatusName        string
	SolveTimeSeconds  float64
	ObjectiveValue    *float64
	FeasibilityIssues []feasibility.Issue
	ConstraintConfigs map[string]constraints.Config
}

// Solve runs the pipeline of spec.md §4.G against a seeded registry.
func Solve(reg *registry.Registry, in Input) (Result, error) {
	fr := feasibility.Check(feasibility.Input{
		Workers:        in.Workers,
		ShiftTypes:     in.ShiftTypes,
		Periods:        in.Periods,
		Availabilities: in.Availabilities,
		Requests:       in.Requests,
	})
	if !fr.Feasible {
		return Result{
			ScheduleID:        in.ScheduleID,
			Success:           false,
			Status:            "infeasible",
			StatusName:        "pre-solve feasibility check failed",
			FeasibilityIssues: fr.Issues,
		}, nil
	}

	m := mip.NewModel()
	vars, err := variables.Build(m, in.Workers, in.ShiftTypes, len(in.Periods))
	if err != nil {
		return Result{}, err
	}

	ctx := sctx.Context{
		Model:                      m,
		Vars:                       vars,
		Workers:                    in.Workers,
		ShiftTypes:                 in.ShiftTypes,
		NumPeriods:                 len(in.Periods),
		Periods:                    in.Periods,
		Availabilities:             in.Availabilities,
		Requests:                   in.Requests,
		ShiftFrequencyRequirements: in.ShiftFrequencyRequirements,
		ShiftOrderPreferences:      in.ShiftOrderPreferences,
	}

	overrides := autoEnableRequestConstraint(in.Overrides, in.Requests)

	objBuilder := objective.New(m)
	resolvedConfigs := make(map[string]constraints.Config)
	for _, entry := range reg.Resolve(overrides) {
		resolvedConfigs[entry.ID] = entry.Config
		if !entry.Config.Enabled {
			continue
		}
		res, err := entry.Constraint.Apply(entry.Config, ctx)
		if err != nil {
			return Result{}, err
		}
		objBuilder.Add(entry.Config.Weight, res)
	}

	solver, err := mip.NewSolver(mip.Highs, m)
	if err != nil {
		return Result{}, err
	}

	// NumSearchWorkers and RandomSeed are accepted at the boundary (§6.4)
	// but the highs provider exposed through this SDK version does not take
	// them; only Duration, the relative gap and verbosity are wired through.
	solveOptions := mip.SolveOptions{}
	solveOptions.Duration = time.Duration(in.Solver.TimeLimitSeconds * float64(time.Second))
	if in.Solver.RelativeGapLimit > 0 {
		solveOptions.MIP.Gap.Relative = in.Solver.RelativeGapLimit
	}
	if in.Solver.LogSearchProgress {
		solveOptions.Verbosity = mip.Medium
	} else {
		solveOptions.Verbosity = mip.Off
	}

	solution, err := solver.Solve(solveOptions)
	if err != nil {
		return Result{}, err
	}

	elapsed := 0.0
	if solution != nil {
		elapsed = solution.RunTime().Seconds()
	}

	if solution == nil || !solution.HasValues() {
		return Result{
			ScheduleID:        in.ScheduleID,
			Success:           false,
			Status:            "infeasible",
			StatusName:        "solver found no feasible solution within the time limit",
			SolveTimeSeconds:  elapsed,
			ConstraintConfigs: resolvedConfigs,
		}, nil
	}

	status := "suboptimal"
	statusName := "feasible solution found before optimality was proven"
	if solution.IsOptimal() {
		status = "optimal"
		statusName = "optimal solution found"
	}

	schedule := extractor.Extract(in.ScheduleID, in.Workers, in.ShiftTypes, in.Periods, vars, solution)
	objectiveValue := solution.ObjectiveValue()

	return Result{
		ScheduleID:        in.ScheduleID,
		Success:           true,
		Schedule:          &schedule,
		Status:            status,
		StatusName:        statusName,
		SolveTimeSeconds:  elapsed,
		ObjectiveValue:    &objectiveValue,
		ConstraintConfigs: resolvedConfigs,
	}, nil
}

// autoEnableRequestConstraint turns on the request constraint whenever
// requests are present and the caller did not explicitly opt out, per
// spec.md §4.C.6. It never mutates the caller's overlay.
func autoEnableRequestConstraint(overrides map[string]registry.Override, requests []domain.SchedulingRequest) map[string]registry.Override {
	if len(requests) == 0 {
		return overrides
	}
	if o, ok := overrides["request"]; ok && o.Enabled != nil {
		return overrides
	}
	out := make(map[string]registry.Override, len(overrides)+1)
	for k, v := range overrides {
		out[k] = v
	}
	enabled := true
	o := out["request"]
	o.Enabled = &enabled
	out["request"] = o
	return out
}
