// Package sctx defines the frozen, typed context every constraint consumes.
// spec.md §9 "Context dict" calls out that a dynamically typed string-keyed
// map is the wrong shape for this: this struct has named fields, is built
// once per run by the orchestrator, and is never mutated after
// construction. Missing required data is a caller bug, not something a
// constraint should silently tolerate.
package sctx

import (
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/variables"
)

// Context is passed by value (it holds only slices/maps/pointers, all
// treated as read-only) to every constraint's Apply.
type Context struct {
	Model      mip.Model
	Vars       *variables.Variables
	Workers    []domain.Worker
	ShiftTypes []domain.ShiftType
	NumPeriods int
	Periods    []domain.Period

	Availabilities             []domain.Availability
	Requests                   []domain.SchedulingRequest
	ShiftFrequencyRequirements []domain.ShiftFrequencyRequirement
	ShiftOrderPreferences      []domain.ShiftOrderPreference
}

// PeriodDate returns the stamped date (period start) for a period index.
func (c Context) PeriodDate(periodIndex int) time.Time {
	return c.Periods[periodIndex].Start
}

// WorkersByID indexes workers for O(1) lookup; constraints that scan many
// workers should call this once rather than linear-scanning c.Workers.
func (c Context) WorkersByID() map[string]domain.Worker {
	out := make(map[string]domain.Worker, len(c.Workers))
	for _, w := range c.Workers {
		out[w.ID] = w
	}
	return out
}

// ShiftTypesByID indexes shift types for O(1) lookup.
func (c Context) ShiftTypesByID() map[string]domain.ShiftType {
	out := make(map[string]domain.ShiftType, len(c.ShiftTypes))
	for _, s := range c.ShiftTypes {
		out[s.ID] = s
	}
	return out
}
