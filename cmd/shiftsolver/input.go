package main

import (
	"time"

	"github.com/shiftsolver/core/internal/boundary"
	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/shifterr"
)

const dateLayout = "2006-01-02"

// input is the top-level JSON document the CLI reads from stdin/file.
type input struct {
	ScheduleID                 string             `json:"schedule_id"`
	StartDate                  string             `json:"start_date"`
	EndDate                    string             `json:"end_date"`
	PeriodDays                 int                `json:"period_days"`
	Workers                    []workerIn         `json:"workers"`
	ShiftTypes                 []shiftTypeIn      `json:"shift_types"`
	Availabilities             []availabilityIn   `json:"availabilities"`
	Requests                   []requestIn        `json:"requests"`
	ShiftFrequencyRequirements []shiftFrequencyIn `json:"shift_frequency_requirements"`
	ShiftOrderPreferences      []shiftOrderIn     `json:"shift_order_preferences"`
	ConstraintConfigs          boundary.Overlay   `json:"constraint_configs"`
}

type workerIn struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	WorkerType       string   `json:"worker_type"`
	RestrictedShifts []string `json:"restricted_shifts"`
	PreferredShifts  []string `json:"preferred_shifts"`
}

type shiftTypeIn struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationHours   float64 `json:"duration_hours"`
	WorkersRequired int     `json:"workers_required"`
	IsUndesirable   bool    `json:"is_undesirable"`
	ApplicableDays  []int   `json:"applicable_days"`
}

type availabilityIn struct {
	WorkerID    string `json:"worker_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Type        string `json:"availability_type"`
	ShiftTypeID string `json:"shift_type_id"`
}

type requestIn struct {
	WorkerID    string `json:"worker_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Type        string `json:"request_type"`
	ShiftTypeID string `json:"shift_type_id"`
	Priority    int    `json:"priority"`
	IsHard      *bool  `json:"is_hard,omitempty"`
}

type shiftFrequencyIn struct {
	WorkerID          string   `json:"worker_id"`
	ShiftTypes        []string `json:"shift_types"`
	MaxPeriodsBetween int      `json:"max_periods_between"`
}

type shiftOrderIn struct {
	RuleID         string   `json:"rule_id"`
	Trigger        string   `json:"trigger"`
	TriggerValue   string   `json:"trigger_value"`
	Direction      string   `json:"direction"`
	Preferred      string   `json:"preferred"`
	PreferredValue string   `json:"preferred_value"`
	Priority       int      `json:"priority"`
	WorkerIDs      []string `json:"worker_ids"`
}

// parsedInput holds the validated domain entities a wire input decodes
// into, plus the derived period partition.
type parsedInput struct {
	Workers                    []domain.Worker
	ShiftTypes                 []domain.ShiftType
	Periods                    []domain.Period
	Availabilities             []domain.Availability
	Requests                   []domain.SchedulingRequest
	ShiftFrequencyRequirements []domain.ShiftFrequencyRequirement
	ShiftOrderPreferences      []domain.ShiftOrderPreference
}

// buildDomain converts the wire input into validated domain entities.
func buildDomain(in input) (parsedInput, error) {
	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return parsedInput{}, shifterr.Invalid("invalid start_date %q", in.StartDate)
	}
	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return parsedInput{}, shifterr.Invalid("invalid end_date %q", in.EndDate)
	}
	periodDays := in.PeriodDays
	if periodDays <= 0 {
		periodDays = 1
	}
	periods, err := domain.BuildPeriods(start, end, periodDays)
	if err != nil {
		return parsedInput{}, err
	}

	var out parsedInput
	out.Periods = periods

	for _, w := range in.Workers {
		worker, err := domain.NewWorker(w.ID, w.Name, w.RestrictedShifts, w.PreferredShifts)
		if err != nil {
			return parsedInput{}, err
		}
		worker.WorkerType = w.WorkerType
		out.Workers = append(out.Workers, worker)
	}

	for _, s := range in.ShiftTypes {
		shiftType, err := domain.NewShiftType(s.ID, s.Name, s.Category, s.DurationHours, s.WorkersRequired, s.IsUndesirable, s.ApplicableDays)
		if err != nil {
			return parsedInput{}, err
		}
		out.ShiftTypes = append(out.ShiftTypes, shiftType)
	}
	if err := domain.ValidateUnique(out.ShiftTypes); err != nil {
		return parsedInput{}, err
	}

	for _, a := range in.Availabilities {
		aStart, err := time.Parse(dateLayout, a.StartDate)
		if err != nil {
			return parsedInput{}, shifterr.Invalid("availability for %s: invalid start_date %q", a.WorkerID, a.StartDate)
		}
		aEnd, err := time.Parse(dateLayout, a.EndDate)
		if err != nil {
			return parsedInput{}, shifterr.Invalid("availability for %s: invalid end_date %q", a.WorkerID, a.EndDate)
		}
		avail, err := domain.NewAvailability(a.WorkerID, aStart, aEnd, domain.AvailabilityType(a.Type), a.ShiftTypeID)
		if err != nil {
			return parsedInput{}, err
		}
		out.Availabilities = append(out.Availabilities, avail)
	}

	for _, r := range in.Requests {
		rStart, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return parsedInput{}, shifterr.Invalid("request for %s: invalid start_date %q", r.WorkerID, r.StartDate)
		}
		rEnd, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return parsedInput{}, shifterr.Invalid("request for %s: invalid end_date %q", r.WorkerID, r.EndDate)
		}
		priority := r.Priority
		if priority == 0 {
			priority = 1
		}
		req, err := domain.NewSchedulingRequest(r.WorkerID, rStart, rEnd, domain.RequestKind(r.Type), r.ShiftTypeID, priority, r.IsHard)
		if err != nil {
			return parsedInput{}, err
		}
		out.Requests = append(out.Requests, req)
	}

	for _, f := range in.ShiftFrequencyRequirements {
		req, err := domain.NewShiftFrequencyRequirement(f.WorkerID, f.ShiftTypes, f.MaxPeriodsBetween)
		if err != nil {
			return parsedInput{}, err
		}
		out.ShiftFrequencyRequirements = append(out.ShiftFrequencyRequirements, req)
	}

	for _, o := range in.ShiftOrderPreferences {
		rule, err := domain.NewShiftOrderPreference(o.RuleID, domain.OrderTriggerKind(o.Trigger), o.TriggerValue,
			domain.OrderDirection(o.Direction), domain.PreferredKind(o.Preferred), o.PreferredValue, o.Priority, o.WorkerIDs)
		if err != nil {
			return parsedInput{}, err
		}
		out.ShiftOrderPreferences = append(out.ShiftOrderPreferences, rule)
	}

	return out, nil
}
