// Package domain holds the immutable descriptions of workers, shift types,
// periods, availabilities, requests and preferences that the constraint
// core consumes. Entities are value types validated at construction and
// owned by the caller: the core only reads them.
package domain

import (
	"fmt"
	"time"

	"github.com/shiftsolver/core/internal/shifterr"
)

// AvailabilityType enumerates the availability kinds of spec.md §3.
type AvailabilityType string

const (
	Unavailable AvailabilityType = "unavailable"
	Preferred   AvailabilityType = "preferred"
	Required    AvailabilityType = "required"
)

// RequestKind enumerates scheduling request kinds.
type RequestKind string

const (
	Positive RequestKind = "positive"
	Negative RequestKind = "negative"
)

// Worker is an immutable description of a schedulable person.
type Worker struct {
	ID                string
	Name              string
	WorkerType        string
	RestrictedShifts  map[string]struct{}
	PreferredShifts   map[string]struct{}
	Attributes        map[string]string
}

// NewWorker validates and constructs a Worker. restricted and preferred are
// copied defensively; their intersection must be empty.
func NewWorker(id, name string, restricted, preferred []string) (Worker, error) {
	if id == "" {
		return Worker{}, shifterr.Invalid("worker id must not be empty")
	}
	r := toSet(restricted)
	p := toSet(preferred)
	for s := range r {
		if _, ok := p[s]; ok {
			return Worker{}, shifterr.Invalid("worker %s: shift %s is both restricted and preferred", id, s)
		}
	}
	return Worker{ID: id, Name: name, RestrictedShifts: r, PreferredShifts: p}, nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it == "" {
			continue
		}
		set[it] = struct{}{}
	}
	return set
}

// IsRestrictedFrom reports whether the worker may not work the given shift
// type, per the Worker.restricted_shifts invariant.
func (w Worker) IsRestrictedFrom(shiftTypeID string) bool {
	_, ok := w.RestrictedShifts[shiftTypeID]
	return ok
}

// ShiftType describes a category of work. It is a value type, but it holds
// a slice and a map, so it is not comparable and cannot key a Go map;
// lookups key shift types by ID instead.
type ShiftType struct {
	ID                  string
	Name                string
	Category            string
	StartTime           time.Time
	EndTime             time.Time
	DurationHours       float64
	WorkersRequired     int
	IsUndesirable       bool
	ApplicableDays      []int // nil means every day; subset of [0,6], 0=Monday
	RequiredAttributes  map[string]string
}

// NewShiftType validates and constructs a ShiftType.
func NewShiftType(id, name, category string, durationHours float64, workersRequired int, undesirable bool, applicableDays []int) (ShiftType, error) {
	if id == "" {
		return ShiftType{}, shifterr.Invalid("shift type id must not be empty")
	}
	if durationHours <= 0 {
		return ShiftType{}, shifterr.Invalid("shift type %s: duration_hours must be > 0", id)
	}
	if workersRequired < 1 {
		return ShiftType{}, shifterr.Invalid("shift type %s: workers_required must be >= 1", id)
	}
	for _, d := range applicableDays {
		if d < 0 || d > 6 {
			return ShiftType{}, shifterr.Invalid("shift type %s: applicable_days entry %d out of [0,6]", id, d)
		}
	}
	return ShiftType{
		ID:              id,
		Name:            name,
		Category:        category,
		DurationHours:   durationHours,
		WorkersRequired: workersRequired,
		IsUndesirable:   undesirable,
		ApplicableDays:  applicableDays,
	}, nil
}

// AppliesOnDay reports whether the shift type is active on the given
// weekday (0=Monday), honoring the "nil means every day" rule.
func (s ShiftType) AppliesOnDay(weekday int) bool {
	if s.ApplicableDays == nil {
		return true
	}
	for _, d := range s.ApplicableDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Period is one element of the partition of the schedule horizon.
type Period struct {
	Index int
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the period's inclusive range intersects [a,b].
func (p Period) Overlaps(a, b time.Time) bool {
	return !p.End.Before(a) && !p.Start.After(b)
}

// PeriodType is the derived label of spec.md §3.
type PeriodType string

const (
	PeriodDay     PeriodType = "day"
	PeriodWeek    PeriodType = "week"
	PeriodBiweek  PeriodType = "biweek"
	PeriodMonth   PeriodType = "month"
	PeriodCustom  PeriodType = "custom"
)

// DerivePeriodType labels a sequence of periods from the length of the
// first period, per spec.md §3.
func DerivePeriodType(periods []Period) PeriodType {
	if len(periods) == 0 {
		return PeriodCustom
	}
	days := int(periods[0].End.Sub(periods[0].Start).Hours()/24) + 1
	switch {
	case days == 1:
		return PeriodDay
	case days == 7:
		return PeriodWeek
	case days == 14:
		return PeriodBiweek
	case days >= 28 && days <= 31:
		return PeriodMonth
	default:
		return PeriodCustom
	}
}

// BuildPeriods constructs a contiguous, non-overlapping, gap-free partition
// of [start, end] into fixed-length periods of periodDays days each. The
// final period may be shorter than periodDays if it does not evenly divide
// the horizon.
func BuildPeriods(start, end time.Time, periodDays int) ([]Period, error) {
	if periodDays <= 0 {
		return nil, shifterr.Invalid("period length must be > 0 days")
	}
	if end.Before(start) {
		return nil, shifterr.Invalid("end_date %s before start_date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	var periods []Period
	cursor := start
	idx := 0
	for !cursor.After(end) {
		periodEnd := cursor.AddDate(0, 0, periodDays-1)
		if periodEnd.After(end) {
			periodEnd = end
		}
		periods = append(periods, Period{Index: idx, Start: cursor, End: periodEnd})
		cursor = periodEnd.AddDate(0, 0, 1)
		idx++
	}
	return periods, nil
}

// Availability is a hard prohibition (unavailable) or informational hint
// (preferred/required) over a date range, optionally scoped to one shift
// type.
type Availability struct {
	WorkerID    string
	Start       time.Time
	End         time.Time
	Type        AvailabilityType
	ShiftTypeID string // empty means "all shift types"
}

// NewAvailability validates and constructs an Availability.
func NewAvailability(workerID string, start, end time.Time, kind AvailabilityType, shiftTypeID string) (Availability, error) {
	if workerID == "" {
		return Availability{}, shifterr.Invalid("availability: worker_id must not be empty")
	}
	if end.Before(start) {
		return Availability{}, shifterr.Invalid("availability for %s: end before start", workerID)
	}
	switch kind {
	case Unavailable, Preferred, Required:
	default:
		return Availability{}, shifterr.Invalid("availability for %s: unknown type %q", workerID, kind)
	}
	return Availability{WorkerID: workerID, Start: start, End: end, Type: kind, ShiftTypeID: shiftTypeID}, nil
}

// AppliesToShift reports whether this availability entry constrains the
// given shift type (an empty ShiftTypeID means "all").
func (a Availability) AppliesToShift(shiftTypeID string) bool {
	return a.ShiftTypeID == "" || a.ShiftTypeID == shiftTypeID
}

// SchedulingRequest is a worker's ask for/against a shift type over a date
// range, optionally pinned as hard.
type SchedulingRequest struct {
	WorkerID    string
	Start       time.Time
	End         time.Time
	Kind        RequestKind
	ShiftTypeID string
	Priority    int
	IsHard      *bool // nil defers to the constraint's own configuration
}

// NewSchedulingRequest validates and constructs a SchedulingRequest.
func NewSchedulingRequest(workerID string, start, end time.Time, kind RequestKind, shiftTypeID string, priority int, isHard *bool) (SchedulingRequest, error) {
	if workerID == "" {
		return SchedulingRequest{}, shifterr.Invalid("request: worker_id must not be empty")
	}
	if shiftTypeID == "" {
		return SchedulingRequest{}, shifterr.Invalid("request for %s: shift_type_id must not be empty", workerID)
	}
	if end.Before(start) {
		return SchedulingRequest{}, shifterr.Invalid("request for %s: end before start", workerID)
	}
	switch kind {
	case Positive, Negative:
	default:
		return SchedulingRequest{}, shifterr.Invalid("request for %s: unknown kind %q", workerID, kind)
	}
	if priority < 1 {
		return SchedulingRequest{}, shifterr.Invalid("request for %s: priority must be >= 1, got %d", workerID, priority)
	}
	return SchedulingRequest{
		WorkerID: workerID, Start: start, End: end, Kind: kind,
		ShiftTypeID: shiftTypeID, Priority: priority, IsHard: isHard,
	}, nil
}

// DesiredValue returns the assignment value {0,1} this request wants.
func (r SchedulingRequest) DesiredValue() float64 {
	if r.Kind == Positive {
		return 1
	}
	return 0
}

// ShiftFrequencyRequirement demands at least one of the listed shift types
// in every sliding window of MaxPeriodsBetween periods.
type ShiftFrequencyRequirement struct {
	WorkerID          string
	ShiftTypes        map[string]struct{}
	MaxPeriodsBetween int
}

// NewShiftFrequencyRequirement validates and constructs a requirement.
func NewShiftFrequencyRequirement(workerID string, shiftTypes []string, maxPeriodsBetween int) (ShiftFrequencyRequirement, error) {
	if workerID == "" {
		return ShiftFrequencyRequirement{}, shifterr.Invalid("shift frequency requirement: worker_id must not be empty")
	}
	set := toSet(shiftTypes)
	if len(set) == 0 {
		return ShiftFrequencyRequirement{}, shifterr.Invalid("shift frequency requirement for %s: shift_types must be nonempty", workerID)
	}
	if maxPeriodsBetween < 1 {
		return ShiftFrequencyRequirement{}, shifterr.Invalid("shift frequency requirement for %s: max_periods_between must be >= 1", workerID)
	}
	return ShiftFrequencyRequirement{WorkerID: workerID, ShiftTypes: set, MaxPeriodsBetween: maxPeriodsBetween}, nil
}

// OrderTriggerKind enumerates shift-order-preference trigger kinds.
type OrderTriggerKind string

const (
	TriggerShiftType     OrderTriggerKind = "shift_type"
	TriggerCategory      OrderTriggerKind = "category"
	TriggerUnavailability OrderTriggerKind = "unavailability"
)

// OrderDirection is the temporal direction of a shift-order preference.
type OrderDirection string

const (
	DirectionAfter  OrderDirection = "after"
	DirectionBefore OrderDirection = "before"
)

// PreferredKind enumerates what a shift-order preference prefers.
type PreferredKind string

const (
	PreferredShiftType PreferredKind = "shift_type"
	PreferredCategory  PreferredKind = "category"
)

// ShiftOrderPreference encodes "when trigger fires at period N, preferred
// is preferred at period N±1".
type ShiftOrderPreference struct {
	RuleID        string
	Trigger       OrderTriggerKind
	TriggerValue  string // shift type id or category name; empty for unavailability
	Direction     OrderDirection
	Preferred     PreferredKind
	PreferredValue string
	Priority      int
	WorkerIDs     map[string]struct{} // nil/empty means "all workers"
}

// NewShiftOrderPreference validates and constructs a preference rule.
func NewShiftOrderPreference(ruleID string, trigger OrderTriggerKind, triggerValue string, direction OrderDirection, preferred PreferredKind, preferredValue string, priority int, workerIDs []string) (ShiftOrderPreference, error) {
	if ruleID == "" {
		return ShiftOrderPreference{}, shifterr.Invalid("shift order preference: rule_id must not be empty")
	}
	switch trigger {
	case TriggerShiftType, TriggerCategory, TriggerUnavailability:
	default:
		return ShiftOrderPreference{}, shifterr.Invalid("rule %s: unknown trigger %q", ruleID, trigger)
	}
	if trigger != TriggerUnavailability && triggerValue == "" {
		return ShiftOrderPreference{}, shifterr.Invalid("rule %s: trigger_value required for trigger %q", ruleID, trigger)
	}
	switch direction {
	case DirectionAfter, DirectionBefore:
	default:
		return ShiftOrderPreference{}, shifterr.Invalid("rule %s: unknown direction %q", ruleID, direction)
	}
	switch preferred {
	case PreferredShiftType, PreferredCategory:
	default:
		return ShiftOrderPreference{}, shifterr.Invalid("rule %s: unknown preferred kind %q", ruleID, preferred)
	}
	if preferredValue == "" {
		return ShiftOrderPreference{}, shifterr.Invalid("rule %s: preferred_value must not be empty", ruleID)
	}
	if priority < 1 {
		return ShiftOrderPreference{}, shifterr.Invalid("rule %s: priority must be >= 1", ruleID)
	}
	var workers map[string]struct{}
	if len(workerIDs) > 0 {
		workers = toSet(workerIDs)
	}
	return ShiftOrderPreference{
		RuleID: ruleID, Trigger: trigger, TriggerValue: triggerValue,
		Direction: direction, Preferred: preferred, PreferredValue: preferredValue,
		Priority: priority, WorkerIDs: workers,
	}, nil
}

// AppliesToWorker reports whether the rule applies to workerID, honoring
// the nil/empty "all workers" case.
func (p ShiftOrderPreference) AppliesToWorker(workerID string) bool {
	if len(p.WorkerIDs) == 0 {
		return true
	}
	_, ok := p.WorkerIDs[workerID]
	return ok
}

// ValidateUnique rejects a shift-type slice with duplicate ids, surfacing
// the offending id, per spec.md §9 "Duplicate-ids and empty sets".
func ValidateUnique(shiftTypes []ShiftType) error {
	seen := make(map[string]struct{}, len(shiftTypes))
	for _, s := range shiftTypes {
		if _, ok := seen[s.ID]; ok {
			return shifterr.Invalid("duplicate shift type id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// FindShiftType looks up a shift type by id.
func FindShiftType(shiftTypes []ShiftType, id string) (ShiftType, bool) {
	for _, s := range shiftTypes {
		if s.ID == id {
			return s, true
		}
	}
	return ShiftType{}, false
}

// FindWorker looks up a worker by id.
func FindWorker(workers []Worker, id string) (Worker, bool) {
	for _, w := range workers {
		if w.ID == id {
			return w, true
		}
	}
	return Worker{}, false
}

// OverlappingPeriods returns the indices of periods whose inclusive range
// overlaps [a,b].
func OverlappingPeriods(periods []Period, a, b time.Time) []int {
	var out []int
	for _, p := range periods {
		if p.Overlaps(a, b) {
			out = append(out, p.Index)
		}
	}
	return out
}

// String implements fmt.Stringer for debug logging of entities.
func (w Worker) String() string { return fmt.Sprintf("Worker(%s)", w.ID) }
func (s ShiftType) String() string { return fmt.Sprintf("ShiftType(%s)", s.ID) }
