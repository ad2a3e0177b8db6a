// Package boundary implements the external interfaces of spec.md §6: the
// Schedule JSON shape, the tabular loader contract, the configuration
// overlay and the solver parameters exposed to a caller. Everything here is
// a thin adapter around internal/domain and internal/orchestrator types —
// no business rule lives in this package.
package boundary

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/shifterr"
)

const dateLayout = "2006-01-02"

// ScheduleDocument is the wire shape of spec.md §6.1.
type ScheduleDocument struct {
	ScheduleID string                          `json:"schedule_id"`
	StartDate  string                          `json:"start_date"`
	EndDate    string                          `json:"end_date"`
	Periods    []SchedulePeriod                `json:"periods"`
	Statistics map[string]WorkerStatisticsWire `json:"statistics"`
}

// SchedulePeriod is one period entry of the Schedule JSON.
type SchedulePeriod struct {
	PeriodIndex   int                          `json:"period_index"`
	PeriodStart   string                       `json:"period_start"`
	PeriodEnd     string                       `json:"period_end"`
	Assignments   map[string][]AssignmentEntry `json:"assignments"`
}

// AssignmentEntry is one shift instance within a period's assignments map.
type AssignmentEntry struct {
	ShiftTypeID string `json:"shift_type_id"`
	Date        string `json:"date"`
}

// WorkerStatisticsWire mirrors domain.WorkerStatistics for JSON.
type WorkerStatisticsWire struct {
	TotalShifts   int            `json:"total_shifts"`
	PeriodsWorked int            `json:"periods_worked"`
	PerShiftType  map[string]int `json:"per_shift_type"`
}

// scheduleSchema is the minimal JSON Schema used to reject malformed
// Schedule JSON before it is unmarshaled into domain types, per spec.md
// §6.1 validated via the SDK's transitive gojsonschema dependency.
const scheduleSchema = `{
  "type": "object",
  "required": ["schedule_id", "start_date", "end_date", "periods"],
  "properties": {
    "schedule_id": {"type": "string"},
    "start_date": {"type": "string"},
    "end_date": {"type": "string"},
    "periods": {"type": "array"}
  }
}`

// ExportSchedule converts a domain.Schedule into its wire representation.
func ExportSchedule(sch domain.Schedule) ScheduleDocument {
	doc := ScheduleDocument{
		ScheduleID: sch.ScheduleID,
		StartDate:  sch.Start.Format(dateLayout),
		EndDate:    sch.End.Format(dateLayout),
		Periods:    make([]SchedulePeriod, 0, len(sch.Periods)),
		Statistics: make(map[string]WorkerStatisticsWire, len(sch.Statistics)),
	}
	for wid, st := range sch.Statistics {
		doc.Statistics[wid] = WorkerStatisticsWire{
			TotalShifts:   st.TotalShifts,
			PeriodsWorked: st.PeriodsWorked,
			PerShiftType:  st.PerShiftType,
		}
	}
	for _, pa := range sch.Periods {
		wire := SchedulePeriod{
			PeriodIndex: pa.Index,
			PeriodStart: pa.Start.Format(dateLayout),
			PeriodEnd:   pa.End.Format(dateLayout),
			Assignments: make(map[string][]AssignmentEntry, len(pa.Assignments)),
		}
		for wid, instances := range pa.Assignments {
			entries := make([]AssignmentEntry, 0, len(instances))
			for _, inst := range instances {
				entries = append(entries, AssignmentEntry{
					ShiftTypeID: inst.ShiftTypeID,
					Date:        inst.Date.Format(dateLayout),
				})
			}
			wire.Assignments[wid] = entries
		}
		doc.Periods = append(doc.Periods, wire)
	}
	return doc
}

// MarshalSchedule exports and serializes a domain.Schedule, generating a
// schedule_id via uuid when the schedule does not carry one.
func MarshalSchedule(sch domain.Schedule) ([]byte, error) {
	if sch.ScheduleID == "" {
		sch.ScheduleID = uuid.NewString()
	}
	return json.MarshalIndent(ExportSchedule(sch), "", "  ")
}

// ValidateScheduleJSON checks raw bytes against the Schedule JSON Schema
// before attempting to unmarshal, surfacing a BoundaryError with the
// failing JSON pointer(s).
func ValidateScheduleJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(scheduleSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return shifterr.Wrap(shifterr.BoundaryError, err, "schedule JSON: schema validation failed")
	}
	if !result.Valid() {
		msg := "schedule JSON failed validation"
		if len(result.Errors()) > 0 {
			msg = result.Errors()[0].String()
		}
		return shifterr.Boundary("", -1, "%s", msg)
	}
	return nil
}

// ImportSchedule parses raw Schedule JSON bytes into a domain.Schedule,
// validating against the schema first.
func ImportSchedule(raw []byte) (domain.Schedule, error) {
	if err := ValidateScheduleJSON(raw); err != nil {
		return domain.Schedule{}, err
	}
	var doc ScheduleDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Schedule{}, shifterr.Wrap(shifterr.BoundaryError, err, "schedule JSON: malformed document")
	}

	start, err := time.Parse(dateLayout, doc.StartDate)
	if err != nil {
		return domain.Schedule{}, shifterr.Boundary("", -1, "schedule: invalid start_date %q", doc.StartDate)
	}
	end, err := time.Parse(dateLayout, doc.EndDate)
	if err != nil {
		return domain.Schedule{}, shifterr.Boundary("", -1, "schedule: invalid end_date %q", doc.EndDate)
	}

	periods := make([]domain.PeriodAssignment, len(doc.Periods))
	statistics := make(map[string]domain.WorkerStatistics, len(doc.Statistics))
	for wid, st := range doc.Statistics {
		statistics[wid] = domain.WorkerStatistics{
			TotalShifts:   st.TotalShifts,
			PeriodsWorked: st.PeriodsWorked,
			PerShiftType:  st.PerShiftType,
		}
	}

	shiftTypeSeen := map[string]struct{}{}
	workerSeen := map[string]struct{}{}

	for i, wire := range doc.Periods {
		pStart, err := time.Parse(dateLayout, wire.PeriodStart)
		if err != nil {
			return domain.Schedule{}, shifterr.Boundary("", wire.PeriodIndex, "schedule: invalid period_start %q", wire.PeriodStart)
		}
		pEnd, err := time.Parse(dateLayout, wire.PeriodEnd)
		if err != nil {
			return domain.Schedule{}, shifterr.Boundary("", wire.PeriodIndex, "schedule: invalid period_end %q", wire.PeriodEnd)
		}
		pa := domain.PeriodAssignment{
			Index:       wire.PeriodIndex,
			Start:       pStart,
			End:         pEnd,
			Assignments: make(map[string][]domain.ShiftInstance, len(wire.Assignments)),
		}
		for wid, entries := range wire.Assignments {
			workerSeen[wid] = struct{}{}
			instances := make([]domain.ShiftInstance, 0, len(entries))
			for _, e := range entries {
				shiftTypeSeen[e.ShiftTypeID] = struct{}{}
				date, err := time.Parse(dateLayout, e.Date)
				if err != nil {
					return domain.Schedule{}, shifterr.Boundary("", wire.PeriodIndex, "schedule: invalid assignment date %q for worker %s", e.Date, wid)
				}
				instances = append(instances, domain.ShiftInstance{
					ShiftTypeID: e.ShiftTypeID,
					PeriodIndex: wire.PeriodIndex,
					Date:        date,
					WorkerID:    wid,
				})
			}
			pa.Assignments[wid] = instances
		}
		periods[i] = pa
	}

	workers := make([]domain.Worker, 0, len(workerSeen))
	for wid := range workerSeen {
		workers = append(workers, domain.Worker{ID: wid})
	}
	shiftTypes := make([]domain.ShiftType, 0, len(shiftTypeSeen))
	for sid := range shiftTypeSeen {
		shiftTypes = append(shiftTypes, domain.ShiftType{ID: sid})
	}

	periodsForTypeDerivation := make([]domain.Period, len(periods))
	for i, p := range periods {
		periodsForTypeDerivation[i] = domain.Period{Index: p.Index, Start: p.Start, End: p.End}
	}

	return domain.Schedule{
		ScheduleID: doc.ScheduleID,
		Start:      start,
		End:        end,
		PeriodType: domain.DerivePeriodType(periodsForTypeDerivation),
		Periods:    periods,
		Workers:    workers,
		ShiftTypes: shiftTypes,
		Statistics: statistics,
	}, nil
}
