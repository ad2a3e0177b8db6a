package constraints

import (
	"testing"
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/shiftsolver/core/internal/domain"
	"github.com/shiftsolver/core/internal/sctx"
	"github.com/shiftsolver/core/internal/variables"
)

// testContext builds a minimal, valid sctx.Context over 2 daily periods
// starting 2026-01-01, with the given workers and shift types and no other
// domain data. Tests that need availabilities/requests/etc. set those
// fields on the returned context directly.
func testContext(t *testing.T, workers []domain.Worker, shiftTypes []domain.ShiftType) sctx.Context {
	t.Helper()
	return testContextN(t, workers, shiftTypes, 2)
}

// testContextN is testContext with a caller-chosen period count.
func testContextN(t *testing.T, workers []domain.Worker, shiftTypes []domain.ShiftType, numPeriods int) sctx.Context {
	t.Helper()
	start, _ := time.Parse("2006-01-02", "2026-01-01")
	end := start.AddDate(0, 0, numPeriods-1)
	periods, err := domain.BuildPeriods(start, end, 1)
	if err != nil {
		t.Fatal(err)
	}
	m := mip.NewModel()
	vars, err := variables.Build(m, workers, shiftTypes, len(periods))
	if err != nil {
		t.Fatal(err)
	}
	return sctx.Context{
		Model:      m,
		Vars:       vars,
		Workers:    workers,
		ShiftTypes: shiftTypes,
		NumPeriods: len(periods),
		Periods:    periods,
	}
}

func oneWorkerOneShift(t *testing.T) ([]domain.Worker, []domain.ShiftType) {
	t.Helper()
	w, err := domain.NewWorker("w1", "Ann", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := domain.NewShiftType("day", "Day", "ops", 8, 1, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	return []domain.Worker{w}, []domain.ShiftType{s}
}

func twoWorkersOneShift(t *testing.T) ([]domain.Worker, []domain.ShiftType) {
	t.Helper()
	w1, err := domain.NewWorker("w1", "Ann", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := domain.NewWorker("w2", "Bo", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := domain.NewShiftType("day", "Day", "ops", 8, 1, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	return []domain.Worker{w1, w2}, []domain.ShiftType{s}
}
