package constraints

import "testing"

func TestFairnessNoOpWithAtMostOneWorker(t *testing.T) {
	workers, shiftTypes := oneWorkerOneShift(t)
	ctx := testContext(t, workers, shiftTypes)

	result, err := (Fairness{}).Apply(Config{Enabled: true}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 0 {
		t.Errorf("expected no spread variable with a single worker, got %d", len(result.ViolationVariables))
	}
}

func TestFairnessRecordsASingleSpreadVariable(t *testing.T) {
	workers, shiftTypes := twoWorkersOneShift(t)
	ctx := testContext(t, workers, shiftTypes)

	result, err := (Fairness{}).Apply(Config{Enabled: true}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 1 {
		t.Fatalf("expected exactly 1 violation variable (spread), got %d", len(result.ViolationVariables))
	}
	if _, ok := result.ViolationVariables[SpreadViolationName]; !ok {
		t.Errorf("expected the violation to be keyed %q", SpreadViolationName)
	}
}

func TestFairnessDisabledIsNoOp(t *testing.T) {
	workers, shiftTypes := twoWorkersOneShift(t)
	ctx := testContext(t, workers, shiftTypes)

	result, err := (Fairness{}).Apply(Config{Enabled: false}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.ViolationVariables) != 0 {
		t.Errorf("expected no violations when disabled, got %d", len(result.ViolationVariables))
	}
}
