package constraints

import "testing"

func TestIntParamTakesIntInt64AndFloat64(t *testing.T) {
	params := map[string]any{"a": 3, "b": int64(4), "c": 5.0, "d": "nope"}
	if got := intParam(params, "a", -1); got != 3 {
		t.Errorf("int case: got %d, want 3", got)
	}
	if got := intParam(params, "b", -1); got != 4 {
		t.Errorf("int64 case: got %d, want 4", got)
	}
	if got := intParam(params, "c", -1); got != 5 {
		t.Errorf("float64 case: got %d, want 5", got)
	}
	if got := intParam(params, "d", -1); got != -1 {
		t.Errorf("unrecognized type should fall back, got %d", got)
	}
	if got := intParam(params, "missing", 7); got != 7 {
		t.Errorf("missing key should fall back, got %d", got)
	}
}

func TestStringSliceParamTakesStringSliceAndAnySlice(t *testing.T) {
	params := map[string]any{
		"a": []string{"x", "y"},
		"b": []any{"p", "q", 3},
		"c": "not-a-slice",
	}
	got := stringSliceParam(params, "a")
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("[]string case: got %v", got)
	}
	got = stringSliceParam(params, "b")
	if len(got) != 2 || got[0] != "p" || got[1] != "q" {
		t.Errorf("[]any case should drop non-string entries, got %v", got)
	}
	if got := stringSliceParam(params, "c"); got != nil {
		t.Errorf("unrecognized type should yield nil, got %v", got)
	}
	if got := stringSliceParam(params, "missing"); got != nil {
		t.Errorf("missing key should yield nil, got %v", got)
	}
}

func TestToSetDeduplicates(t *testing.T) {
	set := toSet([]string{"a", "b", "a"})
	if len(set) != 2 {
		t.Errorf("expected 2 distinct entries, got %d", len(set))
	}
}

func TestEventPriorityDefaultsToOne(t *testing.T) {
	if got := (Config{}).eventPriority(); got != 1 {
		t.Errorf("no parameters: got %d, want 1", got)
	}
	cfg := Config{Parameters: map[string]any{"priority": 5}}
	if got := cfg.eventPriority(); got != 5 {
		t.Errorf("explicit priority: got %d, want 5", got)
	}
	cfg = Config{Parameters: map[string]any{"priority": -1}}
	if got := cfg.eventPriority(); got != 1 {
		t.Errorf("non-positive priority should fall back to 1, got %d", got)
	}
}
