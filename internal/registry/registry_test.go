package registry

import "testing"

func TestRegisterBuiltinsOrdering(t *testing.T) {
	r := New()
	RegisterBuiltins(r)

	wantHard := []string{"coverage", "restriction", "availability"}
	if got := r.HardIDs(); !equalStrings(got, wantHard) {
		t.Errorf("HardIDs() = %v, want %v", got, wantHard)
	}

	entries := r.Resolve(nil)
	if len(entries) != len(r.HardIDs())+len(r.SoftIDs()) {
		t.Fatalf("Resolve returned %d entries, want %d", len(entries), len(r.HardIDs())+len(r.SoftIDs()))
	}
	for i, id := range r.HardIDs() {
		if entries[i].ID != id {
			t.Errorf("entry %d = %s, want hard constraint %s", i, entries[i].ID, id)
		}
		if !entries[i].Config.IsHard || !entries[i].Config.Enabled {
			t.Errorf("hard constraint %s must be enabled and hard by default", id)
		}
	}
}

func TestResolveIgnoresUnknownOverrideIDs(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	entries := r.Resolve(map[string]Override{"does-not-exist": {}})
	if len(entries) == 0 {
		t.Fatal("expected entries even with an unknown override id")
	}
}

func TestResolveAppliesOverrides(t *testing.T) {
	r := New()
	RegisterBuiltins(r)

	enabled := true
	weight := float64(777)
	overrides := map[string]Override{
		"fairness": {Enabled: &enabled, Weight: &weight, Parameters: map[string]any{"scope": "team"}},
	}
	entries := r.Resolve(overrides)

	var found *Entry
	for i := range entries {
		if entries[i].ID == "fairness" {
			found = &entries[i]
		}
	}
	if found == nil {
		t.Fatal("fairness entry not found")
	}
	if found.Config.Weight != 777 {
		t.Errorf("Weight = %v, want 777", found.Config.Weight)
	}
	if found.Config.Parameters["scope"] != "team" {
		t.Errorf("override parameter not merged in: %v", found.Config.Parameters)
	}
}

func TestMergeKeepsDefaultParametersNotOverridden(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	weight := float64(1)
	overrides := map[string]Override{
		"frequency": {Weight: &weight, Parameters: map[string]any{"extra": "value"}},
	}
	entries := r.Resolve(overrides)
	for _, e := range entries {
		if e.ID != "frequency" {
			continue
		}
		if e.Config.Parameters["max_periods_between"] != 4 {
			t.Errorf("default parameter was dropped by override merge: %v", e.Config.Parameters)
		}
		if e.Config.Parameters["extra"] != "value" {
			t.Errorf("override parameter missing: %v", e.Config.Parameters)
		}
	}
}

func TestClearResetsRegistry(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	r.Clear()
	if len(r.HardIDs()) != 0 || len(r.SoftIDs()) != 0 {
		t.Error("Clear should empty both catalogs")
	}
	if len(r.Resolve(nil)) != 0 {
		t.Error("Resolve on a cleared registry should return no entries")
	}
}

func TestSortedIDsIsAlphabetic(t *testing.T) {
	r := New()
	RegisterBuiltins(r)
	ids := r.SortedIDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("SortedIDs not sorted: %v before %v", ids[i-1], ids[i])
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
