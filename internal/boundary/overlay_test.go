package boundary

import "testing"

func TestParseOverlayJSON(t *testing.T) {
	raw := []byte(`{"fairness": {"enabled": true, "weight": 250, "parameters": {"scope": "team"}}}`)
	o, err := ParseOverlayJSON(raw)
	if err != nil {
		t.Fatal(err)
	}
	entry, ok := o["fairness"]
	if !ok {
		t.Fatal("expected a fairness entry")
	}
	if entry.Enabled == nil || !*entry.Enabled {
		t.Error("expected enabled=true")
	}
	if entry.Weight == nil || *entry.Weight != 250 {
		t.Error("expected weight=250")
	}
}

func TestParseOverlayYAML(t *testing.T) {
	raw := []byte("fairness:\n  enabled: true\n  weight: 250\n")
	o, err := ParseOverlayYAML(raw)
	if err != nil {
		t.Fatal(err)
	}
	entry, ok := o["fairness"]
	if !ok {
		t.Fatal("expected a fairness entry")
	}
	if entry.Enabled == nil || !*entry.Enabled {
		t.Error("expected enabled=true")
	}
}

func TestOverlayToOverrides(t *testing.T) {
	enabled := true
	weight := 42.0
	o := Overlay{"fairness": OverlayEntry{Enabled: &enabled, Weight: &weight}}
	overrides := o.ToOverrides()
	got, ok := overrides["fairness"]
	if !ok {
		t.Fatal("expected a fairness override")
	}
	if got.Enabled == nil || !*got.Enabled || got.Weight == nil || *got.Weight != 42 {
		t.Errorf("unexpected override: %+v", got)
	}
}

func TestParseOverlayJSONRejectsMalformed(t *testing.T) {
	if _, err := ParseOverlayJSON([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
