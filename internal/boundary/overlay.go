package boundary

import (
	"encoding/json"

	"gopkg.in/yaml.v2"

	"github.com/shiftsolver/core/internal/registry"
	"github.com/shiftsolver/core/internal/shifterr"
)

// OverlayEntry is the wire shape of one constraint override (spec.md §6.3).
// Pointer fields distinguish "unset, fall back to default" from an explicit
// false/zero value.
type OverlayEntry struct {
	Enabled    *bool          `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	IsHard     *bool          `json:"is_hard,omitempty" yaml:"is_hard,omitempty"`
	Weight     *float64       `json:"weight,omitempty" yaml:"weight,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Overlay is the per-run constraint configuration map of spec.md §6.3,
// keyed by constraint id.
type Overlay map[string]OverlayEntry

// ToOverrides converts the wire overlay into registry.Override values.
// Unknown ids are passed through unchanged; the registry itself ignores
// ids it does not recognize, per spec.md §6.3.
func (o Overlay) ToOverrides() map[string]registry.Override {
	out := make(map[string]registry.Override, len(o))
	for id, entry := range o {
		out[id] = registry.Override{
			Enabled:    entry.Enabled,
			IsHard:     entry.IsHard,
			Weight:     entry.Weight,
			Parameters: entry.Parameters,
		}
	}
	return out
}

// ParseOverlayJSON parses a JSON-encoded constraint configuration overlay.
func ParseOverlayJSON(raw []byte) (Overlay, error) {
	var o Overlay
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, shifterr.Wrap(shifterr.BoundaryError, err, "constraint overlay: malformed JSON")
	}
	return o, nil
}

// ParseOverlayYAML parses a YAML-encoded constraint configuration overlay,
// the operator-facing equivalent of the JSON overlay mirroring the golden
// harness's own workflow-configuration.yml loader. yaml.v2 decodes nested
// mappings under "parameters" as map[interface{}]interface{}; callers that
// need map[string]any there should round-trip through JSON first.
func ParseOverlayYAML(raw []byte) (Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(raw, &o); err != nil {
		return nil, shifterr.Wrap(shifterr.BoundaryError, err, "constraint overlay: malformed YAML")
	}
	return o, nil
}
