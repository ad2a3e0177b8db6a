// Package registry catalogs constraints (hard/soft, default config) and
// instantiates them with a per-run overlay (spec.md §4.D). A seeded
// registry is process-wide but read-only after construction; an embedder
// that needs isolated tests clears and reseeds it between runs, never
// during one (spec.md §9 "Registry as process-wide state").
package registry

import (
	"sort"

	"github.com/shiftsolver/core/internal/constraints"
)

// Registration pairs a constraint implementation with its default config.
type Registration struct {
	Constraint constraints.Constraint
	Default    constraints.Config
}

// Registry holds the hard and soft constraint catalogs in stable
// registration order.
type Registry struct {
	hardOrder []string
	softOrder []string
	hard      map[string]Registration
	soft      map[string]Registration
}

// New returns an empty registry. Use RegisterBuiltins to seed it with the
// constraints of spec.md §4.C.
func New() *Registry {
	return &Registry{
		hard: map[string]Registration{},
		soft: map[string]Registration{},
	}
}

// RegisterHard adds a constraint to the hard catalog in registration
// order with an enabled, hard default config (spec.md §4.C.1-4.C.3).
// Resolve merges per-run overrides into hard entries the same way as into
// soft ones.
func (r *Registry) RegisterHard(c constraints.Constraint, defaultParams map[string]any) {
	id := c.ID()
	if _, exists := r.hard[id]; !exists {
		r.hardOrder = append(r.hardOrder, id)
	}
	r.hard[id] = Registration{
		Constraint: c,
		Default:    constraints.Config{Enabled: true, IsHard: true, Weight: 0, Parameters: defaultParams},
	}
}

// RegisterSoft adds a constraint to the soft catalog with the given
// default enabled/hard/weight/parameters.
func (r *Registry) RegisterSoft(c constraints.Constraint, enabled, isHard bool, weight float64, defaultParams map[string]any) {
	id := c.ID()
	if _, exists := r.soft[id]; !exists {
		r.softOrder = append(r.softOrder, id)
	}
	r.soft[id] = Registration{
		Constraint: c,
		Default:    constraints.Config{Enabled: enabled, IsHard: isHard, Weight: weight, Parameters: defaultParams},
	}
}

// Clear resets the registry to empty. Callers reseed with RegisterBuiltins
// between runs, not during one, per spec.md §9.
func (r *Registry) Clear() {
	r.hardOrder = nil
	r.softOrder = nil
	r.hard = map[string]Registration{}
	r.soft = map[string]Registration{}
}

// Override is a per-run configuration patch for one constraint id
// (spec.md §6.3). Nil fields fall back to the registry's default.
type Override struct {
	Enabled    *bool
	IsHard     *bool
	Weight     *float64
	Parameters map[string]any
}

// Entry is one constraint ready to be applied: its implementation and its
// merged configuration.
type Entry struct {
	ID         string
	Constraint constraints.Constraint
	Config     constraints.Config
}

// Resolve returns the ordered list of hard constraints followed by the
// ordered list of soft constraints, each merged with overrides. Unknown
// override ids are silently ignored, per spec.md §6.3.
func (r *Registry) Resolve(overrides map[string]Override) []Entry {
	var out []Entry
	for _, id := range r.hardOrder {
		reg := r.hard[id]
		out = append(out, Entry{ID: id, Constraint: reg.Constraint, Config: merge(reg.Default, overrides[id])})
	}
	for _, id := range r.softOrder {
		reg := r.soft[id]
		out = append(out, Entry{ID: id, Constraint: reg.Constraint, Config: merge(reg.Default, overrides[id])})
	}
	return out
}

// HardIDs and SoftIDs expose registration order for diagnostics/tests.
func (r *Registry) HardIDs() []string { return append([]string(nil), r.hardOrder...) }
func (r *Registry) SoftIDs() []string { return append([]string(nil), r.softOrder...) }

// SortedIDs returns every registered id in alphabetic order, giving a
// stable listing of the constraint catalog.
func (r *Registry) SortedIDs() []string {
	all := append(append([]string{}, r.hardOrder...), r.softOrder...)
	sort.Strings(all)
	return all
}

func merge(base constraints.Config, o Override) constraints.Config {
	cfg := base
	// Parameters are merged shallowly: an override key replaces the
	// default's value for that key, leaving the rest of the defaults
	// intact, matching the "unset fields fall back to defaults" rule of
	// spec.md §6.3 at the parameter level too.
	if len(o.Parameters) > 0 {
		merged := make(map[string]any, len(base.Parameters)+len(o.Parameters))
		for k, v := range base.Parameters {
			merged[k] = v
		}
		for k, v := range o.Parameters {
			merged[k] = v
		}
		cfg.Parameters = merged
	}
	if o.Enabled != nil {
		cfg.Enabled = *o.Enabled
	}
	if o.IsHard != nil {
		cfg.IsHard = *o.IsHard
	}
	if o.Weight != nil {
		cfg.Weight = *o.Weight
	}
	return cfg
}

// RegisterBuiltins seeds the registry with every constraint of spec.md
// §4.C: coverage/restriction/availability as always-hard, the rest as
// soft-by-default (request is soft by default but is auto-enabled by the
// orchestrator whenever requests are present, per spec.md §4.C.6).
func RegisterBuiltins(r *Registry) {
	r.RegisterHard(constraints.Coverage{}, nil)
	r.RegisterHard(constraints.Restriction{}, nil)
	r.RegisterHard(constraints.Availability{}, nil)

	r.RegisterSoft(constraints.Fairness{}, true, false, 100, nil)
	r.RegisterSoft(constraints.Frequency{}, false, false, 100, map[string]any{"max_periods_between": 4})
	r.RegisterSoft(constraints.Request{}, false, false, 500, nil)
	r.RegisterSoft(constraints.Sequence{}, false, false, 50, nil)
	r.RegisterSoft(constraints.MaxAbsence{}, false, false, 100, map[string]any{"max_periods_between": 5})
	r.RegisterSoft(constraints.ShiftFrequency{}, true, false, 1000, nil)
	r.RegisterSoft(constraints.ShiftOrder{}, false, false, 50, nil)
}
