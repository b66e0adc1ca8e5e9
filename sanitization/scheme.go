package sanitization

import "sort"

// Scheme is an ordered, non-empty, immutable list of stages under a human
// description.
type Scheme struct {
	Description string
	Stages      []Stage
}

// Registry is a name -> Scheme lookup, iterable in sorted key order. It is
// built once (see BuiltinRegistry) and treated as immutable afterward.
type Registry struct {
	schemes map[string]Scheme
}

// NewRegistry wraps a name -> Scheme map, taking ownership of it.
func NewRegistry(schemes map[string]Scheme) *Registry {
	return &Registry{schemes: schemes}
}

// Find looks up a scheme by its exact lowercase name.
func (r *Registry) Find(name string) (Scheme, bool) {
	s, ok := r.schemes[name]
	return s, ok
}

// Names returns every registered scheme name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a new Registry containing r's schemes overlaid with extra's
// (extra wins on name collision). Used to add operator-defined schemes on
// top of the built-ins (see package config).
func (r *Registry) Merge(extra map[string]Scheme) *Registry {
	merged := make(map[string]Scheme, len(r.schemes)+len(extra))
	for k, v := range r.schemes {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return NewRegistry(merged)
}

// BuiltinRegistry returns the registry of stable, built-in schemes.
func BuiltinRegistry() *Registry {
	return NewRegistry(map[string]Scheme{
		"zero": {
			Description: "Single zeroes fill",
			Stages:      []Stage{Zero()},
		},
		"one": {
			Description: "Single 0xFF fill",
			Stages:      []Stage{One()},
		},
		"random": {
			Description: "Single random fill",
			Stages:      []Stage{Random()},
		},
		"random2x": {
			Description: "Double random fill",
			Stages:      []Stage{Random(), Random()},
		},
		"badblocks": {
			Description: "Inspired by the badblocks tool's -w action",
			Stages:      []Stage{Constant(0xAA), Constant(0x55), Constant(0xFF), Constant(0x00)},
		},
		"gost": {
			Description: "GOST R 50739-95 (fake)",
			Stages:      []Stage{Zero(), Random()},
		},
		"dod": {
			Description: "DoD 5220.22-M / CSEC ITSG-06 / NAVSO P-5239-26",
			Stages:      []Stage{Zero(), One(), Random()},
		},
		"vsitr": {
			Description: "VSITR / RCMP TSSIT OPS-II",
			Stages:      []Stage{Zero(), One(), Zero(), One(), Zero(), One(), Random()},
		},
	})
}
