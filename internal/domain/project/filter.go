package project

import "sort"

// All is the sentinel meaning "no constraint on this field". An empty
// string is treated the same way so HTTP handlers can pass query params
// straight through.
const All = "all"

// Filter holds the three single-select equality constraints the dashboard
// exposes. Constraints combine with logical AND; Apply is a pure function
// of the base set and never mutates it.
type Filter struct {
	PriorityLine string `json:"priority_line,omitempty"`
	Status       string `json:"status,omitempty"`
	Network      string `json:"network,omitempty"`
}

// IsZero reports whether no constraint is active.
func (f Filter) IsZero() bool {
	return !active(f.PriorityLine) && !active(f.Status) && !active(f.Network)
}

// Apply returns the subsequence of projects satisfying every active
// constraint, preserving input order.
func (f Filter) Apply(projects []Project) []Project {
	if f.IsZero() {
		return projects
	}
	out := make([]Project, 0, len(projects))
	for _, proj := range projects {
		if f.matches(proj) {
			out = append(out, proj)
		}
	}
	return out
}

func (f Filter) matches(proj Project) bool {
	if active(f.PriorityLine) && proj.PriorityLine != f.PriorityLine {
		return false
	}
	if active(f.Status) && proj.Status != f.Status {
		return false
	}
	if active(f.Network) && proj.Network != f.Network {
		return false
	}
	return true
}

func active(value string) bool {
	return value != "" && value != All
}

// DistinctValues returns the sorted distinct non-empty values of a field,
// used to populate the dashboard's select controls.
func DistinctValues(projects []Project, f Field) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, proj := range projects {
		v := proj.Value(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
