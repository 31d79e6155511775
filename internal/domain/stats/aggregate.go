// Package stats computes the dashboard's derived numbers: frequency
// aggregations over one field and the headline summary metrics.
package stats

import (
	"sort"
	"strings"

	"github.com/ietsi/tablero/internal/domain/project"
)

// RedactionToken marks a withheld name in the source data. Any value
// containing it (case-insensitive) is invalid for by-person aggregations.
const RedactionToken = "xxxxx"

// Entry is one aggregation bucket.
type Entry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Option configures an aggregation.
type Option func(*options)

type options struct {
	validity func(string) bool
	limit    int
}

// WithValidity restricts the aggregation to values the predicate accepts.
func WithValidity(pred func(string) bool) Option {
	return func(o *options) { o.validity = pred }
}

// WithLimit truncates to the n highest-count entries, applied after ordering.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// PersonValidity accepts non-empty values without the redaction token.
func PersonValidity(value string) bool {
	if value == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(value), RedactionToken)
}

// CountBy counts projects per distinct value of a field. Entries are
// ordered by descending count; ties keep first-seen order so the result is
// deterministic for a given input order.
func CountBy(projects []project.Project, field project.Field, opts ...Option) []Entry {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	index := make(map[string]int)
	var entries []Entry
	for _, proj := range projects {
		value := proj.Value(field)
		if o.validity != nil && !o.validity(value) {
			continue
		}
		i, ok := index[value]
		if !ok {
			i = len(entries)
			index[value] = i
			entries = append(entries, Entry{Value: value})
		}
		entries[i].Count++
	}

	// Stable sort over first-seen order implements the tie-break rule.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if o.limit > 0 && len(entries) > o.limit {
		entries = entries[:o.limit]
	}
	return entries
}
