// Package status classifies free-text protocol status strings: coarse
// buckets for the summary metrics and kanban columns for the board view.
package status

import (
	"fmt"
	"regexp"
)

// Bucket is the coarse classification of a status string.
type Bucket string

const (
	BucketActive    Bucket = "active"
	BucketCompleted Bucket = "completed"
	BucketOther     Bucket = "other"
)

// RuleSet holds the two case-insensitive pattern sets driving the coarse
// classification. The sets are configuration: observed dashboard variants
// shipped different patterns, so they are not baked into the logic.
type RuleSet struct {
	Completed []string `yaml:"completed"`
	Active    []string `yaml:"active"`
}

// DefaultRuleSet matches the patterns of the canonical export. Accented and
// unaccented spellings both occur in the data.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Completed: []string{
			`reporte.*resultado`,
			`completo`,
			`irri.*completo`,
		},
		Active: []string{
			`ejecuci[oó]n`,
			`enviado.*comité`,
			`validaci[oó]n`,
		},
	}
}

// Classifier buckets status strings. A status can match both pattern sets;
// Completed is checked first, so it wins ties.
type Classifier struct {
	completed []*regexp.Regexp
	active    []*regexp.Regexp
}

// NewClassifier compiles the rule set. Patterns are matched
// case-insensitively anywhere in the status string.
func NewClassifier(rules RuleSet) (*Classifier, error) {
	completed, err := compilePatterns(rules.Completed)
	if err != nil {
		return nil, fmt.Errorf("completed patterns: %w", err)
	}
	active, err := compilePatterns(rules.Active)
	if err != nil {
		return nil, fmt.Errorf("active patterns: %w", err)
	}
	return &Classifier{completed: completed, active: active}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(`(?i)` + pattern)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", pattern, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Classify maps a status string to exactly one bucket.
func (c *Classifier) Classify(status string) Bucket {
	for _, re := range c.completed {
		if re.MatchString(status) {
			return BucketCompleted
		}
	}
	for _, re := range c.active {
		if re.MatchString(status) {
			return BucketActive
		}
	}
	return BucketOther
}
