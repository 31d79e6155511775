package stats

import (
	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/ietsi/tablero/internal/domain/status"
)

// Summary holds the headline metrics shown above the board.
type Summary struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	ActivePct     float64 `json:"active_pct"`
	Completed     int     `json:"completed"`
	CompletedPct  float64 `json:"completed_pct"`
	PriorityLines int     `json:"priority_lines"`
	Networks      int     `json:"networks"`
	Statuses      int     `json:"statuses"`
}

// Summarize computes the summary over a (possibly filtered) project set.
// Percentages over an empty set are 0, not NaN.
func Summarize(projects []project.Project, classifier *status.Classifier) Summary {
	summary := Summary{Total: len(projects)}

	for _, proj := range projects {
		switch classifier.Classify(proj.Status) {
		case status.BucketActive:
			summary.Active++
		case status.BucketCompleted:
			summary.Completed++
		}
	}

	summary.PriorityLines = len(project.DistinctValues(projects, project.FieldPriorityLine))
	summary.Networks = len(project.DistinctValues(projects, project.FieldNetwork))
	summary.Statuses = len(project.DistinctValues(projects, project.FieldStatus))

	if summary.Total > 0 {
		summary.ActivePct = round1(float64(summary.Active) / float64(summary.Total) * 100)
		summary.CompletedPct = round1(float64(summary.Completed) / float64(summary.Total) * 100)
	}
	return summary
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
