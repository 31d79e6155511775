package stats_test

import (
	"testing"

	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/ietsi/tablero/internal/domain/stats"
	"github.com/ietsi/tablero/internal/domain/status"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	classifier, err := status.NewClassifier(status.DefaultRuleSet())
	require.NoError(t, err)

	projects := []project.Project{
		{PriorityLine: "Cáncer", Network: "Red A", Status: "En Ejecución"},
		{PriorityLine: "Cáncer", Network: "Red B", Status: "Validación"},
		{PriorityLine: "Diabetes", Network: "Red A", Status: "RRI 1 Completo"},
		{PriorityLine: "Diabetes", Network: "Red A", Status: "En Elaboración"},
	}

	summary := stats.Summarize(projects, classifier)
	require.Equal(t, 4, summary.Total)
	require.Equal(t, 2, summary.Active)
	require.Equal(t, 1, summary.Completed)
	require.Equal(t, 50.0, summary.ActivePct)
	require.Equal(t, 25.0, summary.CompletedPct)
	require.Equal(t, 2, summary.PriorityLines)
	require.Equal(t, 2, summary.Networks)
	require.Equal(t, 4, summary.Statuses)
}

func TestSummarize_EmptySetHasZeroPercentages(t *testing.T) {
	classifier, err := status.NewClassifier(status.DefaultRuleSet())
	require.NoError(t, err)

	summary := stats.Summarize(nil, classifier)
	require.Equal(t, 0, summary.Total)
	require.Equal(t, 0.0, summary.ActivePct)
	require.Equal(t, 0.0, summary.CompletedPct)
}
