package status_test

import (
	"testing"

	"github.com/ietsi/tablero/internal/domain/status"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Buckets(t *testing.T) {
	classifier, err := status.NewClassifier(status.DefaultRuleSet())
	require.NoError(t, err)

	cases := map[string]status.Bucket{
		"En Ejecución":               status.BucketActive,
		"En Ejecucion":               status.BucketActive,
		"Enviado al Comité de Ética": status.BucketActive,
		"Validación":                 status.BucketActive,
		"Reporte de Resultado":       status.BucketCompleted,
		"RRI 1 Completo":             status.BucketCompleted,
		"IRRI completo":              status.BucketCompleted,
		"En Elaboración":             status.BucketOther,
		"":                           status.BucketOther,
	}
	for input, want := range cases {
		require.Equal(t, want, classifier.Classify(input), "status %q", input)
	}
}

func TestClassifier_CompletedWinsDoubleMatch(t *testing.T) {
	classifier, err := status.NewClassifier(status.RuleSet{
		Completed: []string{"completo"},
		Active:    []string{"ejecuci[oó]n"},
	})
	require.NoError(t, err)

	// Matches both sets; the fixed priority order resolves it.
	require.Equal(t, status.BucketCompleted, classifier.Classify("En Ejecución - RRI completo"))
}

func TestClassifier_TotalAndExclusive(t *testing.T) {
	classifier, err := status.NewClassifier(status.DefaultRuleSet())
	require.NoError(t, err)

	statuses := []string{
		"En Ejecución", "RRI 1 Completo", "Validación", "En Elaboración",
		"Manuscrito", "Pendiente de Autorización", "cualquier cosa", "",
	}
	for _, s := range statuses {
		bucket := classifier.Classify(s)
		require.Contains(t, []status.Bucket{
			status.BucketActive, status.BucketCompleted, status.BucketOther,
		}, bucket)
	}
}

func TestClassifier_InvalidPattern(t *testing.T) {
	_, err := status.NewClassifier(status.RuleSet{Active: []string{"("}})
	require.Error(t, err)
}
