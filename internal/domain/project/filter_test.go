package project_test

import (
	"testing"

	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func testProjects() []project.Project {
	return []project.Project{
		{ID: 1, PriorityLine: "Cáncer", Network: "Red Almenara", Status: "En Ejecución", Study: "A"},
		{ID: 2, PriorityLine: "Diabetes", Network: "Red Rebagliati", Status: "Validación", Study: "B"},
		{ID: 3, PriorityLine: "Cáncer", Network: "Red Rebagliati", Status: "En Ejecución", Study: "C"},
		{ID: 4, PriorityLine: "Tuberculosis", Network: "Red Sabogal", Status: "RRI 1 Completo", Study: "D"},
	}
}

func TestFilter_SentinelMeansAll(t *testing.T) {
	base := testProjects()

	require.Equal(t, base, project.Filter{}.Apply(base))
	require.Equal(t, base, project.Filter{PriorityLine: project.All, Status: project.All, Network: project.All}.Apply(base))
}

func TestFilter_ConjunctionOfConstraints(t *testing.T) {
	base := testProjects()

	got := project.Filter{PriorityLine: "Cáncer", Network: "Red Rebagliati"}.Apply(base)
	require.Len(t, got, 1)
	require.Equal(t, 3, got[0].ID)
}

func TestFilter_OrderIndependent(t *testing.T) {
	base := testProjects()

	ab := project.Filter{PriorityLine: "Cáncer"}.Apply(project.Filter{Status: "En Ejecución"}.Apply(base))
	ba := project.Filter{Status: "En Ejecución"}.Apply(project.Filter{PriorityLine: "Cáncer"}.Apply(base))
	require.Equal(t, ab, ba)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	base := testProjects()
	snapshot := testProjects()

	_ = project.Filter{Network: "Red Sabogal"}.Apply(base)
	require.Equal(t, snapshot, base)
}

func TestDistinctValues(t *testing.T) {
	base := testProjects()

	require.Equal(t, []string{"Cáncer", "Diabetes", "Tuberculosis"}, project.DistinctValues(base, project.FieldPriorityLine))
	require.Equal(t, []string{"Red Almenara", "Red Rebagliati", "Red Sabogal"}, project.DistinctValues(base, project.FieldNetwork))
}
