package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/ietsi/tablero/internal/domain/status"
	"github.com/ietsi/tablero/internal/mcp"
	"github.com/ietsi/tablero/internal/store"
)

const exportContent = `CABECERA
---
| Cáncer | María Torres | Red Almenara | Estudio A | En Ejecución | Sí | Dr. Ruiz | CoI | No
| Diabetes | xxxxx (reservado) | Red Rebagliati | Estudio B | Validación | No | Dr. Vega | | Sí
| Cáncer | Luis Rojas | Red Almenara | Estudio C | RRI 1 Completo | Sí | Dr. Ruiz | | No
`

func newSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(exportContent), 0o644))

	classifier, err := status.NewClassifier(status.DefaultRuleSet())
	require.NoError(t, err)

	parser := project.NewParser(project.LayoutV1, nil)
	server := mcp.NewServer(mcp.Config{
		Cache:      store.NewCache(store.FileSource{Path: path}, parser, nil),
		Classifier: classifier,
		Strategy:   status.StrategyExact,
		Colors:     status.DefaultColorRules(),
	})

	ctx := context.Background()
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()

	data, err := json.Marshal(value)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestListProjectsTool(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_projects",
		Arguments: map[string]any{"priority_line": "Cáncer"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := decodeStructuredContent[mcp.ListProjectsResult](t, result.StructuredContent)
	require.Equal(t, 2, out.Total)
	for _, proj := range out.Projects {
		require.Equal(t, "Cáncer", proj.PriorityLine)
	}
}

func TestGetMetricsTool(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "get_metrics",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := decodeStructuredContent[mcp.MetricsResult](t, result.StructuredContent)
	require.Equal(t, 3, out.Summary.Total)
	require.Equal(t, 2, out.Summary.Active)
	require.Equal(t, 1, out.Summary.Completed)
	require.NotEmpty(t, out.SnapshotID)
}

func TestGetKanbanTool(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "get_kanban",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	board := decodeStructuredContent[status.Board](t, result.StructuredContent)
	require.Len(t, board.Columns, 3)
}

func TestAggregateTool(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "aggregate",
		Arguments: map[string]any{"field": "manager"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := decodeStructuredContent[mcp.AggregateResult](t, result.StructuredContent)
	sum := 0
	for _, entry := range out.Entries {
		sum += entry.Count
	}
	// The redacted manager is excluded.
	require.Equal(t, 2, sum)
}

func TestAggregateTool_UnknownField(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "aggregate",
		Arguments: map[string]any{"field": "bogus"},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestListFilterValuesTool(t *testing.T) {
	session := newSession(t)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "list_filter_values",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := decodeStructuredContent[mcp.FilterValuesResult](t, result.StructuredContent)
	require.Equal(t, []string{"Cáncer", "Diabetes"}, out.PriorityLines)
	require.Len(t, out.Statuses, 3)
}

func TestRefreshDataTool(t *testing.T) {
	session := newSession(t)

	before, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "get_metrics",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	beforeOut := decodeStructuredContent[mcp.MetricsResult](t, before.StructuredContent)

	result, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "refresh_data",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	out := decodeStructuredContent[mcp.RefreshResult](t, result.StructuredContent)
	require.Equal(t, 3, out.Projects)
	require.NotEqual(t, beforeOut.SnapshotID, out.SnapshotID)
}
