package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ietsi/tablero/internal/testserver"
	"github.com/ietsi/tablero/internal/transport"
)

const initialExport = `REPORTE DE PROYECTOS
--------------------
| Cáncer | María Torres | Red Almenara | Estudio Alfa | En Ejecución | Sí | Dr. Ruiz | Dra. Paz | No
| Diabetes | xxxxx (reservado) | Red Rebagliati | Estudio Beta | Validación | No | Dr. Vega | | Sí
| Cáncer | Luis Rojas | Red Almenara | Estudio Gamma | RRI 1 Completo | Sí | Dr. Ruiz | | No
| Salud Mental | Ana Quispe | Red Sabogal | Estudio Delta | En Elaboración de Protocolo | No | Dra. León | | No
`

const updatedExport = `REPORTE DE PROYECTOS
--------------------
| Cáncer | María Torres | Red Almenara | Estudio Alfa | RRI 1 Completo | Sí | Dr. Ruiz | Dra. Paz | No
| Diabetes | xxxxx (reservado) | Red Rebagliati | Estudio Beta | Validación | No | Dr. Vega | | Sí
`

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// TestDashboardLifecycle walks the full flow: load, inspect, filter, and
// refresh after the export file changes on disk.
func TestDashboardLifecycle(t *testing.T) {
	ts := testserver.New(t, initialExport)
	base := ts.Server.URL

	// The page itself is served at the root.
	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	page := make([]byte, 1024)
	n, _ := resp.Body.Read(page)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(page[:n]), "<!DOCTYPE html>")

	var metrics transport.MetricsResponse
	getJSON(t, base+"/api/metrics", &metrics)
	require.Equal(t, 4, metrics.Summary.Total)
	require.Equal(t, 2, metrics.Summary.Active)
	require.Equal(t, 1, metrics.Summary.Completed)
	require.Equal(t, 50.0, metrics.Summary.ActivePct)

	var filters transport.FiltersResponse
	getJSON(t, base+"/api/filters", &filters)
	require.Equal(t, []string{"Cáncer", "Diabetes", "Salud Mental"}, filters.PriorityLines)
	require.Len(t, filters.Networks, 3)

	// Filters compose across the API.
	var filtered transport.ProjectsResponse
	getJSON(t, base+"/api/projects?priority_line=Cáncer&status=En+Ejecución", &filtered)
	require.Equal(t, 1, filtered.Total)
	require.Equal(t, "Estudio Alfa", filtered.Projects[0].Study)

	// The CSV download reflects the same filter: header plus two rows.
	resp, err = http.Get(base + "/api/export.csv?priority_line=Cáncer")
	require.NoError(t, err)
	csvBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvBody)), "\n")
	require.Len(t, lines, 3)

	// Rewrite the file on disk; nothing changes until refresh.
	ts.Rewrite(t, updatedExport)

	var stale transport.MetricsResponse
	getJSON(t, base+"/api/metrics", &stale)
	require.Equal(t, 4, stale.Summary.Total)
	require.Equal(t, metrics.SnapshotID, stale.SnapshotID)

	refreshResp, err := http.Post(base+"/api/refresh", "application/json", nil)
	require.NoError(t, err)
	defer refreshResp.Body.Close()
	require.Equal(t, http.StatusOK, refreshResp.StatusCode)

	var fresh transport.MetricsResponse
	getJSON(t, base+"/api/metrics", &fresh)
	require.Equal(t, 2, fresh.Summary.Total)
	require.Equal(t, 1, fresh.Summary.Completed)
	require.NotEqual(t, metrics.SnapshotID, fresh.SnapshotID)
}
