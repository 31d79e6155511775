package transport

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/ietsi/tablero/internal/domain/project"
)

const exportFilename = "proyectos.csv"

// handleExport streams the currently filtered view as CSV: header row
// first, then one record per line with every logical field.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Snapshot(r.Context())
	filtered := filterFromQuery(r).Apply(snap.Projects)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)

	writer := csv.NewWriter(w)
	header := make([]string, 0, len(project.Fields)+1)
	header = append(header, "id")
	for _, field := range project.Fields {
		header = append(header, string(field))
	}
	if err := writer.Write(header); err != nil {
		s.logger.Error("csv export failed", "error", err)
		return
	}

	row := make([]string, len(header))
	for _, proj := range filtered {
		row[0] = strconv.Itoa(proj.ID)
		for i, field := range project.Fields {
			row[i+1] = proj.Value(field)
		}
		if err := writer.Write(row); err != nil {
			s.logger.Error("csv export failed", "error", err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		s.logger.Error("csv export failed", "error", err)
	}
}
