// Package transport wires the dashboard's HTTP surface: the JSON API the
// page consumes, the CSV export, and the refresh action.
package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/ietsi/tablero/internal/domain/stats"
	"github.com/ietsi/tablero/internal/domain/status"
	"github.com/ietsi/tablero/internal/store"
)

// Server holds the collaborators the handlers read from. All handlers are
// pure reads over the current snapshot except refresh, which reloads it.
type Server struct {
	cache      *store.Cache
	classifier *status.Classifier
	strategy   status.Strategy
	colors     []status.ColorRule
	logger     *slog.Logger
}

// NewServer creates the handler set.
func NewServer(cache *store.Cache, classifier *status.Classifier, strategy status.Strategy, colors []status.ColorRule, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		cache:      cache,
		classifier: classifier,
		strategy:   strategy,
		colors:     colors,
		logger:     logger,
	}
}

// Routes builds the chi router. The dashboard page handler and the MCP
// handler are mounted by the caller so this package stays free of
// presentation and protocol dependencies.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestLogger(s.logger))

	r.Get("/api/projects", s.handleProjects)
	r.Get("/api/metrics", s.handleMetrics)
	r.Get("/api/kanban", s.handleKanban)
	r.Get("/api/aggregates", s.handleAggregates)
	r.Get("/api/filters", s.handleFilters)
	r.Get("/api/export.csv", s.handleExport)
	r.Post("/api/refresh", s.handleRefresh)
	r.Get("/health", s.handleHealth)

	return r
}

func filterFromQuery(r *http.Request) project.Filter {
	return project.Filter{
		PriorityLine: r.URL.Query().Get("priority_line"),
		Status:       r.URL.Query().Get("status"),
		Network:      r.URL.Query().Get("network"),
	}
}

// ProjectsResponse is the filtered record list.
type ProjectsResponse struct {
	Projects []project.Project `json:"projects"`
	Total    int               `json:"total"`
	Notice   string            `json:"notice,omitempty"`
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Snapshot(r.Context())
	filtered := filterFromQuery(r).Apply(snap.Projects)
	writeJSON(w, http.StatusOK, ProjectsResponse{
		Projects: filtered,
		Total:    len(filtered),
		Notice:   snap.Notice,
	})
}

// MetricsResponse carries the headline summary plus load diagnostics.
type MetricsResponse struct {
	Summary    stats.Summary `json:"summary"`
	SnapshotID string        `json:"snapshot_id"`
	LoadedAt   string        `json:"loaded_at"`
	Dropped    int           `json:"dropped_rows"`
	Notice     string        `json:"notice,omitempty"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Snapshot(r.Context())
	filtered := filterFromQuery(r).Apply(snap.Projects)
	writeJSON(w, http.StatusOK, MetricsResponse{
		Summary:    stats.Summarize(filtered, s.classifier),
		SnapshotID: snap.ID,
		LoadedAt:   snap.LoadedAt.Format(time.RFC3339),
		Dropped:    snap.Dropped,
		Notice:     snap.Notice,
	})
}

func (s *Server) handleKanban(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Snapshot(r.Context())
	filtered := filterFromQuery(r).Apply(snap.Projects)
	writeJSON(w, http.StatusOK, status.BuildBoard(filtered, s.strategy, s.colors))
}

// AggregatesResponse is the frequency count for one field.
type AggregatesResponse struct {
	Field   project.Field `json:"field"`
	Entries []stats.Entry `json:"entries"`
}

// personFields get the redaction-aware validity predicate.
var personFields = map[project.Field]bool{
	project.FieldManager:               true,
	project.FieldPrincipalInvestigator: true,
	project.FieldCoInvestigators:       true,
}

var aggregateFields = map[project.Field]bool{
	project.FieldPriorityLine:          true,
	project.FieldStatus:                true,
	project.FieldNetwork:               true,
	project.FieldManager:               true,
	project.FieldPrincipalInvestigator: true,
	project.FieldCoInvestigators:       true,
	project.FieldNationalNetwork:       true,
}

func (s *Server) handleAggregates(w http.ResponseWriter, r *http.Request) {
	field := project.Field(r.URL.Query().Get("field"))
	if !aggregateFields[field] {
		writeError(w, http.StatusBadRequest, "unknown or unsupported field")
		return
	}

	var opts []stats.Option
	if personFields[field] {
		opts = append(opts, stats.WithValidity(stats.PersonValidity))
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts = append(opts, stats.WithLimit(limit))
	}

	snap := s.cache.Snapshot(r.Context())
	filtered := filterFromQuery(r).Apply(snap.Projects)
	writeJSON(w, http.StatusOK, AggregatesResponse{
		Field:   field,
		Entries: stats.CountBy(filtered, field, opts...),
	})
}

// FiltersResponse lists the distinct values behind the three selectors.
// Values always come from the unfiltered base set so a selection never
// hides its alternatives.
type FiltersResponse struct {
	PriorityLines []string `json:"priority_lines"`
	Statuses      []string `json:"statuses"`
	Networks      []string `json:"networks"`
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, FiltersResponse{
		PriorityLines: project.DistinctValues(snap.Projects, project.FieldPriorityLine),
		Statuses:      project.DistinctValues(snap.Projects, project.FieldStatus),
		Networks:      project.DistinctValues(snap.Projects, project.FieldNetwork),
	})
}

// RefreshResponse reports the freshly loaded snapshot.
type RefreshResponse struct {
	SnapshotID string `json:"snapshot_id"`
	Projects   int    `json:"projects"`
	Dropped    int    `json:"dropped_rows"`
	Notice     string `json:"notice,omitempty"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snap := s.cache.Reload(r.Context())
	writeJSON(w, http.StatusOK, RefreshResponse{
		SnapshotID: snap.ID,
		Projects:   len(snap.Projects),
		Dropped:    snap.Dropped,
		Notice:     snap.Notice,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
