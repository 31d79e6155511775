package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ietsi/tablero/internal/domain/project"
	"github.com/ietsi/tablero/internal/domain/stats"
	"github.com/ietsi/tablero/internal/domain/status"
)

// FilterInput is the shared filter block for the read tools. Empty values and
// the sentinel "all" mean no restriction on that dimension.
type FilterInput struct {
	PriorityLine string `json:"priority_line,omitempty" jsonschema:"priority line to filter by, or all"`
	Status       string `json:"status,omitempty" jsonschema:"status to filter by, or all"`
	Network      string `json:"network,omitempty" jsonschema:"care network to filter by, or all"`
}

func (in FilterInput) filter() project.Filter {
	return project.Filter{
		PriorityLine: in.PriorityLine,
		Status:       in.Status,
		Network:      in.Network,
	}
}

type ListProjectsResult struct {
	Projects []project.Project `json:"projects"`
	Total    int               `json:"total" jsonschema:"number of records after filtering"`
	Notice   string            `json:"notice,omitempty" jsonschema:"set when the data file could not be loaded"`
}

type MetricsResult struct {
	Summary    stats.Summary `json:"summary"`
	SnapshotID string        `json:"snapshot_id"`
	Dropped    int           `json:"dropped_rows" jsonschema:"rows rejected during parsing"`
	Notice     string        `json:"notice,omitempty"`
}

type AggregateInput struct {
	FilterInput
	Field string `json:"field" jsonschema:"field to count by: priority_line, status, network, manager, principal_investigator, co_investigators, or national_network"`
	Limit int    `json:"limit,omitempty" jsonschema:"keep only the top N entries"`
}

type AggregateResult struct {
	Field   string        `json:"field"`
	Entries []stats.Entry `json:"entries" jsonschema:"values with counts, most frequent first"`
}

type FilterValuesResult struct {
	PriorityLines []string `json:"priority_lines"`
	Statuses      []string `json:"statuses"`
	Networks      []string `json:"networks"`
}

type RefreshResult struct {
	SnapshotID string `json:"snapshot_id"`
	Projects   int    `json:"projects"`
	Dropped    int    `json:"dropped_rows"`
	Notice     string `json:"notice,omitempty"`
}

// personFields get the redaction-aware validity predicate when aggregating.
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

func registerTools(server *sdkmcp.Server, cfg Config) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List research projects, optionally filtered by priority line, status, and network",
	}, listProjectsHandler(cfg))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_metrics",
		Description: "Summarize the filtered view: totals, active and completed counts with percentages",
	}, metricsHandler(cfg))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_kanban",
		Description: "Group the filtered projects into status columns with display colors",
	}, kanbanHandler(cfg))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "aggregate",
		Description: "Count projects by one field, most frequent first",
	}, aggregateHandler(cfg))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_filter_values",
		Description: "List the distinct priority lines, statuses, and networks in the current snapshot",
	}, filterValuesHandler(cfg))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "refresh_data",
		Description: "Re-read the export file and report the new snapshot",
	}, refreshHandler(cfg))
}

func listProjectsHandler(cfg Config) sdkmcp.ToolHandlerFor[FilterInput, ListProjectsResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FilterInput) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
		snap := cfg.Cache.Snapshot(ctx)
		filtered := in.filter().Apply(snap.Projects)
		return nil, ListProjectsResult{
			Projects: filtered,
			Total:    len(filtered),
			Notice:   snap.Notice,
		}, nil
	}
}

func metricsHandler(cfg Config) sdkmcp.ToolHandlerFor[FilterInput, MetricsResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FilterInput) (*sdkmcp.CallToolResult, MetricsResult, error) {
		snap := cfg.Cache.Snapshot(ctx)
		filtered := in.filter().Apply(snap.Projects)
		return nil, MetricsResult{
			Summary:    stats.Summarize(filtered, cfg.Classifier),
			SnapshotID: snap.ID,
			Dropped:    snap.Dropped,
			Notice:     snap.Notice,
		}, nil
	}
}

func kanbanHandler(cfg Config) sdkmcp.ToolHandlerFor[FilterInput, status.Board] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FilterInput) (*sdkmcp.CallToolResult, status.Board, error) {
		snap := cfg.Cache.Snapshot(ctx)
		filtered := in.filter().Apply(snap.Projects)
		return nil, status.BuildBoard(filtered, cfg.Strategy, cfg.Colors), nil
	}
}

func aggregateHandler(cfg Config) sdkmcp.ToolHandlerFor[AggregateInput, AggregateResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in AggregateInput) (*sdkmcp.CallToolResult, AggregateResult, error) {
		field := project.Field(in.Field)
		if !aggregateFields[field] {
			return nil, AggregateResult{}, fmt.Errorf("%w: %q", project.ErrUnknownField, in.Field)
		}
		if in.Limit < 0 {
			return nil, AggregateResult{}, fmt.Errorf("limit must not be negative")
		}

		var opts []stats.Option
		if personFields[field] {
			opts = append(opts, stats.WithValidity(stats.PersonValidity))
		}
		if in.Limit > 0 {
			opts = append(opts, stats.WithLimit(in.Limit))
		}

		snap := cfg.Cache.Snapshot(ctx)
		filtered := in.filter().Apply(snap.Projects)
		return nil, AggregateResult{
			Field:   string(field),
			Entries: stats.CountBy(filtered, field, opts...),
		}, nil
	}
}

func filterValuesHandler(cfg Config) sdkmcp.ToolHandlerFor[struct{}, FilterValuesResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, FilterValuesResult, error) {
		snap := cfg.Cache.Snapshot(ctx)
		return nil, FilterValuesResult{
			PriorityLines: project.DistinctValues(snap.Projects, project.FieldPriorityLine),
			Statuses:      project.DistinctValues(snap.Projects, project.FieldStatus),
			Networks:      project.DistinctValues(snap.Projects, project.FieldNetwork),
		}, nil
	}
}

func refreshHandler(cfg Config) sdkmcp.ToolHandlerFor[struct{}, RefreshResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, RefreshResult, error) {
		snap := cfg.Cache.Reload(ctx)
		return nil, RefreshResult{
			SnapshotID: snap.ID,
			Projects:   len(snap.Projects),
			Dropped:    snap.Dropped,
			Notice:     snap.Notice,
		}, nil
	}
}
