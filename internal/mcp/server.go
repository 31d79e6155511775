// Package mcp exposes the dashboard's read model as MCP tools so agents can
// query the same snapshot the HTTP surface serves.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ietsi/tablero/internal/domain/status"
	"github.com/ietsi/tablero/internal/store"
)

const serverInstructions = `Tablero exposes a read model over a research-project
export. Call list_filter_values first to discover the priority lines, statuses,
and networks in the current snapshot, then narrow the other tools with those
values. Filters use the sentinel "all" (or an empty string) to mean no
restriction. refresh_data re-reads the export file and returns the new
snapshot id.`

// Config carries the collaborators the tool handlers read from.
type Config struct {
	Cache      *store.Cache
	Classifier *status.Classifier
	Strategy   status.Strategy
	Colors     []status.ColorRule
	Logger     *slog.Logger
}

// NewServer creates an MCP server with all tools and traffic logging wired.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "tablero",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
