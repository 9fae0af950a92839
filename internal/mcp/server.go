package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"hrboard/internal/domain/tracker"
)

const serverInstructions = `hrboard tracks HR activity updates: an ordered list of records
(activity, business unit, owner, status, target date, details) with
filtering, bulk edits, undo/redo and spreadsheet import/export.

Typical flow: list_updates to see the current board, add_update /
edit_update / delete_update for single records, bulk_edit / bulk_delete
for a selection of ids, undo / redo to step through history, get_stats
for per-status counts and filter choices, import_updates /
export_updates for csv or xlsx interchange. Destructive tools
(delete_update, bulk_delete, import_updates) require confirm: true.`

// Config contains server configuration.
type Config struct {
	Service *tracker.Service
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "hrboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Service)

	return server
}
