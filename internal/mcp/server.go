// Package mcp exposes the extraction pipeline as an MCP tool surface.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `cursor-recap serves local Cursor conversation history.
Call extract_conversations with an optional date (YYYY-MM-DD) to get normalized
summaries of every conversation created or updated that day, oldest first. Each
summary carries the conversation name, model, message count, first user message
and an inferred workspace path when one can be derived.`

// Config contains server configuration.
type Config struct {
	Extractor ExtractService
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with the extraction tool.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "cursor-recap",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Extractor)

	return server
}
