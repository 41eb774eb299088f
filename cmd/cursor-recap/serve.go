package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ganot/cursor-recap/internal/domain/conversation"
	"github.com/ganot/cursor-recap/internal/mcp"
	"github.com/ganot/cursor-recap/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction pipeline as an MCP stdio tool",
	Long: `serve runs an MCP server on stdio exposing the extract_conversations
tool. Each tool call opens its own store connection and performs a fresh
scan, so the server can stay up while Cursor keeps writing.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	svc := conversation.NewService(sqlite.StateOpener{Path: cfg.Store.Path}, logger)
	server := mcp.NewServer(mcp.Config{
		Extractor: svc,
		Logger:    logger,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting stdio transport", "store", cfg.Store.Path)

	// Run blocks until stdin closes or the context is canceled
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}
