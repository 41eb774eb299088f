package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/ganot/cursor-recap/internal/domain/conversation"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExtractService defines the extraction operations needed by MCP.
type ExtractService interface {
	Extract(ctx context.Context, day time.Time) []conversation.Summary
}

type extractConversationsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Target date in YYYY-MM-DD form (default: today)"`
}

type extractConversationsOutput struct {
	Date          string                 `json:"date" jsonschema:"Date the extraction covered"`
	Count         int                    `json:"count" jsonschema:"Number of conversations found"`
	Conversations []conversation.Summary `json:"conversations" jsonschema:"Normalized conversation summaries, oldest first"`
}

func registerTools(server *sdkmcp.Server, extractor ExtractService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "extract_conversations",
		Description: "Extract normalized summaries of the Cursor conversations created or updated on a given day",
	}, extractConversationsHandler(extractor))
}

func extractConversationsHandler(extractor ExtractService) func(context.Context, *sdkmcp.CallToolRequest, extractConversationsInput) (*sdkmcp.CallToolResult, extractConversationsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, args extractConversationsInput) (*sdkmcp.CallToolResult, extractConversationsOutput, error) {
		day := time.Now()
		if args.Date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", args.Date, time.Local)
			if err != nil {
				return nil, extractConversationsOutput{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args.Date)
			}
			day = parsed
		}

		summaries := extractor.Extract(ctx, day)
		output := extractConversationsOutput{
			Date:          day.Format("2006-01-02"),
			Count:         len(summaries),
			Conversations: summaries,
		}

		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{
				&sdkmcp.TextContent{Text: fmt.Sprintf("Found %d conversation(s) on %s.", output.Count, output.Date)},
			},
		}, output, nil
	}
}
