// Package render formats extraction results for the command surface.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ganot/cursor-recap/internal/domain/conversation"
)

// previewLimit caps the first-message preview in text output.
const previewLimit = 100

// JSON writes summaries as a pretty-printed JSON array.
func JSON(w io.Writer, summaries []conversation.Summary) error {
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summaries: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Text writes a human-readable digest, one block per conversation.
func Text(w io.Writer, summaries []conversation.Summary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No conversations found for the specified date.")
		return err
	}

	if _, err := fmt.Fprintf(w, "Found %d conversation(s):\n\n", len(summaries)); err != nil {
		return err
	}
	for _, conv := range summaries {
		fmt.Fprintf(w, "[%s] %s\n", conv.CreatedAt, conv.Name)
		fmt.Fprintf(w, "  Model: %s | Messages: %d | Status: %s\n", conv.Model, conv.MessageCount, conv.Status)
		if conv.FirstMessage != "" {
			fmt.Fprintf(w, "  First message: %s\n", preview(conv.FirstMessage))
		}
		if conv.Workspace != nil {
			fmt.Fprintf(w, "  Workspace: %s\n", *conv.Workspace)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}
