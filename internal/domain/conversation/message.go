package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ganot/cursor-recap/internal/repository"
	"github.com/ganot/cursor-recap/internal/richtext"
)

const (
	bubbleKeyPrefix    = "bubbleId:"
	maxFirstMessageLen = 500
	ellipsis           = "..."
)

// bubblePayload is the slice of a stored message body the reader needs.
type bubblePayload struct {
	RichText string `json:"richText"`
}

// firstUserMessage returns the decoded text of the first user-authored
// message in a conversation, truncated to 500 characters. Stubs whose body
// lookup fails or decodes to nothing are skipped rather than treated as
// final; "" means no text was recoverable.
func firstUserMessage(ctx context.Context, store repository.StateStore, composerID string, stubs []MessageStub) string {
	for _, stub := range stubs {
		if stub.Type != stubTypeUser || stub.BubbleID == "" {
			continue
		}

		key := fmt.Sprintf("%s%s:%s", bubbleKeyPrefix, composerID, stub.BubbleID)
		value, err := store.Get(ctx, key)
		if err != nil {
			continue
		}

		var payload bubblePayload
		if err := json.Unmarshal([]byte(value), &payload); err != nil {
			continue
		}
		if payload.RichText == "" {
			continue
		}

		if text := richtext.Extract(payload.RichText); text != "" {
			return truncate(text, maxFirstMessageLen)
		}
	}
	return ""
}

// truncate limits text to max characters, appending an ellipsis marker when
// anything was cut.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + ellipsis
}
