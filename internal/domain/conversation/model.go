// Package conversation extracts and normalizes Cursor conversation records
// from the local state store.
package conversation

import "encoding/json"

// stubTypeUser marks a user-authored message in the header sequence.
const stubTypeUser = 1

// Record is the persisted shape of a composerData entry. Only the fields
// the extraction needs are decoded; the rest of the stored JSON is ignored.
type Record struct {
	ComposerID  string          `json:"composerId"`
	Name        string          `json:"name"`
	CreatedAt   int64           `json:"createdAt"`
	LastUpdated int64           `json:"lastUpdatedAt"`
	Status      string          `json:"status"`
	Headers     []MessageStub   `json:"fullConversationHeadersOnly"`
	ModelConfig ModelConfig     `json:"modelConfig"`
	CodeBlocks  json.RawMessage `json:"codeBlockData"`
}

// MessageStub is a lightweight header referencing a full message body
// stored under its own key.
type MessageStub struct {
	Type     int    `json:"type"`
	BubbleID string `json:"bubbleId"`
}

// ModelConfig carries the model a conversation was run with.
type ModelConfig struct {
	ModelName string `json:"modelName"`
}

// Summary is the normalized, display-ready form of one conversation.
// Workspace stays a pointer so an uninferred workspace renders as null.
type Summary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CreatedAt    string  `json:"created_at"`
	TimestampMS  int64   `json:"timestamp_ms"`
	Status       string  `json:"status"`
	Model        string  `json:"model"`
	MessageCount int     `json:"message_count"`
	FirstMessage string  `json:"first_message"`
	Workspace    *string `json:"workspace"`
}
