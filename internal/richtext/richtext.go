// Package richtext decodes the Lexical rich-text JSON documents Cursor
// stores for message content.
package richtext

import (
	"encoding/json"
	"strings"
)

type node struct {
	// Text stays raw so an absent field and an explicit null are
	// distinguishable; null or a non-string value on a text node is a
	// decode failure for the whole document.
	Type     string          `json:"type"`
	Text     json.RawMessage `json:"text"`
	Children []node          `json:"children"`
}

type document struct {
	Root *node `json:"root"`
}

// Extract returns the plain text of a rich-text document: the content of
// every text node in pre-order, joined with single spaces and trimmed.
// Input that is not a well-formed document yields "" — callers treat an
// empty result as "no text available", never as an error.
func Extract(blob string) string {
	var doc document
	if err := json.Unmarshal([]byte(blob), &doc); err != nil {
		return ""
	}
	if doc.Root == nil {
		return ""
	}

	var texts []string
	if !collect(doc.Root, &texts) {
		return ""
	}

	return strings.TrimSpace(strings.Join(texts, " "))
}

func collect(n *node, texts *[]string) bool {
	if n.Type == "text" && n.Text != nil {
		var text string
		if err := json.Unmarshal(n.Text, &text); err != nil {
			return false
		}
		*texts = append(*texts, text)
	}
	for i := range n.Children {
		if !collect(&n.Children[i], texts) {
			return false
		}
	}
	return true
}
