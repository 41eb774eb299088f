package conversation

import (
	"bytes"
	"encoding/json"
	"strings"
)

const fileURIPrefix = "file:///"

// inferWorkspace derives a plausible project root from the resource URIs
// keyed in codeBlockData. Keys are read in document order and only the first
// file:// URI is inspected; the inference is best-effort.
func inferWorkspace(codeBlocks json.RawMessage) *string {
	for _, key := range objectKeys(codeBlocks) {
		if !strings.HasPrefix(key, fileURIPrefix) {
			continue
		}
		return workspaceFromPath(strings.TrimPrefix(key, "file://"))
	}
	return nil
}

// workspaceFromPath truncates an absolute path to a likely project root:
// a "workspace" segment plus the two segments under it when one exists,
// otherwise the first few levels of a sufficiently deep path.
func workspaceFromPath(path string) *string {
	parts := strings.Split(path, "/")

	for i, part := range parts {
		if part == "workspace" && i+2 < len(parts) {
			ws := strings.Join(parts[:i+3], "/")
			return &ws
		}
	}

	if len(parts) > 4 {
		ws := strings.Join(parts[:5], "/")
		return &ws
	}

	return nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
// Workspace inference is order-sensitive, so keys are read off the raw
// document instead of an unordered map.
func objectKeys(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)
		if err := skipValue(dec); err != nil {
			return keys
		}
	}
	return keys
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); ok && (delim == '{' || delim == '[') {
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
		// consume the closing delimiter
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}
