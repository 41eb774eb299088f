package conversation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferWorkspace(t *testing.T) {
	tests := []struct {
		name       string
		codeBlocks string
		want       string
		wantNone   bool
	}{
		{
			name:       "workspace segment",
			codeBlocks: `{"file:///Users/a/workspace/proj/src/x.py":{}}`,
			want:       "/Users/a/workspace/proj/src",
		},
		{
			name:       "workspace segment deep in path",
			codeBlocks: `{"file:///mnt/data/workspace/api/internal/server/http.go":{}}`,
			want:       "/mnt/data/workspace/api/internal",
		},
		{
			name:       "short path",
			codeBlocks: `{"file:///a/b/c":{}}`,
			wantNone:   true,
		},
		{
			name:       "deep path without workspace segment",
			codeBlocks: `{"file:///home/user/src/app/pkg/util/x.go":{}}`,
			want:       "/home/user/src/app",
		},
		{
			name:       "workspace too close to the end uses fallback",
			codeBlocks: `{"file:///Users/a/b/workspace/proj":{}}`,
			want:       "/Users/a/b/workspace",
		},
		{
			name:       "no file uri keys",
			codeBlocks: `{"untitled:Untitled-1":{},"vscode-remote://host/x":{}}`,
			wantNone:   true,
		},
		{
			name:       "empty mapping",
			codeBlocks: `{}`,
			wantNone:   true,
		},
		{
			name:       "null mapping",
			codeBlocks: `null`,
			wantNone:   true,
		},
		{
			name:       "absent mapping",
			codeBlocks: ``,
			wantNone:   true,
		},
		{
			name:       "only the first file uri is considered",
			codeBlocks: `{"file:///a/b/c":{},"file:///Users/a/workspace/proj/src/x.py":{}}`,
			wantNone:   true,
		},
		{
			name:       "non-uri keys skipped before the first match",
			codeBlocks: `{"untitled:1":{},"file:///Users/a/workspace/proj/src/x.py":{}}`,
			want:       "/Users/a/workspace/proj/src",
		},
		{
			name:       "workspace with exactly two trailing segments",
			codeBlocks: `{"file:///Users/a/workspace/proj/main.go":{}}`,
			want:       "/Users/a/workspace/proj/main.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferWorkspace(json.RawMessage(tt.codeBlocks))
			if tt.wantNone {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestObjectKeysPreservesDocumentOrder(t *testing.T) {
	raw := json.RawMessage(`{"zeta":{"nested":[1,2,{"deep":true}]},"alpha":1,"mid":"s"}`)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, objectKeys(raw))
}

func TestObjectKeysMalformedInput(t *testing.T) {
	assert.Nil(t, objectKeys(json.RawMessage(`[1,2,3]`)))
	assert.Nil(t, objectKeys(json.RawMessage(`not json`)))
	// a truncated document yields the keys read before the error
	assert.Equal(t, []string{"a"}, objectKeys(json.RawMessage(`{"a":`)))
}
