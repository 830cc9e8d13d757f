package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := NewServer(cfg)
	require.NoError(t, err)
	return s
}

func toolRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

// resultText extracts the text payload from a tool result
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

// fooCandidate is a FunctionDecl candidate shaped like "int foo(int x)"
func fooCandidate() map[string]interface{} {
	return map[string]interface{}{
		"cursor_kind":   "FunctionDecl",
		"brief_comment": "Computes foo.",
		"chunks": []interface{}{
			map[string]interface{}{"kind": "ResultType", "text": "int"},
			map[string]interface{}{"kind": "TypedText", "text": "foo"},
			map[string]interface{}{"kind": "LeftParen", "text": "("},
			map[string]interface{}{"kind": "Placeholder", "text": "int x"},
			map[string]interface{}{"kind": "RightParen", "text": ")"},
		},
	}
}

type renderResponse struct {
	Count   int `json:"count"`
	Records []struct {
		Category     string `json:"category"`
		InsertText   string `json:"insert_text"`
		MainText     string `json:"main_text"`
		ReturnType   string `json:"return_type"`
		KeyText      string `json:"key_text"`
		Brief        string `json:"brief"`
		DetailedInfo string `json:"detailed_info"`
		DocString    string `json:"doc_string"`
	} `json:"records"`
}

func TestHandleRenderCompletions(t *testing.T) {
	s := newTestServer(t, Config{})

	result, err := s.handleRenderCompletions(context.Background(), toolRequest(map[string]interface{}{
		"candidates": []interface{}{fooCandidate()},
	}))
	require.NoError(t, err)

	var resp renderResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))

	require.Equal(t, 1, resp.Count)
	rec := resp.Records[0]
	assert.Equal(t, "Function", rec.Category)
	assert.Equal(t, "foo(int x)", rec.MainText)
	assert.Equal(t, "foo(⟪int x⟫)", rec.InsertText)
	assert.Equal(t, "int", rec.ReturnType)
	assert.Equal(t, "Computes foo.", rec.Brief)
	assert.Equal(t, "Computes foo.", rec.DocString)
	assert.Equal(t, "Computes foo.\nint foo(int x)\n", rec.DetailedInfo)
}

func TestHandleRenderCompletions_ExtraSpaceOverride(t *testing.T) {
	s := newTestServer(t, Config{})

	result, err := s.handleRenderCompletions(context.Background(), toolRequest(map[string]interface{}{
		"candidates":  []interface{}{fooCandidate()},
		"extra_space": true,
	}))
	require.NoError(t, err)

	var resp renderResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, "foo( int x )", resp.Records[0].MainText)
}

func TestHandleRenderCompletions_ServerDefaultSpacing(t *testing.T) {
	s := newTestServer(t, Config{ExtraSpace: true})

	result, err := s.handleRenderCompletions(context.Background(), toolRequest(map[string]interface{}{
		"candidates": []interface{}{fooCandidate()},
	}))
	require.NoError(t, err)

	var resp renderResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, "foo( int x )", resp.Records[0].MainText)
}

func TestHandleRenderCompletions_Dedupe(t *testing.T) {
	s := newTestServer(t, Config{})

	result, err := s.handleRenderCompletions(context.Background(), toolRequest(map[string]interface{}{
		"candidates": []interface{}{fooCandidate(), fooCandidate()},
		"dedupe":     true,
	}))
	require.NoError(t, err)

	var resp renderResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.Records, 1)
}

func TestHandleRenderCompletions_Errors(t *testing.T) {
	s := newTestServer(t, Config{})

	tests := []struct {
		name string
		args map[string]interface{}
		code int
	}{
		{"MissingCandidates", map[string]interface{}{}, ErrorCodeNoCandidates},
		{"EmptyCandidates", map[string]interface{}{"candidates": []interface{}{}}, ErrorCodeNoCandidates},
		{"WrongType", map[string]interface{}{"candidates": "nope"}, ErrorCodeNoCandidates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleRenderCompletions(context.Background(), toolRequest(tt.args))
			require.Error(t, err)

			var mcpErr *MCPError
			require.True(t, errors.As(err, &mcpErr))
			assert.Equal(t, tt.code, mcpErr.Code)
		})
	}
}

func TestHandleRenderCompletions_MalformedChunkTolerated(t *testing.T) {
	s := newTestServer(t, Config{})

	cand := map[string]interface{}{
		"cursor_kind": "FunctionDecl",
		"chunks": []interface{}{
			map[string]interface{}{"kind": "TypedText", "text": "foo"},
			map[string]interface{}{"kind": "SomethingNew", "text": "zzz"},
			map[string]interface{}{"kind": "Optional"}, // no children
		},
	}

	result, err := s.handleRenderCompletions(context.Background(), toolRequest(map[string]interface{}{
		"candidates": []interface{}{cand},
	}))
	require.NoError(t, err)

	var resp renderResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "foo", resp.Records[0].MainText)
}

type normalizeResponse struct {
	Text   string   `json:"text"`
	Passes []string `json:"passes"`
}

func TestHandleNormalizeText(t *testing.T) {
	s := newTestServer(t, Config{})

	t.Run("DefaultPasses", func(t *testing.T) {
		result, err := s.handleNormalizeText(context.Background(), toolRequest(map[string]interface{}{
			"text": "foo(⟪const Bar& __b⟫)",
		}))
		require.NoError(t, err)

		var resp normalizeResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, "foo(Bar& b)", resp.Text)
		assert.Equal(t, []string{PassReservedUnderscores, PassPlaceholderMarkers, PassQualifiers}, resp.Passes)
	})

	t.Run("SelectedPasses", func(t *testing.T) {
		result, err := s.handleNormalizeText(context.Background(), toolRequest(map[string]interface{}{
			"text":   "foo(⟪const Bar& __b⟫)",
			"passes": []interface{}{PassPlaceholderMarkers},
		}))
		require.NoError(t, err)

		var resp normalizeResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, "foo(const Bar& __b)", resp.Text)
	})

	t.Run("EmptyText", func(t *testing.T) {
		result, err := s.handleNormalizeText(context.Background(), toolRequest(map[string]interface{}{
			"text": "",
		}))
		require.NoError(t, err)

		var resp normalizeResponse
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
		assert.Equal(t, "", resp.Text)
	})

	t.Run("MissingText", func(t *testing.T) {
		_, err := s.handleNormalizeText(context.Background(), toolRequest(map[string]interface{}{}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.True(t, errors.As(err, &mcpErr))
		assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
	})

	t.Run("UnknownPass", func(t *testing.T) {
		_, err := s.handleNormalizeText(context.Background(), toolRequest(map[string]interface{}{
			"text":   "foo",
			"passes": []interface{}{"camel_case"},
		}))
		require.Error(t, err)

		var mcpErr *MCPError
		require.True(t, errors.As(err, &mcpErr))
		assert.Equal(t, ErrorCodeUnknownPass, mcpErr.Code)
	})
}

func TestMCPError(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "invalid params", nil)
	assert.Equal(t, "MCP error -32602: invalid params", err.Error())
}
