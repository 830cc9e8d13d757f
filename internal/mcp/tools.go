package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/dshills/clangrender-mcp/internal/normalizer"
	"github.com/dshills/clangrender-mcp/internal/renderer"
	"github.com/dshills/clangrender-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeNoCandidates  = -32001 // Candidates array missing or empty
	ErrorCodeUnknownPass   = -32002 // Unrecognized normalization pass name
)

// Normalization pass names accepted by normalize_text
const (
	PassReservedUnderscores = "reserved_underscores"
	PassPlaceholderMarkers  = "placeholder_markers"
	PassQualifiers          = "qualifiers"
)

// handleRenderCompletions handles the render_completions tool invocation
func (s *Server) handleRenderCompletions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	rawCandidates, ok := args["candidates"].([]interface{})
	if !ok || len(rawCandidates) == 0 {
		return nil, newMCPError(ErrorCodeNoCandidates, "candidates parameter is required and cannot be empty", map[string]interface{}{
			"param":  "candidates",
			"reason": "missing or empty",
		})
	}

	candidates, err := decodeCandidates(rawCandidates)
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "malformed candidates", map[string]interface{}{
			"param":  "candidates",
			"reason": err.Error(),
		})
	}

	opts := s.opts
	if extraSpace, ok := args["extra_space"].(bool); ok {
		opts.ExtraSpace = extraSpace
	}
	dedupe := getBoolDefault(args, "dedupe", false)

	start := time.Now()
	batch := renderer.NewBatch(opts, s.workers)
	records, err := batch.BuildAll(ctx, candidates)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "rendering failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	rendered := len(records)
	if dedupe {
		records = renderer.Dedupe(records)
	}

	s.log.Info("rendered completions",
		zap.Int("candidates", len(candidates)),
		zap.Int("records", len(records)),
		zap.Int("duplicates_dropped", rendered-len(records)),
		zap.Bool("extra_space", opts.ExtraSpace),
		zap.Duration("duration", time.Since(start)))

	response := map[string]interface{}{
		"count":   len(records),
		"records": records,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleNormalizeText handles the normalize_text tool invocation
func (s *Server) handleNormalizeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing or not a string",
		})
	}

	passes, err := normalizePasses(args["passes"])
	if err != nil {
		return nil, newMCPError(ErrorCodeUnknownPass, err.Error(), map[string]interface{}{
			"param": "passes",
		})
	}

	normalized := text
	for _, pass := range passes {
		switch pass {
		case PassReservedUnderscores:
			normalized = normalizer.StripReservedUnderscores(normalized)
		case PassPlaceholderMarkers:
			normalized = normalizer.StripPlaceholderMarkers(normalized)
		case PassQualifiers:
			normalized = normalizer.StripQualifiers(normalized)
		}
	}

	response := map[string]interface{}{
		"text":   normalized,
		"passes": passes,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// decodeCandidates converts the raw JSON argument array into typed candidates
func decodeCandidates(raw []interface{}) ([]types.Candidate, error) {
	// Round-trip through JSON: the chunk tree is recursive and arrives as
	// nested map[string]interface{} values.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode candidates: %w", err)
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}
	return candidates, nil
}

// normalizePasses validates the passes argument, defaulting to all three
// passes in key-building order
func normalizePasses(raw interface{}) ([]string, error) {
	if raw == nil {
		return []string{PassReservedUnderscores, PassPlaceholderMarkers, PassQualifiers}, nil
	}

	rawList, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("passes must be an array of strings")
	}

	passes := make([]string, 0, len(rawList))
	for _, item := range rawList {
		pass, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("passes must be an array of strings")
		}
		switch pass {
		case PassReservedUnderscores, PassPlaceholderMarkers, PassQualifiers:
			passes = append(passes, pass)
		default:
			return nil, fmt.Errorf("unknown normalization pass %q", pass)
		}
	}
	return passes, nil
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}
