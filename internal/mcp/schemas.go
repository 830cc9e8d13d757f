package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// renderCompletionsTool returns the tool definition for render_completions
func renderCompletionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "render_completions",
		Description: "Reduce clang-style completion chunk sequences to display-ready completion records",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"candidates": map[string]interface{}{
					"type":        "array",
					"description": "Completion candidates, one chunk sequence each",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"cursor_kind": map[string]interface{}{
								"type":        "string",
								"description": "Native declaration kind (e.g. FunctionDecl, FieldDecl)",
							},
							"chunks": map[string]interface{}{
								"type":        "array",
								"description": "Ordered chunk sequence; Optional chunks carry nested children",
								"items": map[string]interface{}{
									"type": "object",
									"properties": map[string]interface{}{
										"kind": map[string]interface{}{
											"type":        "string",
											"description": "Chunk kind (TypedText, Placeholder, Optional, ...)",
										},
										"text": map[string]interface{}{
											"type":        "string",
											"description": "Leaf text; may be empty",
										},
										"children": map[string]interface{}{
											"type":        "array",
											"description": "Nested chunks, present only for Optional",
										},
									},
									"required": []string{"kind"},
								},
							},
							"brief_comment": map[string]interface{}{
								"type":        "string",
								"description": "Brief documentation comment for the candidate",
							},
						},
						"required": []string{"chunks"},
					},
				},
				"extra_space": map[string]interface{}{
					"type":        "boolean",
					"description": "Pad non-empty parameter lists: foo( x, y ) instead of foo(x, y). Defaults to the server-wide setting",
				},
				"dedupe": map[string]interface{}{
					"type":        "boolean",
					"description": "Collapse records that match on category, main text, and return type",
					"default":     false,
				},
			},
			Required: []string{"candidates"},
		},
	}
}

// normalizeTextTool returns the tool definition for normalize_text
func normalizeTextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "normalize_text",
		Description: "Apply completion text normalization passes to a string",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to normalize",
				},
				"passes": map[string]interface{}{
					"type":        "array",
					"description": "Passes to apply in order. Defaults to all three in key-building order",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{PassReservedUnderscores, PassPlaceholderMarkers, PassQualifiers},
					},
				},
			},
			Required: []string{"text"},
		},
	}
}
