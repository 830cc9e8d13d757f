// Package mcp implements the Model Context Protocol (MCP) server for ClangRender.
//
// The MCP server exposes two tools to editor hosts and AI coding assistants:
//   - render_completions: Reduce completion chunk sequences to display records
//   - normalize_text: Apply the text normalization passes to a string
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates via standard input/output; logs go to stderr so
// stdout stays clean for the protocol.
//
// # Tool: render_completions
//
// Reduce one or more candidates:
//
//	Request:
//	{
//	  "name": "render_completions",
//	  "arguments": {
//	    "candidates": [
//	      {
//	        "cursor_kind": "FunctionDecl",
//	        "brief_comment": "Computes foo.",
//	        "chunks": [
//	          {"kind": "ResultType", "text": "int"},
//	          {"kind": "TypedText", "text": "foo"},
//	          {"kind": "LeftParen", "text": "("},
//	          {"kind": "Placeholder", "text": "int x"},
//	          {"kind": "RightParen", "text": ")"}
//	        ]
//	      }
//	    ],
//	    "extra_space": false,
//	    "dedupe": true
//	  }
//	}
//
//	Response:
//	{
//	  "count": 1,
//	  "records": [
//	    {
//	      "category": "Function",
//	      "insert_text": "foo(⟪int x⟫)",
//	      "main_text": "foo(int x)",
//	      "return_type": "int",
//	      "key_text": "foo(int x)",
//	      "brief": "Computes foo.",
//	      "detailed_info": "Computes foo.\nint foo(int x)\n",
//	      "doc_string": "Computes foo."
//	    }
//	  ]
//	}
//
// Malformed individual chunks never fail the call; they are ignored so one
// bad chunk cannot discard an otherwise valid candidate.
//
// # Tool: normalize_text
//
// Apply normalization passes host-side, e.g. to rebuild a comparison key:
//
//	Request:
//	{
//	  "name": "normalize_text",
//	  "arguments": {
//	    "text": "foo(⟪const Bar& __b⟫)",
//	    "passes": ["reserved_underscores", "placeholder_markers", "qualifiers"]
//	  }
//	}
//
//	Response:
//	{
//	  "text": "foo(Bar& b)",
//	  "passes": ["reserved_underscores", "placeholder_markers", "qualifiers"]
//	}
package mcp
