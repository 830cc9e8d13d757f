// Package types provides shared type definitions for the ClangRender MCP server.
//
// This package defines the domain types exchanged between the code-intelligence
// engine, the chunk renderer, and the presentation layer: completion chunks,
// candidates, display categories, and the rendered completion record.
//
// # Core Types
//
// Chunk represents one tagged text fragment of a completion candidate, as
// emitted by a libclang-style engine:
//
//	chunk := types.Chunk{
//	    Kind: types.ChunkPlaceholder,
//	    Text: "int x",
//	}
//
// Optional chunks carry nested completion content shown only if the user
// continues typing:
//
//	opt := types.Chunk{
//	    Kind: types.ChunkOptional,
//	    Children: []types.Chunk{
//	        {Kind: types.ChunkComma, Text: ", "},
//	        {Kind: types.ChunkPlaceholder, Text: "int y"},
//	    },
//	}
//
// Candidate bundles one candidate's chunk sequence with its native
// declaration kind and brief documentation comment:
//
//	cand := types.Candidate{
//	    CursorKind:   types.CursorFunctionDecl,
//	    Chunks:       chunks,
//	    BriefComment: "Computes the thing.",
//	}
//
// # Categories
//
// CategoryOf maps engine-native declaration kinds onto the coarse display
// classes shown in the completion menu. The mapping is fixed and
// many-to-one; unrecognized kinds map to CategoryUnknown:
//
//	types.CategoryOf(types.CursorCXXMethod)  // CategoryFunction
//	types.CategoryOf("SomeNewKind")          // CategoryUnknown
//
// # Completion Records
//
// CompletionRecord is the immutable output of one reduction. Records are
// compared for dedup purposes with Equivalent, which considers only the
// category, main text, and return type:
//
//	if a.Equivalent(b) {
//	    // b adds nothing the user can see; drop it
//	}
package types
