package renderer

import "github.com/dshills/clangrender-mcp/pkg/types"

// IsDisplayChunk reports whether a chunk kind contributes text to the
// rendered candidate. Kinds outside this set (ResultType aside) are
// ignored entirely: they produce no output and do not advance the paren
// state machine.
func IsDisplayChunk(kind types.ChunkKind) bool {
	switch kind {
	case types.ChunkOptional,
		types.ChunkTypedText,
		types.ChunkPlaceholder,
		types.ChunkLeftParen,
		types.ChunkRightParen,
		types.ChunkRightBracket,
		types.ChunkLeftBracket,
		types.ChunkLeftBrace,
		types.ChunkRightBrace,
		types.ChunkRightAngle,
		types.ChunkLeftAngle,
		types.ChunkComma,
		types.ChunkColon,
		types.ChunkSemiColon,
		types.ChunkEqual,
		types.ChunkInformative,
		types.ChunkHorizontalSpace:
		return true
	default:
		return false
	}
}

// IsResultType reports whether the chunk carries the candidate's return
// type. Disjoint from IsDisplayChunk.
func IsResultType(kind types.ChunkKind) bool {
	return kind == types.ChunkResultType
}
