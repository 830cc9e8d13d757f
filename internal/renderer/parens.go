package renderer

import "github.com/dshills/clangrender-mcp/pkg/types"

// parenState tracks where the scan is relative to a function-call
// parameter list, so the extra-space option can pad "foo( x, y )" without
// re-scanning the stream. Legal transitions only move forward:
// initial → seenOpenParen → inParams.
type parenState int

const (
	parenInitial parenState = iota
	parenSeenOpenParen
	parenInParams
)

// next advances the state machine for one display chunk and reports
// whether a spacing token belongs immediately before the chunk's rendered
// text. It must only be called for chunks satisfying IsDisplayChunk.
func (s parenState) next(kind types.ChunkKind) (parenState, bool) {
	switch {
	case kind == types.ChunkLeftParen:
		if s == parenInitial {
			return parenSeenOpenParen, false
		}
		return s, false

	case s == parenSeenOpenParen &&
		kind != types.ChunkRightParen &&
		kind != types.ChunkInformative:
		// First real parameter token after "(".
		return parenInParams, true

	case s == parenInParams && kind == types.ChunkRightParen:
		// ")" closing a non-empty parameter list.
		return s, true
	}

	return s, false
}
