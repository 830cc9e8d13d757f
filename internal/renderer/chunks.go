package renderer

import (
	"strings"

	"github.com/dshills/clangrender-mcp/internal/normalizer"
	"github.com/dshills/clangrender-mcp/pkg/types"
)

// RenderChunk renders one leaf chunk to text. Placeholder chunks are
// wrapped in the given delimiter pair; every other kind renders as its
// text unchanged.
func RenderChunk(c types.Chunk, openDelim, closeDelim string) string {
	if c.Kind == types.ChunkPlaceholder {
		return openDelim + c.Text + closeDelim
	}
	return c.Text
}

// RenderOptional renders an Optional chunk by concatenating its children
// in order, recursing into nested Optional children. Placeholders below an
// Optional use the ⟦…⟧ delimiter pair at every depth, which is what
// distinguishes an optional, not-yet-typed slot from a required snippet
// slot downstream. An Optional with no children renders as the empty
// string rather than failing the candidate.
func RenderOptional(c types.Chunk) string {
	if len(c.Children) == 0 {
		return ""
	}

	var b strings.Builder
	for _, child := range c.Children {
		if child.Kind == types.ChunkOptional {
			b.WriteString(RenderOptional(child))
			continue
		}
		b.WriteString(RenderChunk(child, normalizer.OptionalOpen, normalizer.OptionalClose))
	}
	return b.String()
}
