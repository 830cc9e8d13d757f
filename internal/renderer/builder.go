package renderer

import (
	"strings"

	"github.com/dshills/clangrender-mcp/internal/normalizer"
	"github.com/dshills/clangrender-mcp/pkg/types"
)

// Options configure how candidates are rendered
type Options struct {
	// ExtraSpace pads non-empty parameter lists for readability:
	// "foo( int x )" instead of "foo(int x)". Empty parameter lists are
	// never padded.
	ExtraSpace bool
}

// Builder reduces one candidate's chunk sequence to a CompletionRecord.
// A Builder is immutable after construction, so any number of Build calls
// may run concurrently on the same instance.
type Builder struct {
	spacing string
}

// New creates a Builder with the given options
func New(opts Options) *Builder {
	b := &Builder{}
	if opts.ExtraSpace {
		b.spacing = " "
	}
	return b
}

// Build reduces one candidate to an immutable CompletionRecord.
//
// Build never fails: malformed chunks (unknown kinds, Optional chunks
// without children) degrade to no-ops so one bad chunk never discards an
// otherwise valid candidate, and an empty chunk sequence yields a zero
// record with CategoryUnknown.
func (b *Builder) Build(cand types.Candidate) types.CompletionRecord {
	if len(cand.Chunks) == 0 {
		return types.CompletionRecord{Category: types.CategoryUnknown}
	}

	// mainText accumulates everything except the return type, including
	// Informative hints; insertText is what actually lands in the buffer,
	// so Informative chunks stay out of it.
	var mainText, insertText strings.Builder
	var returnType string
	state := parenInitial

	for _, chunk := range cand.Chunks {
		if IsResultType(chunk.Kind) {
			// Placeholders never occur in a result-type chunk, so the
			// delimiter pair is irrelevant.
			returnType = RenderChunk(chunk, "", "")
			continue
		}
		if !IsDisplayChunk(chunk.Kind) {
			continue
		}

		var space bool
		state, space = state.next(chunk.Kind)
		if space {
			mainText.WriteString(b.spacing)
			insertText.WriteString(b.spacing)
		}

		if chunk.Kind == types.ChunkOptional {
			text := RenderOptional(chunk)
			mainText.WriteString(text)
			insertText.WriteString(text)
			continue
		}

		text := RenderChunk(chunk, normalizer.PlaceholderOpen, normalizer.PlaceholderClose)
		mainText.WriteString(text)
		if chunk.Kind != types.ChunkInformative {
			insertText.WriteString(text)
		}
	}

	main := normalizer.StripPlaceholderMarkers(
		normalizer.StripReservedUnderscores(mainText.String()))
	// Markers are kept in the insert text: they are the contract for the
	// snippet-expansion consumer.
	insert := normalizer.StripReservedUnderscores(insertText.String())
	key := normalizer.StripQualifiers(normalizer.StripPlaceholderMarkers(insert))

	rec := types.CompletionRecord{
		Category:   types.CategoryOf(cand.CursorKind),
		InsertText: insert,
		MainText:   main,
		ReturnType: returnType,
		KeyText:    key,
		Brief:      cand.BriefComment,
		DocString:  cand.BriefComment,
	}
	rec.DetailedInfo = detailedInfo(rec.Brief, rec.ReturnType, rec.MainText)
	return rec
}

// detailedInfo assembles the preview-window text: an optional brief line
// followed by "returnType mainText".
func detailedInfo(brief, returnType, mainText string) string {
	var b strings.Builder
	if brief != "" {
		b.WriteString(brief)
		b.WriteByte('\n')
	}
	b.WriteString(returnType)
	b.WriteByte(' ')
	b.WriteString(mainText)
	b.WriteByte('\n')
	return b.String()
}
