// Package renderer reduces completion chunk sequences to display-ready
// completion records.
//
// A libclang-style code-intelligence engine describes each completion
// candidate as an ordered sequence of typed chunks. The renderer walks
// that sequence once and produces the handful of strings the editor UI
// needs: the text to insert, the text to display, the return type, and a
// normalized comparison key.
//
// # Basic Usage
//
//	b := renderer.New(renderer.Options{})
//	rec := b.Build(types.Candidate{
//	    CursorKind: types.CursorFunctionDecl,
//	    Chunks: []types.Chunk{
//	        {Kind: types.ChunkResultType, Text: "int"},
//	        {Kind: types.ChunkTypedText, Text: "foo"},
//	        {Kind: types.ChunkLeftParen, Text: "("},
//	        {Kind: types.ChunkPlaceholder, Text: "int x"},
//	        {Kind: types.ChunkRightParen, Text: ")"},
//	    },
//	})
//	// rec.MainText   == "foo(int x)"
//	// rec.InsertText == "foo(⟪int x⟫)"
//	// rec.ReturnType == "int"
//
// # Placeholder Delimiters
//
// Required argument slots are wrapped in ⟪…⟫. Slots reached through an
// Optional chunk (arguments the user has not typed yet) are wrapped in
// ⟦…⟧ at every nesting depth. Display text strips both marker pairs;
// insert text keeps them for a snippet-aware consumer.
//
// # Parameter Spacing
//
// Options.ExtraSpace pads non-empty parameter lists ("foo( x, y )") using
// a small state machine over the chunk stream, so "foo()" stays tight
// either way. The option is carried per Builder; there is no process-wide
// toggle.
//
// # Batch Rendering
//
// BatchBuilder renders whole candidate lists concurrently with a bounded
// worker pool, and Dedupe collapses records the user could not tell apart:
//
//	bb := renderer.NewBatch(renderer.Options{}, 0)
//	records, err := bb.BuildAll(ctx, candidates)
//	if err == nil {
//	    records = renderer.Dedupe(records)
//	}
package renderer
