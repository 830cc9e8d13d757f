package types

// ChunkKind identifies the role of one completion chunk within a candidate
type ChunkKind string

const (
	ChunkTypedText        ChunkKind = "TypedText"
	ChunkPlaceholder      ChunkKind = "Placeholder"
	ChunkOptional         ChunkKind = "Optional"
	ChunkLeftParen        ChunkKind = "LeftParen"
	ChunkRightParen       ChunkKind = "RightParen"
	ChunkLeftBracket      ChunkKind = "LeftBracket"
	ChunkRightBracket     ChunkKind = "RightBracket"
	ChunkLeftBrace        ChunkKind = "LeftBrace"
	ChunkRightBrace       ChunkKind = "RightBrace"
	ChunkLeftAngle        ChunkKind = "LeftAngle"
	ChunkRightAngle       ChunkKind = "RightAngle"
	ChunkComma            ChunkKind = "Comma"
	ChunkColon            ChunkKind = "Colon"
	ChunkSemiColon        ChunkKind = "SemiColon"
	ChunkEqual            ChunkKind = "Equal"
	ChunkInformative      ChunkKind = "Informative"
	ChunkHorizontalSpace  ChunkKind = "HorizontalSpace"
	ChunkResultType       ChunkKind = "ResultType"
	ChunkCurrentParameter ChunkKind = "CurrentParameter"
	ChunkVerticalSpace    ChunkKind = "VerticalSpace"
	ChunkOther            ChunkKind = "Other"
)

// Chunk represents one tagged text fragment of a completion candidate as
// emitted by the code-intelligence engine. Chunks are read-only inputs: the
// renderer never mutates them or keeps a reference past a single build.
type Chunk struct {
	// Identification
	Kind ChunkKind `json:"kind"`

	// Content
	Text string `json:"text,omitempty"`

	// Children holds the nested completion content of an Optional chunk.
	// It is nil for every other kind.
	Children []Chunk `json:"children,omitempty"`
}

// ValidateKind checks if the chunk kind is one of the enumerated values.
// The renderer itself tolerates unknown kinds (they are ignored); this is
// for callers that want to reject malformed engine output up front.
func (c *Chunk) ValidateKind() error {
	switch c.Kind {
	case ChunkTypedText, ChunkPlaceholder, ChunkOptional,
		ChunkLeftParen, ChunkRightParen,
		ChunkLeftBracket, ChunkRightBracket,
		ChunkLeftBrace, ChunkRightBrace,
		ChunkLeftAngle, ChunkRightAngle,
		ChunkComma, ChunkColon, ChunkSemiColon, ChunkEqual,
		ChunkInformative, ChunkHorizontalSpace,
		ChunkResultType, ChunkCurrentParameter, ChunkVerticalSpace, ChunkOther:
		return nil
	default:
		return ErrInvalidChunkKind
	}
}

// Candidate is the engine-facing input for one completion candidate: the
// ordered chunk sequence, the native declaration-kind tag, and the brief
// documentation comment (possibly empty).
type Candidate struct {
	CursorKind   CursorKind `json:"cursor_kind"`
	Chunks       []Chunk    `json:"chunks"`
	BriefComment string     `json:"brief_comment,omitempty"`
}
