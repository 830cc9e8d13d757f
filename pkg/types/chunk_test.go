package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_ValidateKind(t *testing.T) {
	valid := []ChunkKind{
		ChunkTypedText, ChunkPlaceholder, ChunkOptional,
		ChunkLeftParen, ChunkRightParen, ChunkLeftBracket, ChunkRightBracket,
		ChunkLeftBrace, ChunkRightBrace, ChunkLeftAngle, ChunkRightAngle,
		ChunkComma, ChunkColon, ChunkSemiColon, ChunkEqual,
		ChunkInformative, ChunkHorizontalSpace,
		ChunkResultType, ChunkCurrentParameter, ChunkVerticalSpace, ChunkOther,
	}
	for _, kind := range valid {
		c := Chunk{Kind: kind}
		assert.NoError(t, c.ValidateKind(), "kind %s", kind)
	}

	bad := Chunk{Kind: "NotAKind"}
	assert.ErrorIs(t, bad.ValidateKind(), ErrInvalidChunkKind)

	empty := Chunk{}
	assert.ErrorIs(t, empty.ValidateKind(), ErrInvalidChunkKind)
}

func TestCandidate_JSONRoundTrip(t *testing.T) {
	cand := Candidate{
		CursorKind:   CursorCXXMethod,
		BriefComment: "Returns a substring.",
		Chunks: []Chunk{
			{Kind: ChunkResultType, Text: "std::string"},
			{Kind: ChunkTypedText, Text: "substr"},
			{Kind: ChunkLeftParen, Text: "("},
			{Kind: ChunkOptional, Children: []Chunk{
				{Kind: ChunkPlaceholder, Text: "size_type pos"},
				{Kind: ChunkOptional, Children: []Chunk{
					{Kind: ChunkComma, Text: ", "},
					{Kind: ChunkPlaceholder, Text: "size_type n"},
				}},
			}},
			{Kind: ChunkRightParen, Text: ")"},
		},
	}

	data, err := json.Marshal(cand)
	require.NoError(t, err)

	var decoded Candidate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cand, decoded)
}
