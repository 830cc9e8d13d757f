package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidChunkKind = errors.New("invalid chunk kind")
	ErrInvalidCategory  = errors.New("invalid category")
)
