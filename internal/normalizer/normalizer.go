package normalizer

import (
	"regexp"
	"strings"
)

// Placeholder marker delimiters used by the renderer. Required argument
// slots use the double angle pair, slots inside optional chunks use the
// bracket pair.
const (
	PlaceholderOpen  = "⟪"
	PlaceholderClose = "⟫"
	OptionalOpen     = "⟦"
	OptionalClose    = "⟧"
)

var markerReplacer = strings.NewReplacer(
	PlaceholderOpen, "",
	PlaceholderClose, "",
	OptionalOpen, "",
	OptionalClose, "",
)

var qualifierRE = regexp.MustCompile(`\s*\b(?:const|volatile)\b\s*`)

// StripReservedUnderscores removes every occurrence of "__" from the text.
// Standard library headers use compiler-reserved parameter names like
// "__pos"; stripping the underscores shows them as plain "pos". This is a
// blunt substring removal, not identifier-aware: any identifier containing
// two consecutive underscores loses them. Accepted behavior.
func StripReservedUnderscores(s string) string {
	return strings.ReplaceAll(s, "__", "")
}

// StripPlaceholderMarkers removes all four placeholder marker characters
// from the text.
func StripPlaceholderMarkers(s string) string {
	return markerReplacer.Replace(s)
}

// StripQualifiers removes whole-word "const" and "volatile" tokens along
// with their surrounding whitespace. It is used only when building the
// comparison key, so "const Foo&" and "Foo&" key-match as the same
// overload-call shape.
func StripQualifiers(s string) string {
	return qualifierRE.ReplaceAllString(s, "")
}
