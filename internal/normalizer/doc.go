// Package normalizer provides the text normalization passes applied to
// rendered completion text.
//
// The three passes are independent, pure, and composable:
//
//	main := normalizer.StripPlaceholderMarkers(normalizer.StripReservedUnderscores(text))
//	key := normalizer.StripQualifiers(normalizer.StripPlaceholderMarkers(insertText))
//
// Each pass guarantees slightly different output: display text is
// marker-free, insert text keeps markers for snippet expansion, and key
// text additionally drops cv-qualifiers so overload shapes compare equal.
package normalizer
