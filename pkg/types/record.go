package types

// CompletionRecord is the immutable result of reducing one candidate's
// chunk sequence. It is built once and passed on to a presentation layer
// as read-only value data.
type CompletionRecord struct {
	// Classification
	Category Category `json:"category"`

	// InsertText is the text intended for literal insertion into the
	// edited buffer. Placeholder markers are retained for a snippet-aware
	// consumer.
	InsertText string `json:"insert_text"`

	// MainText is the on-screen candidate text: the full signature minus
	// the return type, with all placeholder markers stripped.
	MainText string `json:"main_text"`

	// ReturnType is the rendered result-type chunk, if any ("int" for a
	// completion like "int foo(int x)").
	ReturnType string `json:"return_type"`

	// KeyText is a qualifier-normalized, marker-stripped form of the
	// insert text used to compare candidate shapes ("const Foo&" and
	// "Foo&" key-match).
	KeyText string `json:"key_text"`

	// Documentation
	Brief        string `json:"brief"`
	DetailedInfo string `json:"detailed_info"`
	DocString    string `json:"doc_string"`
}

// Equivalent reports whether two records would look identical in the
// user-facing candidate list. Only category, main text, and return type
// participate; the remaining fields carry no disambiguating information
// for the user and are deliberately excluded.
func (r CompletionRecord) Equivalent(other CompletionRecord) bool {
	return r.Category == other.Category &&
		r.MainText == other.MainText &&
		r.ReturnType == other.ReturnType
}
