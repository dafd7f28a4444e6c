package mailsift

// SourceKind identifies the semantic channel of a document that a piece of
// text was taken from.
type SourceKind string

// SourceKind constants, one per DocumentView channel.
const (
	SourceBody       SourceKind = "body"
	SourceLink       SourceKind = "link"
	SourceField      SourceKind = "field"
	SourceForm       SourceKind = "form"
	SourceMeta       SourceKind = "meta"
	SourceStructured SourceKind = "structured"
)

// RawSource is one semantic unit of input text, assembled fresh per
// extraction. Key is only set for keyed channels (fields, metadata).
type RawSource struct {
	Kind SourceKind
	Key  string
	Text string
}

// Candidate is an unvalidated email-shaped substring found by the scanner,
// tagged with the channel it came from. Candidates are transient; they exist
// only between scanning and validation.
type Candidate struct {
	Text string
	Kind SourceKind
}

// Field is a key/value pair from a keyed document channel, such as a
// data-tagged element or a metadata entry.
type Field struct {
	Key   string
	Value string
}
