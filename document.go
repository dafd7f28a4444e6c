package mailsift

// DocumentView is a read-only capability over a single document. The engine
// consumes it channel by channel; it never mutates the document and performs
// no I/O of its own.
//
// Accessors return an error when their channel cannot be read (for example
// malformed markup in one part of the document). The aggregator skips a
// failed channel and continues with the others, so implementations should
// fail per channel rather than per document.
type DocumentView interface {
	// VisibleText returns the document's readable text content with
	// non-visible containers (scripts, styles) excluded.
	VisibleText() (string, error)

	// MailRefs returns explicit mail-reference attribute values, such as
	// mailto hrefs, with their original scheme and query intact.
	MailRefs() ([]string, error)

	// LabeledFields returns data-tagged key/value fields.
	LabeledFields() ([]Field, error)

	// FormValues returns current values of form-like inputs.
	FormValues() ([]string, error)

	// MetaValues returns document metadata entries keyed by name.
	MetaValues() ([]Field, error)

	// StructuredData returns embedded structured-data text blobs,
	// such as JSON-LD script contents, unparsed.
	StructuredData() ([]string, error)
}
