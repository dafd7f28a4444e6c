// Package mailsift extracts email addresses from documents. It scans
// heterogeneous document sources (visible text, mailto references, data
// fields, form values, metadata, structured-data blobs) for email-shaped
// candidates, validates them, and returns a deduplicated, order-preserving,
// size-bounded result set.
//
// This package contains the extraction engine plus domain types and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations of the capability interfaces live in subdirectories
// named after their primary dependency (e.g., goquery/, sqlite/).
package mailsift
