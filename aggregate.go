package mailsift

import (
	"encoding/json"
	"sort"
	"strings"
)

// Per-kind volume bounds. These keep aggregation linear and bounded
// regardless of document size; anything beyond them is silently ignored.
const (
	maxBodyChars    = 200_000
	maxItemsPerKind = 200
	maxItemChars    = 10_000
)

// Aggregate assembles the raw sources of a document: body text, mail
// references, labeled fields, form values, metadata, and structured-data
// blobs. Each channel is read independently; a channel whose accessor
// fails is skipped and the remaining channels are still collected, so a
// malformed fragment in one part of a document never aborts extraction.
//
// Mail references are stripped of their scheme and query here, so the
// scanner sees "user@host.tld" from "mailto:user@host.tld?subject=hi".
// Structured blobs are parsed as JSON and reduced to their string values;
// a blob that fails to parse contributes its raw text instead.
func Aggregate(doc DocumentView) []RawSource {
	var sources []RawSource

	if text, err := doc.VisibleText(); err == nil && text != "" {
		sources = append(sources, RawSource{Kind: SourceBody, Text: clip(text, maxBodyChars)})
	}

	if refs, err := doc.MailRefs(); err == nil {
		for _, ref := range capItems(refs) {
			if addr := stripMailRef(ref); addr != "" {
				sources = append(sources, RawSource{Kind: SourceLink, Text: clip(addr, maxItemChars)})
			}
		}
	}

	if fields, err := doc.LabeledFields(); err == nil {
		for _, f := range capFields(fields) {
			if f.Value == "" {
				continue
			}
			sources = append(sources, RawSource{Kind: SourceField, Key: f.Key, Text: clip(f.Value, maxItemChars)})
		}
	}

	if values, err := doc.FormValues(); err == nil {
		for _, v := range capItems(values) {
			if v == "" {
				continue
			}
			sources = append(sources, RawSource{Kind: SourceForm, Text: clip(v, maxItemChars)})
		}
	}

	if metas, err := doc.MetaValues(); err == nil {
		for _, m := range capFields(metas) {
			if m.Value == "" {
				continue
			}
			sources = append(sources, RawSource{Kind: SourceMeta, Key: m.Key, Text: clip(m.Value, maxItemChars)})
		}
	}

	if blobs, err := doc.StructuredData(); err == nil {
		for _, blob := range capItems(blobs) {
			text := structuredText(blob)
			if text == "" {
				continue
			}
			sources = append(sources, RawSource{Kind: SourceStructured, Text: clip(text, maxItemChars)})
		}
	}

	return sources
}

func capItems(items []string) []string {
	if len(items) > maxItemsPerKind {
		return items[:maxItemsPerKind]
	}
	return items
}

func capFields(fields []Field) []Field {
	if len(fields) > maxItemsPerKind {
		return fields[:maxItemsPerKind]
	}
	return fields
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// stripMailRef reduces a mail-reference attribute value to its address
// portion: the scheme prefix and everything from '?' on (header fields
// like subject or cc) are removed.
func stripMailRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if len(ref) >= 7 && strings.EqualFold(ref[:7], "mailto:") {
		ref = ref[7:]
	}
	if q := strings.IndexByte(ref, '?'); q >= 0 {
		ref = ref[:q]
	}
	return strings.TrimSpace(ref)
}

// structuredText reduces a structured-data blob to scannable text. Valid
// JSON is walked and its string values joined; malformed JSON degrades to
// the raw blob text, since addresses appear literally either way.
func structuredText(blob string) string {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return ""
	}
	var v any
	if err := json.Unmarshal([]byte(blob), &v); err != nil {
		return blob
	}
	var parts []string
	collectJSONStrings(v, &parts)
	return strings.Join(parts, "\n")
}

func collectJSONStrings(v any, parts *[]string) {
	if len(*parts) >= maxItemsPerKind {
		return
	}
	switch val := v.(type) {
	case string:
		*parts = append(*parts, val)
	case []any:
		for _, item := range val {
			collectJSONStrings(item, parts)
		}
	case map[string]any:
		// Sorted keys keep discovery order deterministic across runs.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectJSONStrings(val[k], parts)
		}
	}
}
