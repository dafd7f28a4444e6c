package mailsift

// DefaultCandidateCap bounds the number of candidates a single Scan call
// may produce. Pathological documents (minified bundles, encoded blobs)
// can contain enormous numbers of email-shaped runs; hitting the cap stops
// scanning for that source and is a documented truncation, not a failure.
const DefaultCandidateCap = 100

// Scan finds email-shaped substrings in text and returns them as candidates
// tagged with kind. Matching is deliberately permissive so that real
// addresses are not missed; IsValid is the precise gate applied afterwards.
//
// The scanner is a single left-to-right pass anchored on '@': it expands
// backwards over local-part characters and forwards over dot-separated
// alphanumeric labels (internal hyphens allowed, label length at most 63,
// at least two labels). There is no backtracking, so the worst case is
// linear in len(text) for any input. Matches preserve their original case.
//
// A non-positive limit is corrected to DefaultCandidateCap. Empty text
// yields an empty result.
func Scan(text string, kind SourceKind, limit int) []Candidate {
	if limit <= 0 {
		limit = DefaultCandidateCap
	}

	var out []Candidate
	for i := 0; i < len(text); i++ {
		if text[i] != '@' {
			continue
		}

		// Expand left over local-part characters.
		start := i
		for start > 0 && isLocalChar(text[start-1]) {
			start--
		}
		if start == i {
			continue // no local part
		}

		// Expand right over domain characters, then trim trailing
		// punctuation so "a@b.com." at a sentence end matches cleanly.
		end := i + 1
		for end < len(text) && isDomainChar(text[end]) {
			end++
		}
		domEnd := end
		for domEnd > i+1 && (text[domEnd-1] == '.' || text[domEnd-1] == '-') {
			domEnd--
		}

		if !domainShaped(text[i+1 : domEnd]) {
			i = end - 1
			continue
		}

		out = append(out, Candidate{Text: text[start:domEnd], Kind: kind})
		if len(out) >= limit {
			break
		}
		i = end - 1
	}
	return out
}

// isLocalChar reports whether c may appear in the local part of an address.
// The set matches the unquoted atom characters of RFC 5322.
func isLocalChar(c byte) bool {
	if isAlnum(c) {
		return true
	}
	switch c {
	case '.', '!', '#', '$', '%', '&', '\'', '*', '+', '/', '=',
		'?', '^', '_', '`', '{', '|', '}', '~', '-':
		return true
	}
	return false
}

func isDomainChar(c byte) bool {
	return isAlnum(c) || c == '.' || c == '-'
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// domainShaped reports whether s is a plausible domain at the grammar
// level: at least two dot-separated labels, each 1-63 characters of
// alphanumerics with internal hyphens only.
func domainShaped(s string) bool {
	labels := 0
	labelStart := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' {
			continue
		}
		label := s[labelStart:i]
		if !labelShaped(label) {
			return false
		}
		labels++
		labelStart = i + 1
	}
	return labels >= 2
}

func labelShaped(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isAlnum(label[i]) && label[i] != '-' {
			return false
		}
	}
	return true
}
