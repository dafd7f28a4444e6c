package mailsift

import "strings"

// Validation length limits from RFC 5321. The top-level label range is
// narrower than the RFC allows on purpose: extraction deals with scraped
// text where long pseudo-TLDs are almost always file extensions or
// minified identifiers rather than real addresses.
const (
	maxAddressLen = 254
	maxLocalLen   = 64
	maxDomainLen  = 253
	minTLDLen     = 2
	maxTLDLen     = 6
)

// markupIndicators are substrings that mark a candidate as a markup or
// script-injection fragment rather than an address. Scanned candidates
// cannot contain them, but IsValid must be safe for arbitrary
// attacker-controlled strings arriving from other call sites.
var markupIndicators = []string{
	"<",
	">",
	"javascript:",
	"vbscript:",
	"data:text/html",
	"onerror=",
	"onload=",
	"onclick=",
	"onmouseover=",
	"srcdoc=",
}

// IsValid reports whether s is structurally acceptable as an email address.
// It is pure and total: any string input, including the empty string, yields
// a verdict and never a panic.
//
// The scanner's grammar is deliberately permissive; IsValid is the single
// precise gate, so false positives are filtered here rather than scattered
// across call sites.
func IsValid(s string) bool {
	if len(s) == 0 || len(s) > maxAddressLen {
		return false
	}

	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 || strings.IndexByte(s[at+1:], '@') >= 0 {
		return false
	}

	local, domain := s[:at], s[at+1:]
	if len(local) > maxLocalLen {
		return false
	}
	if len(domain) > maxDomainLen {
		return false
	}

	if strings.Contains(s, "..") || strings.Contains(s, "@@") || strings.Contains(s, "--") {
		return false
	}

	if domain[0] == '.' || domain[len(domain)-1] == '.' {
		return false
	}
	dot := strings.LastIndexByte(domain, '.')
	if dot <= 0 {
		return false
	}
	tld := domain[dot+1:]
	if len(tld) < minTLDLen || len(tld) > maxTLDLen {
		return false
	}

	lower := strings.ToLower(s)
	for _, indicator := range markupIndicators {
		if strings.Contains(lower, indicator) {
			return false
		}
	}

	return true
}
