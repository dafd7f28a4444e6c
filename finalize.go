package mailsift

import "strings"

// denyDomains are placeholder and documentation domains whose addresses
// carry no contact value. Matching is exact: a broad substring exclusion
// (dropping every domain containing "test" or "demo") would discard real
// addresses, so only these known-benign domains are filtered.
var denyDomains = map[string]struct{}{
	"example.com":     {},
	"example.org":     {},
	"example.net":     {},
	"example.edu":     {},
	"test.com":        {},
	"email.com":       {},
	"domain.com":      {},
	"yourdomain.com":  {},
	"yourcompany.com": {},
	"localhost":       {},
}

// denyLocals are automated-sender local parts that are never useful as
// contact addresses.
var denyLocals = map[string]struct{}{
	"noreply":      {},
	"no-reply":     {},
	"donotreply":   {},
	"do-not-reply": {},
}

// Finalize normalizes validated candidates into the final result set:
// every entry is lower-cased and trimmed, placeholder addresses are
// dropped, case-insensitive duplicates are removed keeping the first
// occurrence in its original relative order, and the result is truncated
// to cfg.MaxResults. Truncation is silent and deterministic; the earliest
// discovered entries survive.
//
// Finalize is idempotent: applying it to its own output returns the same
// result.
func Finalize(candidates []string, cfg Config) []string {
	cfg = cfg.normalize()

	extraDeny := make(map[string]struct{}, len(cfg.Deny))
	for _, d := range cfg.Deny {
		extraDeny[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}

	out := make([]string, 0, min(len(candidates), cfg.MaxResults))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		email := strings.ToLower(strings.TrimSpace(c))
		if email == "" || denied(email, extraDeny) {
			continue
		}
		if cfg.RemoveDuplicates {
			if _, ok := seen[email]; ok {
				continue
			}
			seen[email] = struct{}{}
		}
		out = append(out, email)
		if len(out) >= cfg.MaxResults {
			break
		}
	}
	return out
}

// denied reports whether a lower-cased address matches the built-in
// placeholder deny list or the configured extra entries.
func denied(email string, extra map[string]struct{}) bool {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return false
	}
	if _, ok := denyDomains[domain]; ok {
		return true
	}
	if _, ok := denyLocals[local]; ok {
		return true
	}
	if len(extra) > 0 {
		if _, ok := extra[email]; ok {
			return true
		}
		if _, ok := extra[domain]; ok {
			return true
		}
	}
	return false
}
