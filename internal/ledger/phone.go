package ledger

import "strings"

// PhoneMatcher decides whether a stored phone value matches a query phone.
// It is a separate predicate so the matching rule stays testable without
// store I/O.
type PhoneMatcher func(stored, query string) bool

// NormalizePhone strips every non-digit character.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultPhoneMatch normalizes both values and matches if either contains
// the other, which tolerates missing or extra country-code prefixes.
// A value that normalizes to nothing matches nothing.
func DefaultPhoneMatch(stored, query string) bool {
	s, q := NormalizePhone(stored), NormalizePhone(query)
	if s == "" || q == "" {
		return false
	}
	return strings.Contains(s, q) || strings.Contains(q, s)
}
