// Package normalize cleans free-form text and email sets. Bad input is
// degraded silently: helpers here never return errors, they just drop what
// cannot be normalized.
package normalize

import (
	"sort"
	"strings"
)

// Text collapses every run of whitespace in s to a single space and trims
// leading and trailing whitespace.
func Text(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Emails trims and lowercases every address, drops empty entries, removes
// exact duplicates and returns the remainder in ascending order.
// The function is idempotent: applying it to its own output is a no-op.
func Emails(emails []string) []string {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Strings(out)

	return out
}

// UniqueDomains extracts the sorted set of distinct mail domains (the part
// after the last '@'). Entries without '@' are skipped.
func UniqueDomains(emails []string) []string {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		at := strings.LastIndex(e, "@")
		if at < 0 || at == len(e)-1 {
			continue
		}
		set[e[at+1:]] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)

	return out
}

// CountEmails tallies how often each raw address occurs. No normalization
// is applied; "A@x.com" and "a@x.com" count separately.
func CountEmails(emails []string) map[string]int {
	counts := make(map[string]int, len(emails))
	for _, e := range emails {
		counts[e]++
	}

	return counts
}
