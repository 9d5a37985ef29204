// Package extract pulls invoice identifiers and sender email addresses out
// of document text.
package extract

import (
	"sort"
	"strings"

	"github.com/feichai0017/inquiry-reader/internal/patterns"
)

// InvoiceIDs returns the normalized invoice identifiers found in text, in
// first-seen order across pattern-then-position. Every pattern runs against
// the whole text, so one document commonly yields matches from more than one
// shape; duplicates are dropped, keeping the earlier position.
func InvoiceIDs(text string) []string {
	low := strings.ToLower(text)

	var found []string
	seen := make(map[string]struct{})
	for _, rx := range patterns.InvoiceRegexes {
		for _, m := range rx.FindAllStringSubmatch(low, -1) {
			val := strings.Trim(strings.ToUpper(m[1]), patterns.IDTrimSet)
			if len(val) < patterns.MinIDLength {
				continue
			}
			if _, ok := seen[val]; ok {
				continue
			}
			seen[val] = struct{}{}
			found = append(found, val)
		}
	}

	return found
}

// Emails returns the distinct email addresses in text, lexicographically
// sorted. The address pattern runs against the original-case text.
func Emails(text string) []string {
	matches := patterns.EmailRegex.FindAllString(text, -1)

	set := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		set[m] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}
