// Package suggest produces "did you mean" hints for diagnostics raised
// against a closed set of known names, such as a variable that was
// referenced but never declared.
package suggest

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Closest returns the single best fuzzy match for target among candidates,
// or "" if candidates is empty or nothing ranks as similar enough.
func Closest(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// Help builds a "did you mean %q?" diagnostic help string for an unknown
// name, or "" when no candidate is close enough to suggest.
func Help(name string, candidates []string) string {
	match := Closest(name, candidates)
	if match == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", match)
}
