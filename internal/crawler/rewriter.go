package crawler

import (
	"sort"
	"strings"
)

// Rewrite replaces every literal occurrence of each archived address in
// markup with its mapped relative path. This is a textual substitution
// pass, not a markup-aware rewrite, so it is robust to arbitrarily
// malformed documents.
//
// All replacements happen in a single pass (strings.Replacer), so a
// produced relative path is never itself re-matched by another key. Keys
// are ordered longest-first: when one archived address is a prefix of
// another (a page and a sub-page), the longer address must win at its own
// occurrences, and the fixed order keeps re-runs byte-identical despite map
// iteration being unordered.
func Rewrite(markup string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return markup
	}

	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...).Replace(markup)
}
