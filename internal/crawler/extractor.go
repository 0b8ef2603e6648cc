package crawler

import (
	"regexp"
	"strings"

	"github.com/wbmirror/wbmirror/internal/snapshot"
)

// Link reference patterns. RE2 has no backreferences, so the quoted forms
// are spelled out as alternations instead of matching the opening quote.
var (
	// attrPattern matches href/src/data-src/data-href attribute values.
	// The word boundary keeps "src" from matching inside "srcset".
	attrPattern = regexp.MustCompile(`(?i)\b(?:href|src|data-src|data-href)\s*=\s*(?:"([^"]*)"|'([^']*)')`)

	// srcsetPattern matches a whole srcset attribute value, which is split
	// into comma-separated entries afterwards. (?s) lets a value span lines.
	srcsetPattern = regexp.MustCompile(`(?is)\bsrcset\s*=\s*(?:"([^"]*)"|'([^']*)')`)

	// cssURLPattern matches url(...) references in embedded <style> blocks
	// and inline style attributes, quoted or bare.
	cssURLPattern = regexp.MustCompile(`(?i)url\(\s*(?:"([^"]*)"|'([^']*)'|([^"'()\s]+?))\s*\)`)
)

// ExtractLinks scans markup for resource references and returns the subset
// that classifies inside snap, canonicalized and deduplicated, in
// first-discovery order. Three reference shapes are scanned independently:
// quoted href/src/data-src/data-href attributes, srcset lists (leading URL
// token per comma-separated entry, density descriptors discarded), and CSS
// url(...) calls.
//
// Malformed markup is never an error: unmatched constructs are simply not
// extracted.
func ExtractLinks(snap *snapshot.Snapshot, markup string) []string {
	var links []string
	seen := make(map[string]bool)

	admit := func(raw string) {
		norm, ok := snap.Normalize(raw)
		if !ok || !snap.Contains(norm) || seen[norm] {
			return
		}
		seen[norm] = true
		links = append(links, norm)
	}

	for _, m := range attrPattern.FindAllStringSubmatch(markup, -1) {
		admit(firstGroup(m))
	}

	for _, m := range srcsetPattern.FindAllStringSubmatch(markup, -1) {
		for _, entry := range strings.Split(firstGroup(m), ",") {
			// Each entry is "<url> <descriptor>"; only the URL matters.
			fields := strings.Fields(entry)
			if len(fields) > 0 {
				admit(fields[0])
			}
		}
	}

	for _, m := range cssURLPattern.FindAllStringSubmatch(markup, -1) {
		admit(firstGroup(m))
	}

	return links
}

// firstGroup returns the first non-empty capture group of a match.
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}
