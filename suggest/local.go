package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"

	"github.com/ChadProbert/celerity/model"
)

// maxKeyEditDistance is how far a mistyped key may be from a stored one
// before the correction stops being offered.
const maxKeyEditDistance = 1

// nearMissCorrections catches a mistyped key in search-command syntax:
// when the candidate key before the delimiter is unknown but one edit
// away from a stored key, the corrected query is offered.
func nearMissCorrections(input string, catalog Catalog, s model.Settings) []string {
	i := strings.Index(input, s.SearchDelimiter)
	if i <= 0 {
		return nil
	}
	candidate := input[:i]
	rest := strings.TrimSpace(input[i+len(s.SearchDelimiter):])
	if rest == "" {
		return nil
	}
	if _, exists := catalog.Get(candidate); exists {
		return nil
	}
	var out []string
	for _, e := range catalog.Entries() {
		if levenshtein.ComputeDistance(candidate, e.Key) <= maxKeyEditDistance {
			out = append(out, e.Key+s.SearchDelimiter+rest)
		}
	}
	return out
}

// fuzzyShortcuts matches the input against stored command names and keys
// and offers the keys themselves as completions.
func fuzzyShortcuts(input string, catalog Catalog) []string {
	if len(input) < 2 {
		return nil
	}
	entries := catalog.Entries()
	haystack := make([]string, len(entries))
	for i, e := range entries {
		haystack[i] = e.Key + " " + e.Command.Name
	}
	matches := fuzzy.Find(input, haystack)
	var out []string
	for _, m := range matches {
		out = append(out, entries[m.Index].Key)
	}
	return out
}
