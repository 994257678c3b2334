package model

// ActionKind tags what the resolver decided to do with an input.
type ActionKind string

const (
	// KindDirectURL navigates to a literal destination.
	KindDirectURL ActionKind = "url"
	// KindShortcut navigates to a shortcut's base URL.
	KindShortcut ActionKind = "shortcut"
	// KindSearch fills a shortcut's search template(s) with free text.
	KindSearch ActionKind = "search"
	// KindPath appends a literal path to a shortcut's origin.
	KindPath ActionKind = "path"
	// KindDefaultSearch falls back to the configured search engine.
	KindDefaultSearch ActionKind = "defaultSearch"
)

// Action is the resolver's output: one classified navigation intent
// carrying one or more fully formed target URLs. It is never persisted.
type Action struct {
	Kind ActionKind `json:"kind"`
	// Key is the matched shortcut key, when one matched.
	Key string `json:"key,omitempty"`
	// Query is the free-text suffix for searches, or the literal path
	// remainder for path navigation.
	Query string `json:"query,omitempty"`
	URLs []string `json:"urls"`
}

// URL returns the primary navigation target.
func (a Action) URL() string {
	if len(a.URLs) == 0 {
		return ""
	}
	return a.URLs[0]
}

// IsSearch reports whether the action carries free search text, which is
// what decides if external autocomplete is worth consulting.
func (a Action) IsSearch() bool {
	return a.Kind == KindSearch || a.Kind == KindDefaultSearch
}
