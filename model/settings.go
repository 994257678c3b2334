package model

// Tab behavior choices for opening resolved links.
const (
	TabNew     = "new"
	TabCurrent = "current"
)

// SearchEngines maps the engine choice to its search URL template.
var SearchEngines = map[string]string{
	"google":     "https://www.google.com/search?q={}",
	"duckduckgo": "https://duckduckgo.com/?q={}",
}

// DefaultSearchEngine is used when the configured choice is unknown.
const DefaultSearchEngine = "duckduckgo"

// Settings is the resolver-facing view of user preferences. It is a value
// snapshot taken from the single process-wide owner on every resolution,
// so a settings change takes effect on the next query.
type Settings struct {
	Theme           string `json:"theme"`
	TabBehavior     string `json:"tabBehavior"`
	SearchEngine    string `json:"searchEngine"`
	SearchDelimiter string `json:"searchDelimiter"`
	PathDelimiter   string `json:"pathDelimiter"`
	SuggestionLimit int    `json:"suggestionLimit"`
}

// DefaultSettings mirrors the built-in first-run preferences.
func DefaultSettings() Settings {
	return Settings{
		Theme:           "dark",
		TabBehavior:     TabCurrent,
		SearchEngine:    DefaultSearchEngine,
		SearchDelimiter: " ",
		PathDelimiter:   "/",
		SuggestionLimit: 4,
	}
}

// SearchURL returns the default search engine's URL template.
func (s Settings) SearchURL() string {
	if tmpl, ok := SearchEngines[s.SearchEngine]; ok {
		return tmpl
	}
	return SearchEngines[DefaultSearchEngine]
}

// OpenInNewTab reports whether resolved links open a new browsing context.
func (s Settings) OpenInNewTab() bool {
	return s.TabBehavior == TabNew
}
