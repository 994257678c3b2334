// Package suggest produces ranked completion candidates for a partially
// typed query, mixing a command's literal suggestions and local shortcut
// matches with a best-effort external autocomplete source.
package suggest

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ChadProbert/celerity/model"
	"github.com/ChadProbert/celerity/resolver"
)

// Catalog is the store view suggestions need: keyed lookup plus ordered
// iteration for fuzzy matching.
type Catalog interface {
	Get(key string) (model.Command, bool)
	Entries() []model.Entry
}

// Provider merges local and external suggestions. Safe for concurrent
// use; overlapping calls resolve independently, and dropping a result
// that has been superseded is the caller's job, since only the caller
// knows which of its requests is newest (the websocket layer does this
// with per-connection sequence numbers).
type Provider struct {
	client    *http.Client
	endpoints map[string]endpoint
}

// NewProvider returns a provider using the given HTTP client. A nil
// client gets a default one; no timeout is set, since a hanging
// autocomplete call only delays that keystroke's suggestion update.
func NewProvider(client *http.Client) *Provider {
	if client == nil {
		client = &http.Client{}
	}
	return &Provider{client: client, endpoints: defaultEndpoints()}
}

// Suggest resolves the input to determine intent, then assembles an
// ordered list: literal command suggestions, local shortcut matches, then
// external autocomplete results, truncated to the suggestion limit.
// External source failures degrade silently to local-only suggestions.
func (p *Provider) Suggest(ctx context.Context, raw string, catalog Catalog, s model.Settings) ([]string, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, nil
	}

	action, err := resolver.Resolve(input, catalog, s)
	if err != nil {
		return nil, err
	}

	limit := s.SuggestionLimit
	if limit <= 0 {
		limit = model.DefaultSettings().SuggestionLimit
	}

	items := literalSuggestions(input, action, catalog)
	if action.Kind == model.KindDefaultSearch {
		items = append(items, nearMissCorrections(input, catalog, s)...)
		items = append(items, fuzzyShortcuts(input, catalog)...)
	}

	if action.IsSearch() && len(dedupeFold(items)) < limit {
		external, err := p.autocomplete(ctx, s.SearchEngine, action.Query)
		if err != nil {
			logrus.WithError(err).Debug("autocomplete unavailable, keeping local suggestions only")
		}
		prefix := ""
		if action.Kind == model.KindSearch {
			prefix = action.Key + s.SearchDelimiter
		}
		for _, item := range external {
			if strings.EqualFold(item, action.Query) {
				continue
			}
			items = append(items, prefix+item)
		}
	}

	merged := dedupeFold(items)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

// literalSuggestions surfaces a matched command's stored example queries,
// filtered to those the input is a prefix of. Suggestions are fully
// formed key+delimiter+text strings, so an exact key match passes all of
// them through.
func literalSuggestions(input string, action model.Action, catalog Catalog) []string {
	if action.Key == "" {
		return nil
	}
	cmd, ok := catalog.Get(action.Key)
	if !ok {
		return nil
	}
	lowered := strings.ToLower(input)
	var out []string
	for _, sug := range cmd.Suggestions {
		if strings.HasPrefix(strings.ToLower(sug), lowered) {
			out = append(out, sug)
		}
	}
	return out
}

// dedupeFold removes case-insensitive duplicates, keeping first
// occurrences in order.
func dedupeFold(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		folded := strings.ToLower(item)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, item)
	}
	return out
}
