// Package resolver classifies raw new-tab input into a navigation action.
// Resolution is pure: it reads the shortcut store and a settings snapshot
// and produces an action descriptor, never performing I/O itself.
package resolver

import (
	"strings"

	"github.com/ChadProbert/celerity/model"
)

// Lookup is the read-only store view resolution needs.
type Lookup interface {
	Get(key string) (model.Command, bool)
}

// Resolve classifies raw input, checking cases in strict priority order:
// literal URL, exact shortcut key, search-command syntax, path-command
// syntax, then the default search fallback. The first match wins; in
// particular a URL-looking input beats a coincidentally matching key, and
// the search split is checked before the path split.
func Resolve(raw string, store Lookup, s model.Settings) (model.Action, error) {
	return resolve(raw, store, s, nil)
}

func resolve(raw string, store Lookup, s model.Settings, seen map[string]bool) (model.Action, error) {
	input := strings.TrimSpace(raw)

	if IsURL(input) {
		return model.Action{
			Kind: model.KindDirectURL,
			URLs: []string{EnsureScheme(input)},
		}, nil
	}

	if cmd, ok := store.Get(input); ok {
		if cmd.Command != "" {
			// Alias: resolve the referenced string instead. The visited
			// set turns a redirection loop into an error rather than
			// unbounded recursion.
			if seen == nil {
				seen = make(map[string]bool)
			}
			if seen[input] {
				return model.Action{}, model.ErrRedirectCycle
			}
			seen[input] = true
			return resolve(cmd.Command, store, s, seen)
		}
		return model.Action{
			Kind: model.KindShortcut,
			Key:  input,
			URLs: []string{cmd.URL},
		}, nil
	}

	if key, rest, ok := splitFirst(input, s.SearchDelimiter); ok {
		text := strings.TrimSpace(rest)
		if cmd, found := store.Get(key); found && text != "" {
			return searchAction(key, cmd, text), nil
		}
	}

	if key, rest, ok := splitFirst(input, s.PathDelimiter); ok {
		if cmd, found := store.Get(key); found && rest != "" {
			// The remainder is used verbatim; it may contain further
			// slashes forming a deep path.
			return model.Action{
				Kind:  model.KindPath,
				Key:   key,
				Query: rest,
				URLs:  []string{Origin(cmd.URL) + "/" + rest},
			}, nil
		}
	}

	return model.Action{
		Kind:  model.KindDefaultSearch,
		Query: input,
		URLs:  []string{FillTemplate(s.SearchURL(), input)},
	}, nil
}

// searchAction fills the command's search template(s) with encoded text.
// A command without templates falls back to its bare URL.
func searchAction(key string, cmd model.Command, text string) model.Action {
	action := model.Action{
		Kind:  model.KindSearch,
		Key:   key,
		Query: text,
	}
	if len(cmd.SearchTemplates) == 0 {
		action.URLs = []string{cmd.URL}
		return action
	}
	origin := Origin(cmd.URL)
	encoded := EncodeQuery(text)
	for _, tmpl := range cmd.SearchTemplates {
		action.URLs = append(action.URLs, origin+strings.ReplaceAll(tmpl, "{}", encoded))
	}
	return action
}

// splitFirst splits on the first occurrence of delim only.
func splitFirst(input, delim string) (key, rest string, ok bool) {
	if delim == "" {
		return "", "", false
	}
	i := strings.Index(input, delim)
	if i < 0 {
		return "", "", false
	}
	return input[:i], input[i+len(delim):], true
}
