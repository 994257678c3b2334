package resolver

import (
	"net/url"
	"regexp"
	"strings"
)

// urlPattern is deliberately permissive: optional scheme, a host with at
// least one dot, optional port, optional path/query. Anything it accepts
// is treated as a literal destination before shortcut matching runs.
var urlPattern = regexp.MustCompile(`^(?:[a-zA-Z][a-zA-Z0-9+.-]*://)?[\w-]+(?:\.[\w-]+)+(?::\d+)?(?:/\S*)?$`)

// IsURL reports whether the trimmed input looks like a literal destination.
func IsURL(input string) bool {
	return urlPattern.MatchString(input)
}

// EnsureScheme prepends https:// when no scheme is present.
func EnsureScheme(raw string) string {
	if strings.Contains(raw, "://") {
		return raw
	}
	return "https://" + raw
}

// Origin reduces a full URL to scheme://host, keeping a port only when it
// is literally present. This is the stable base templates and literal
// paths are appended to.
func Origin(raw string) string {
	u, err := url.Parse(EnsureScheme(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(raw, "/")
	}
	return u.Scheme + "://" + u.Host
}

// EncodeQuery percent-encodes free text for substitution into a {} slot.
// Spaces become %20, matching what browsers produce for typed queries.
func EncodeQuery(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// FillTemplate substitutes encoded free text into a template's {} slot.
func FillTemplate(tmpl, text string) string {
	return strings.ReplaceAll(tmpl, "{}", EncodeQuery(text))
}
