package suggest

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ChadProbert/celerity/model"
)

// endpoint describes one autocomplete source: where to send the query and
// how to pull phrases out of the response.
type endpoint struct {
	base  string
	parse func(body []byte) []string
}

func defaultEndpoints() map[string]endpoint {
	return map[string]endpoint{
		"duckduckgo": {
			base:  "https://duckduckgo.com/ac/",
			parse: parseDuckDuckGo,
		},
		"google": {
			base:  "https://suggestqueries.google.com/complete/search?client=firefox",
			parse: parseGoogle,
		},
	}
}

// SetEndpoint overrides an engine's autocomplete URL, keeping its
// response parser. Used by tests to point at a local server.
func (p *Provider) SetEndpoint(engine, base string) {
	ep := p.endpoints[engine]
	ep.base = base
	if ep.parse == nil {
		ep.parse = parseDuckDuckGo
	}
	p.endpoints[engine] = ep
}

// autocomplete queries the engine's suggestion endpoint with the free
// text portion of the query.
func (p *Provider) autocomplete(ctx context.Context, engine, query string) ([]string, error) {
	ep, ok := p.endpoints[engine]
	if !ok {
		ep = p.endpoints[model.DefaultSearchEngine]
	}

	u, err := url.Parse(ep.base)
	if err != nil {
		return nil, errors.Wrap(err, "autocomplete endpoint")
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "autocomplete request")
	}
	res, err := p.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "autocomplete fetch")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("autocomplete status %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "autocomplete body")
	}
	return ep.parse(body), nil
}

// parseDuckDuckGo pulls phrases out of the /ac/ response:
// [{"phrase":"..."}, ...]
func parseDuckDuckGo(body []byte) []string {
	var out []string
	for _, r := range gjson.GetBytes(body, "#.phrase").Array() {
		if r.String() != "" {
			out = append(out, r.String())
		}
	}
	return out
}

// parseGoogle pulls phrases out of the firefox-client response:
// ["query", ["...", ...], ...]
func parseGoogle(body []byte) []string {
	var out []string
	for _, r := range gjson.GetBytes(body, "1").Array() {
		if r.String() != "" {
			out = append(out, r.String())
		}
	}
	return out
}
