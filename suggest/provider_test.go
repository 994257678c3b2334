package suggest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChadProbert/celerity/model"
	"github.com/ChadProbert/celerity/store"
)

func testCatalog() Catalog {
	return store.FromEntries([]model.Entry{
		{Key: "g", Command: model.Command{Name: "Gmail", URL: "https://mail.google.com/mail/u/0/#inbox"}},
		{Key: "y", Command: model.Command{
			Name:            "YouTube",
			URL:             "https://youtube.com/",
			SearchTemplates: []string{"/results?search_query={}"},
			Suggestions:     []string{"y trending", "y music"},
		}},
	})
}

// acServer serves duckduckgo-shaped autocomplete responses.
func acServer(t *testing.T, phrases ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, "[")
		for i, p := range phrases {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"phrase":%q}`, p)
		}
		fmt.Fprint(w, "]")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(t *testing.T, base string) *Provider {
	t.Helper()
	p := NewProvider(&http.Client{Timeout: 5 * time.Second})
	p.SetEndpoint("duckduckgo", base)
	return p
}

func TestExactKeyUsesLiteralSuggestionsOnly(t *testing.T) {
	// An exact shortcut match is not a search, so autocomplete is not
	// consulted; a failing endpoint must not matter.
	p := newTestProvider(t, "http://127.0.0.1:1/ac/")
	items, err := p.Suggest(context.Background(), "y", testCatalog(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"y trending", "y music"}, items)
}

func TestCommandSearchPrefixesExternalItems(t *testing.T) {
	srv := acServer(t, "cats", "cat videos", "c")
	p := newTestProvider(t, srv.URL)

	items, err := p.Suggest(context.Background(), "y c", testCatalog(), model.DefaultSettings())
	require.NoError(t, err)
	// "c" equals the search text and is excluded; the rest are prefixed
	// with the key and delimiter.
	assert.Equal(t, []string{"y cats", "y cat videos"}, items)
}

func TestLiteralSuggestionsPrecedeExternal(t *testing.T) {
	srv := acServer(t, "trek", "trails")
	p := newTestProvider(t, srv.URL)

	items, err := p.Suggest(context.Background(), "y tr", testCatalog(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"y trending", "y trek", "y trails"}, items)
}

func TestSuggestionLimit(t *testing.T) {
	srv := acServer(t, "one", "two", "three", "four", "five")
	p := newTestProvider(t, srv.URL)

	s := model.DefaultSettings()
	s.SuggestionLimit = 3
	items, err := p.Suggest(context.Background(), "y o", testCatalog(), s)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestDefaultSearchLeavesItemsBare(t *testing.T) {
	srv := acServer(t, "hello world lyrics", "hello worlds")
	p := newTestProvider(t, srv.URL)

	items, err := p.Suggest(context.Background(), "hello wor", store.New(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"hello world lyrics", "hello worlds"}, items)
}

func TestExternalFailureDegradesToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()
	p := newTestProvider(t, srv.URL)

	items, err := p.Suggest(context.Background(), "y tr", testCatalog(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"y trending"}, items)
}

func TestEmptyInputSuggestsNothing(t *testing.T) {
	p := newTestProvider(t, "http://127.0.0.1:1/ac/")
	items, err := p.Suggest(context.Background(), "   ", testCatalog(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOverlappingCallsResolveIndependently(t *testing.T) {
	// The caller decides which of its requests is newest; one slow call
	// must not poison another that starts while it is in flight, in
	// either arrival order.
	release := make(chan struct{})
	arrived := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "b" {
			close(arrived)
			<-release
			fmt.Fprint(w, `[{"phrase":"bears"}]`)
			return
		}
		fmt.Fprint(w, `[{"phrase":"apples"}]`)
	}))
	defer srv.Close()
	p := newTestProvider(t, srv.URL)

	catalog := testCatalog()
	settings := model.DefaultSettings()

	type result struct {
		items []string
		err   error
	}
	slow := make(chan result, 1)
	go func() {
		items, err := p.Suggest(context.Background(), "y b", catalog, settings)
		slow <- result{items, err}
	}()

	<-arrived
	items, err := p.Suggest(context.Background(), "y a", catalog, settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"y apples"}, items)

	close(release)
	got := <-slow
	require.NoError(t, got.err)
	assert.Equal(t, []string{"y bears"}, got.items)
}
