package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChadProbert/celerity/model"
	"github.com/ChadProbert/celerity/resolver"
)

func TestDefaultGitHubSearchIsMultiTarget(t *testing.T) {
	// The seeded set covers every command shape, including a command
	// whose search opens more than one target at once.
	action, err := resolver.Resolve("gh celerity", DefaultStore(), model.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://github.com/search?q=celerity",
		"https://github.com/search?q=celerity&type=repositories",
	}, action.URLs)
}

func TestSetValidation(t *testing.T) {
	s := New()

	err := s.Set("", model.Command{Name: "X", URL: "https://x.example.com"})
	assert.ErrorIs(t, err, model.ErrInvalidCommand)

	err = s.Set("x", model.Command{URL: "https://x.example.com"})
	assert.ErrorIs(t, err, model.ErrInvalidCommand)

	err = s.Set("x", model.Command{Name: "X"})
	assert.ErrorIs(t, err, model.ErrInvalidCommand)

	assert.Equal(t, 0, s.Len())

	// An alias needs no url of its own; resolution follows the
	// referenced key instead.
	require.NoError(t, s.Set("alias", model.Command{Name: "Alias", Command: "x"}))
}

func TestSetAutoPrefixesScheme(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("x", model.Command{Name: "X", URL: "x.example.com"}))
	cmd, ok := s.Get("x")
	require.True(t, ok)
	assert.Equal(t, "https://x.example.com", cmd.URL)

	// An explicit scheme is left alone.
	require.NoError(t, s.Set("h", model.Command{Name: "H", URL: "http://h.example.com"}))
	cmd, _ = s.Get("h")
	assert.Equal(t, "http://h.example.com", cmd.URL)
}

func TestInsertionOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("c", model.Command{Name: "C", URL: "https://c.example.com"}))
	require.NoError(t, s.Set("a", model.Command{Name: "A", URL: "https://a.example.com"}))
	require.NoError(t, s.Set("b", model.Command{Name: "B", URL: "https://b.example.com"}))

	keys := func() []string {
		var out []string
		for _, e := range s.Entries() {
			out = append(out, e.Key)
		}
		return out
	}
	assert.Equal(t, []string{"c", "a", "b"}, keys())

	// Overwriting keeps the original position.
	require.NoError(t, s.Set("a", model.Command{Name: "A2", URL: "https://a2.example.com"}))
	assert.Equal(t, []string{"c", "a", "b"}, keys())
	cmd, _ := s.Get("a")
	assert.Equal(t, "A2", cmd.Name)

	s.Delete("a")
	assert.Equal(t, []string{"c", "b"}, keys())
	assert.False(t, s.Has("a"))

	// Deleting a missing key is a no-op.
	s.Delete("zzz")
	assert.Equal(t, 2, s.Len())
}

func TestSetIdempotence(t *testing.T) {
	cmd := model.Command{Name: "X", URL: "https://x.example.com"}
	s := New()
	require.NoError(t, s.Set("x", cmd))
	once := s.Entries()
	require.NoError(t, s.Set("x", cmd))
	assert.Equal(t, once, s.Entries())
}

func TestCloneIsIndependent(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("x", model.Command{Name: "X", URL: "https://x.example.com"}))
	c := s.Clone()
	require.NoError(t, c.Set("y", model.Command{Name: "Y", URL: "https://y.example.com"}))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}
