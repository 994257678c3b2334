package cli

import (
	"testing"

	"github.com/ChadProbert/celerity/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return tmpDir
}

func TestInitCLI(t *testing.T) {
	cmd := InitCLI()

	require.NotNil(t, cmd)
	assert.Equal(t, "celerity", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"serve", "resolve", "suggest", "list", "add", "remove", "reset", "export", "import"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestCLIFlags(t *testing.T) {
	cmd := InitCLI()
	flags := cmd.PersistentFlags()

	for _, name := range []string{"init-config", "listen-addr", "data-dir", "search-engine", "suggestion-limit"} {
		assert.NotNil(t, flags.Lookup(name), "%s flag should exist", name)
	}
}

func TestAddRemovePersist(t *testing.T) {
	isolateHome(t)
	dataDir := t.TempDir()

	cmd := InitCLI()
	cmd.SetArgs([]string{"add", "hn", "--name", "Hacker News", "--url", "news.ycombinator.com", "--data-dir", dataDir})
	require.NoError(t, cmd.Execute())

	fs, err := store.NewFileStore(dataDir)
	require.NoError(t, err)
	s, err := fs.Load()
	require.NoError(t, err)
	c, ok := s.Get("hn")
	require.True(t, ok)
	assert.Equal(t, "Hacker News", c.Name)
	assert.Equal(t, "https://news.ycombinator.com", c.URL)

	cmd = InitCLI()
	cmd.SetArgs([]string{"remove", "hn", "--data-dir", dataDir})
	require.NoError(t, cmd.Execute())

	s, err = fs.Load()
	require.NoError(t, err)
	assert.False(t, s.Has("hn"))
}

func TestRemoveUnknownKey(t *testing.T) {
	isolateHome(t)
	dataDir := t.TempDir()

	cmd := InitCLI()
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"remove", "nope", "--data-dir", dataDir})
	assert.Error(t, cmd.Execute())
}

func TestResolveCommand(t *testing.T) {
	isolateHome(t)
	dataDir := t.TempDir()

	cmd := InitCLI()
	cmd.SetArgs([]string{"resolve", "g cats", "--data-dir", dataDir})
	require.NoError(t, cmd.Execute())
}
