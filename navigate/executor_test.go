package navigate

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChadProbert/celerity/model"
)

func TestDoOpensEveryTarget(t *testing.T) {
	var opened []string
	e := NewWithOpener(func(url string) error {
		opened = append(opened, url)
		return nil
	})

	action := model.Action{
		Kind: model.KindSearch,
		URLs: []string{"https://a.example.com", "https://b.example.com"},
	}
	require.NoError(t, e.Do(action, model.DefaultSettings()))
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, opened)
}

func TestDoStopsOnError(t *testing.T) {
	calls := 0
	e := NewWithOpener(func(url string) error {
		calls++
		return errors.New("no browser")
	})

	action := model.Action{Kind: model.KindDirectURL, URLs: []string{"https://a.example.com", "https://b.example.com"}}
	err := e.Do(action, model.DefaultSettings())
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
