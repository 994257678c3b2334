// Package navigate performs the navigation side effect for a resolved
// action: it hands the target URLs to the system browser. Everything up
// to this point is pure computation.
package navigate

import (
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ChadProbert/celerity/model"
)

// Executor opens resolved URLs.
type Executor struct {
	open func(url string) error
}

// New returns an executor backed by the system browser.
func New() *Executor {
	return &Executor{open: browser.OpenURL}
}

// NewWithOpener returns an executor with a custom opener, used in tests.
func NewWithOpener(open func(url string) error) *Executor {
	return &Executor{open: open}
}

// Do opens every URL the action carries. With tab behavior "current" the
// first URL reuses the current browsing context and any further targets
// still open new ones, since one context cannot show two destinations.
// Opening through the OS browser always lands in a new tab, so the
// distinction matters to the browser page calling the HTTP API, not
// here; the contract is kept for both callers.
func (e *Executor) Do(action model.Action, s model.Settings) error {
	for i, target := range action.URLs {
		logrus.WithFields(logrus.Fields{
			"kind":   action.Kind,
			"url":    target,
			"newTab": s.OpenInNewTab() || i > 0,
		}).Debug("opening")
		if err := e.open(target); err != nil {
			return errors.Wrapf(err, "open %s", target)
		}
	}
	return nil
}
