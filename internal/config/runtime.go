package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ChadProbert/celerity/model"
)

const settingsFile = "settings.json"

// persistedSettings are the scalar preferences the settings surface may
// change at runtime; the rest of Config only changes via file/env/flags.
type persistedSettings struct {
	Theme        string `json:"theme"`
	TabBehavior  string `json:"tabBehavior"`
	SearchEngine string `json:"searchEngine"`
}

// Runtime is the single process-wide owner of mutable settings. The
// resolver and suggestion provider take a Settings() snapshot on every
// call, so updates take effect on the next query without any shared
// mutable state leaking into them.
type Runtime struct {
	mu   sync.RWMutex
	cfg  Config
	path string
}

// NewRuntime overlays any persisted settings onto the loaded config.
// A malformed settings file is treated as no data.
func NewRuntime(cfg *Config) *Runtime {
	r := &Runtime{cfg: *cfg, path: filepath.Join(cfg.DataDir, settingsFile)}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("could not read settings file")
		}
		return r
	}
	var p persistedSettings
	if err := json.Unmarshal(data, &p); err != nil {
		logrus.WithError(err).Warn("settings file is malformed, using config values")
		return r
	}
	r.commit(r.overlay(p))
	return r
}

// Settings returns a value snapshot of the current preferences.
func (r *Runtime) Settings() model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Settings()
}

// Config returns a copy of the full configuration.
func (r *Runtime) Config() Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg
}

// SettingsUpdate carries the fields a settings change may touch; nil
// means keep the current value.
type SettingsUpdate struct {
	Theme        *string `json:"theme"`
	TabBehavior  *string `json:"tabBehavior"`
	SearchEngine *string `json:"searchEngine"`
}

// Update validates and persists a settings change, returning the
// resulting snapshot. The durable copy is written first and the
// in-memory copy committed only on success, so a failed write leaves
// Settings() serving the previous values.
func (r *Runtime) Update(u SettingsUpdate) (model.Settings, error) {
	if u.TabBehavior != nil && *u.TabBehavior != model.TabNew && *u.TabBehavior != model.TabCurrent {
		return model.Settings{}, errors.Errorf("unknown tab behavior %q", *u.TabBehavior)
	}
	if u.SearchEngine != nil {
		if _, ok := model.SearchEngines[*u.SearchEngine]; !ok {
			return model.Settings{}, errors.Errorf("unknown search engine %q", *u.SearchEngine)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.current()
	if u.Theme != nil {
		next.Theme = *u.Theme
	}
	if u.TabBehavior != nil {
		next.TabBehavior = *u.TabBehavior
	}
	if u.SearchEngine != nil {
		next.SearchEngine = *u.SearchEngine
	}
	if err := r.persist(next); err != nil {
		return model.Settings{}, err
	}
	r.commit(next)
	return r.cfg.Settings(), nil
}

// ApplySnapshot takes the scalar fields of an imported backup document.
// Empty fields keep their current values rather than erroring. As with
// Update, nothing is committed unless the write succeeds.
func (r *Runtime) ApplySnapshot(snap model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := r.overlay(persistedSettings{
		Theme:        snap.Theme,
		TabBehavior:  snap.TabBehavior,
		SearchEngine: snap.SearchEngine,
	})
	if err := r.persist(next); err != nil {
		return err
	}
	r.commit(next)
	return nil
}

// current snapshots the mutable subset. Caller holds a lock.
func (r *Runtime) current() persistedSettings {
	return persistedSettings{
		Theme:        r.cfg.Theme,
		TabBehavior:  r.cfg.TabBehavior,
		SearchEngine: r.cfg.SearchEngine,
	}
}

// overlay merges non-empty, valid fields of p onto the current values
// without committing anything. Caller holds a lock.
func (r *Runtime) overlay(p persistedSettings) persistedSettings {
	next := r.current()
	if p.Theme != "" {
		next.Theme = p.Theme
	}
	if p.TabBehavior == model.TabNew || p.TabBehavior == model.TabCurrent {
		next.TabBehavior = p.TabBehavior
	}
	if _, ok := model.SearchEngines[p.SearchEngine]; ok {
		next.SearchEngine = p.SearchEngine
	}
	return next
}

// commit makes p the live settings. Caller holds the write lock (or is
// still constructing the runtime).
func (r *Runtime) commit(p persistedSettings) {
	r.cfg.Theme = p.Theme
	r.cfg.TabBehavior = p.TabBehavior
	r.cfg.SearchEngine = p.SearchEngine
}

// persist writes the candidate scalar settings. Caller holds the write
// lock.
func (r *Runtime) persist(p persistedSettings) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write settings file")
	}
	return errors.Wrap(os.Rename(tmp, r.path), "replace settings file")
}
