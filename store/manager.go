package store

import (
	"sync"

	"github.com/ChadProbert/celerity/model"
)

// Manager owns the live shortcut map. Every mutation persists the full
// map before the in-memory copy becomes visible, so the durable document
// and the in-memory structure cannot silently diverge: a failed persist
// leaves both untouched.
type Manager struct {
	mu sync.RWMutex
	fs *FileStore
	s  *Store
}

// NewManager loads the persisted map (or the defaults on first run).
func NewManager(fs *FileStore) (*Manager, error) {
	s, err := fs.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{fs: fs, s: s}, nil
}

// Get returns the command for a key.
func (m *Manager) Get(key string) (model.Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Get(key)
}

// Has reports whether a key exists.
func (m *Manager) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Has(key)
}

// Entries returns the commands in insertion order.
func (m *Manager) Entries() []model.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Entries()
}

// Len returns the number of commands.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s.Len()
}

// Set validates, inserts or overwrites, and persists.
func (m *Manager) Set(key string, cmd model.Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.s.Clone()
	if err := next.Set(key, cmd); err != nil {
		return err
	}
	return m.swap(next)
}

// Delete removes a key and persists.
func (m *Manager) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.s.Clone()
	next.Delete(key)
	return m.swap(next)
}

// Reset restores the built-in defaults and persists.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.swap(DefaultStore())
}

// Replace swaps in a whole new set of entries atomically: every entry is
// validated into a fresh store first, and the live map only changes once
// validation and persistence both succeed.
func (m *Manager) Replace(entries []model.Entry) error {
	next := New()
	for _, e := range entries {
		if err := next.Set(e.Key, e.Command); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.swap(next)
}

// swap persists next and, only then, makes it the live store.
// Caller holds the write lock.
func (m *Manager) swap(next *Store) error {
	if err := m.fs.Persist(next); err != nil {
		return err
	}
	m.s = next
	return nil
}
