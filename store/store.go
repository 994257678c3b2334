// Package store holds the shortcut map: an ordered mapping from short keys
// to commands, persisted as a JSON document. The Store type is the plain
// in-memory structure; Manager wraps it with persistence and locking.
package store

import (
	"strings"

	"github.com/ChadProbert/celerity/model"
	"github.com/ChadProbert/celerity/resolver"
)

// Store is an insertion-ordered map of shortcut keys to commands.
// It is not safe for concurrent use; Manager serialises access.
type Store struct {
	order []string
	cmds  map[string]model.Command
}

// New returns an empty store.
func New() *Store {
	return &Store{cmds: make(map[string]model.Command)}
}

// FromEntries builds a store from ordered entries, last write winning on
// duplicate keys.
func FromEntries(entries []model.Entry) *Store {
	s := New()
	for _, e := range entries {
		s.put(e.Key, e.Command)
	}
	return s
}

// Get returns the command for a key.
func (s *Store) Get(key string) (model.Command, bool) {
	cmd, ok := s.cmds[key]
	return cmd, ok
}

// Has reports whether a key exists.
func (s *Store) Has(key string) bool {
	_, ok := s.cmds[key]
	return ok
}

// Set validates and inserts or overwrites a command. A bare host URL is
// auto-prefixed with https://. Overwrite confirmation is the UI layer's
// concern; the store applies whatever it is handed.
func (s *Store) Set(key string, cmd model.Command) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return model.ErrInvalidCommand
	}
	if err := cmd.Validate(); err != nil {
		return err
	}
	if cmd.URL != "" {
		cmd.URL = resolver.EnsureScheme(strings.TrimSpace(cmd.URL))
	}
	s.put(key, cmd)
	return nil
}

// put inserts without validation, preserving the position of existing keys.
func (s *Store) put(key string, cmd model.Command) {
	if _, exists := s.cmds[key]; !exists {
		s.order = append(s.order, key)
	}
	s.cmds[key] = cmd
}

// Delete removes a key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	if _, exists := s.cmds[key]; !exists {
		return
	}
	delete(s.cmds, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Entries returns the commands in insertion order.
func (s *Store) Entries() []model.Entry {
	entries := make([]model.Entry, 0, len(s.order))
	for _, key := range s.order {
		entries = append(entries, model.Entry{Key: key, Command: s.cmds[key]})
	}
	return entries
}

// Len returns the number of commands.
func (s *Store) Len() int {
	return len(s.order)
}

// Clone returns an independent copy, used to keep mutations transactional
// with respect to persistence.
func (s *Store) Clone() *Store {
	c := &Store{
		order: append([]string(nil), s.order...),
		cmds:  make(map[string]model.Command, len(s.cmds)),
	}
	for k, v := range s.cmds {
		c.cmds[k] = v
	}
	return c
}

// Clear removes every command.
func (s *Store) Clear() {
	s.order = nil
	s.cmds = make(map[string]model.Command)
}
