package store

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ChadProbert/celerity/model"
)

// MarshalSnapshot serializes a backup document: the scalar settings plus
// the full commands object, in a stable field order.
func MarshalSnapshot(snap model.Snapshot) ([]byte, error) {
	commands, err := encodeCommands(snap.Commands)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, field := range []struct{ name, value string }{
		{"theme", snap.Theme},
		{"tabBehavior", snap.TabBehavior},
		{"searchEngine", snap.SearchEngine},
	} {
		name, _ := json.Marshal(field.name)
		value, _ := json.Marshal(field.value)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
		buf.WriteByte(',')
	}
	buf.WriteString(`"commands":`)
	buf.Write(commands)
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// UnmarshalSnapshot parses and validates a backup document. The commands
// field must be an object of the expected shape; the scalar fields are
// optional and stay empty when absent, so the caller keeps its current
// values for them. Validation failures leave nothing mutated.
func UnmarshalSnapshot(data []byte) (model.Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return model.Snapshot{}, errors.Wrap(model.ErrBadSnapshot, "not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return model.Snapshot{}, errors.Wrap(model.ErrBadSnapshot, "document is not an object")
	}

	commands := doc.Get("commands")
	if !commands.Exists() {
		return model.Snapshot{}, errors.Wrap(model.ErrBadSnapshot, "missing commands field")
	}
	entries, err := decodeCommands(commands)
	if err != nil {
		return model.Snapshot{}, err
	}

	return model.Snapshot{
		Theme:        doc.Get("theme").String(),
		TabBehavior:  doc.Get("tabBehavior").String(),
		SearchEngine: doc.Get("searchEngine").String(),
		Commands:     entries,
	}, nil
}

// ExportSnapshot assembles the manager's current commands with the given
// settings into a backup document.
func (m *Manager) ExportSnapshot(s model.Settings) ([]byte, error) {
	return MarshalSnapshot(model.Snapshot{
		Theme:        s.Theme,
		TabBehavior:  s.TabBehavior,
		SearchEngine: s.SearchEngine,
		Commands:     m.Entries(),
	})
}

// ImportSnapshot parses, validates, and atomically replaces the live
// commands. The parsed snapshot is returned so the settings owner can
// apply its scalar fields. A malformed document changes nothing.
func (m *Manager) ImportSnapshot(data []byte) (model.Snapshot, error) {
	snap, err := UnmarshalSnapshot(data)
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := m.Replace(snap.Commands); err != nil {
		return model.Snapshot{}, err
	}
	return snap, nil
}
