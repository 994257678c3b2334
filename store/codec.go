package store

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ChadProbert/celerity/model"
)

// encodeCommands writes the commands as a JSON object in insertion order.
// encoding/json would sort the keys, losing the order users arranged their
// shortcuts in, so the object is assembled by hand.
func encodeCommands(entries []model.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		cmd, err := json.Marshal(e.Command)
		if err != nil {
			return nil, err
		}
		buf.Write(cmd)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// decodeCommands parses a JSON commands object, preserving document order.
// gjson's ForEach walks object members in the order they appear, which is
// exactly the ordering contract the store keeps.
func decodeCommands(commands gjson.Result) ([]model.Entry, error) {
	if !commands.IsObject() {
		return nil, errors.Wrap(model.ErrBadSnapshot, "commands is not an object")
	}
	var entries []model.Entry
	var decodeErr error
	commands.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			decodeErr = errors.Wrapf(model.ErrBadSnapshot, "command %q is not an object", key.String())
			return false
		}
		var cmd model.Command
		if err := json.Unmarshal([]byte(value.Raw), &cmd); err != nil {
			decodeErr = errors.Wrapf(model.ErrBadSnapshot, "command %q: %v", key.String(), err)
			return false
		}
		if cmd.Name == "" || (cmd.URL == "" && cmd.Command == "") {
			decodeErr = errors.Wrapf(model.ErrBadSnapshot, "command %q is missing name or url", key.String())
			return false
		}
		entries = append(entries, model.Entry{Key: key.String(), Command: cmd})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return entries, nil
}
