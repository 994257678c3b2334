package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Command is the value a shortcut key maps to.
type Command struct {
	// Name is the human-readable display label.
	Name string `json:"name"`
	// URL is the base destination, always carrying a scheme.
	URL string `json:"url"`
	// SearchTemplates are path+query templates with a {} placeholder,
	// appended to the URL's origin when the command is invoked with a
	// search suffix. More than one template means more than one
	// simultaneous navigation target.
	SearchTemplates []string `json:"-"`
	// Suggestions are literal example queries (fully formed
	// key+delimiter+text strings) shown before the user types a suffix.
	Suggestions []string `json:"suggestions,omitempty"`
	// Command redirects resolution to another input string when set.
	Command string `json:"command,omitempty"`
}

// Entry is a key plus its command, used for ordered iteration.
type Entry struct {
	Key     string  `json:"key"`
	Command Command `json:"command"`
}

// commandJSON mirrors the persisted document shape, where searchTemplate
// may be a single string or an ordered list.
type commandJSON struct {
	Name           string          `json:"name"`
	URL            string          `json:"url"`
	SearchTemplate json.RawMessage `json:"searchTemplate,omitempty"`
	Suggestions    []string        `json:"suggestions,omitempty"`
	Command        string          `json:"command,omitempty"`
}

// MarshalJSON writes a single template back as a plain string so exported
// documents round-trip with what users wrote.
func (c Command) MarshalJSON() ([]byte, error) {
	out := commandJSON{
		Name:        c.Name,
		URL:         c.URL,
		Suggestions: c.Suggestions,
		Command:     c.Command,
	}
	switch len(c.SearchTemplates) {
	case 0:
	case 1:
		raw, err := json.Marshal(c.SearchTemplates[0])
		if err != nil {
			return nil, err
		}
		out.SearchTemplate = raw
	default:
		raw, err := json.Marshal(c.SearchTemplates)
		if err != nil {
			return nil, err
		}
		out.SearchTemplate = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts searchTemplate as either a string or a list.
func (c *Command) UnmarshalJSON(data []byte) error {
	var in commandJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Name = in.Name
	c.URL = in.URL
	c.Suggestions = in.Suggestions
	c.Command = in.Command
	c.SearchTemplates = nil
	if len(in.SearchTemplate) == 0 {
		return nil
	}
	trimmed := bytes.TrimSpace(in.SearchTemplate)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &c.SearchTemplates)
	}
	var single string
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	c.SearchTemplates = []string{single}
	return nil
}

// Validate reports whether the command has the minimum required fields.
// URL well-formedness beyond non-emptiness is deliberately not checked;
// a broken URL fails at navigation time, not here.
func (c Command) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCommand
	}
	if strings.TrimSpace(c.URL) == "" && strings.TrimSpace(c.Command) == "" {
		return ErrInvalidCommand
	}
	return nil
}
