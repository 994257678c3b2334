package store

import "github.com/ChadProbert/celerity/model"

// DefaultEntries is the built-in shortcut set seeded on first run and
// restored on reset.
func DefaultEntries() []model.Entry {
	return []model.Entry{
		{Key: "g", Command: model.Command{
			Name: "Gmail",
			URL:  "https://mail.google.com/mail/u/0/#inbox",
		}},
		{Key: "y", Command: model.Command{
			Name:            "YouTube",
			URL:             "https://youtube.com/",
			SearchTemplates: []string{"/results?search_query={}"},
			Suggestions:     []string{"y trending", "y music"},
		}},
		{Key: "d", Command: model.Command{
			Name: "Drive",
			URL:  "https://drive.google.com/drive/home",
		}},
		{Key: "c", Command: model.Command{
			Name: "Calendar",
			URL:  "https://calendar.google.com/calendar/r",
		}},
		{Key: "gh", Command: model.Command{
			Name:            "GitHub",
			URL:             "https://github.com/",
			SearchTemplates: []string{"/search?q={}", "/search?q={}&type=repositories"},
		}},
		{Key: "r", Command: model.Command{
			Name:            "Reddit",
			URL:             "https://reddit.com",
			SearchTemplates: []string{"/search/?q={}"},
			Suggestions:     []string{"r/popular", "r/all"},
		}},
		{Key: "m", Command: model.Command{
			Name:            "Maps",
			URL:             "https://google.com/maps",
			SearchTemplates: []string{"/maps/search/{}"},
		}},
		{Key: "w", Command: model.Command{
			Name:            "Wikipedia",
			URL:             "https://en.wikipedia.org",
			SearchTemplates: []string{"/wiki/Special:Search?search={}"},
		}},
	}
}

// DefaultStore returns a fresh store seeded with the built-in shortcuts.
func DefaultStore() *Store {
	return FromEntries(DefaultEntries())
}
