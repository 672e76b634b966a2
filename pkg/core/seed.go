package core

import (
	_ "embed"
	"encoding/json"
	"time"
)

// The demo dataset is a plain fixture, not engine logic: a manifest of
// section/title/tags/content entries fed through the normal note
// construction path. Reset and the corrupt-blob fallback share it.
//
//go:embed seed.json
var seedJSON []byte

type seedEntry struct {
	Section Section  `json:"section"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags"`
	Content string   `json:"content"`
}

// DefaultStore builds a freshly seeded store with new ids and current
// timestamps. Entries are prepended in manifest order, matching what a
// user creating them one by one would see.
func DefaultStore() *Store {
	s := NewStore()

	var entries []seedEntry
	if err := json.Unmarshal(seedJSON, &entries); err != nil {
		// The fixture is compiled in; a decode failure is a build defect.
		panic("core: invalid embedded seed fixture: " + err.Error())
	}

	now := time.Now()
	for _, e := range entries {
		n := &Note{
			ID:        NewID(),
			Section:   e.Section,
			Title:     e.Title,
			Slug:      Slugify(e.Title),
			Tags:      e.Tags,
			Content:   e.Content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.insert(n)
	}
	return s
}
