package core

import (
	"fmt"
	"strings"
	"time"
)

// Store is one immutable revision of the whole knowledge base.
// Mutations never touch a Store in place; the Service clones the current
// revision, applies the change, and swaps the pointer (see commit).
//
// Invariant (dual index): every id in Order[s] exists in Items with
// Section == s, and every note's id appears in exactly its own section's
// order list. CheckIntegrity verifies it; every mutation must preserve it.
type Store struct {
	Meta     Meta                 `json:"meta"`
	Settings Settings             `json:"settings"`
	Items    map[string]*Note     `json:"items"`
	Order    map[Section][]string `json:"orderBySection"`
}

// NewStore returns an empty store with all section order lists present.
func NewStore() *Store {
	now := time.Now()
	s := &Store{
		Meta:     Meta{Version: SchemaVersion, CreatedAt: now, UpdatedAt: now},
		Settings: Settings{CampaignName: "Untitled Campaign", System: "D&D 5e"},
		Items:    make(map[string]*Note),
		Order:    make(map[Section][]string, len(Sections)),
	}
	for _, sec := range Sections {
		s.Order[sec.Key] = []string{}
	}
	return s
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	c := &Store{
		Meta:     s.Meta,
		Settings: s.Settings,
		Items:    make(map[string]*Note, len(s.Items)),
		Order:    make(map[Section][]string, len(s.Order)),
	}
	for id, n := range s.Items {
		c.Items[id] = n.Clone()
	}
	for sec, ids := range s.Order {
		cp := make([]string, len(ids))
		copy(cp, ids)
		c.Order[sec] = cp
	}
	return c
}

// Stamp refreshes the store-level updatedAt. Called on every save.
func (s *Store) Stamp() {
	s.Meta.UpdatedAt = time.Now()
}

// Notes returns all notes in unspecified order.
func (s *Store) Notes() []*Note {
	out := make([]*Note, 0, len(s.Items))
	for _, n := range s.Items {
		out = append(out, n)
	}
	return out
}

// FindByTitle looks up a note by exact title, case-insensitive and
// whitespace-trimmed. Returns nil when no note matches.
func (s *Store) FindByTitle(title string) *Note {
	want := strings.ToLower(strings.TrimSpace(title))
	if want == "" {
		return nil
	}
	for _, n := range s.Items {
		if strings.ToLower(strings.TrimSpace(n.Title)) == want {
			return n
		}
	}
	return nil
}

// insert adds a freshly built note and prepends it to its section order.
func (s *Store) insert(n *Note) {
	s.Items[n.ID] = n
	s.Order[n.Section] = append([]string{n.ID}, s.Order[n.Section]...)
}

// remove deletes a note and its order entry. No-op if the id is absent.
func (s *Store) remove(id string) {
	n, ok := s.Items[id]
	if !ok {
		return
	}
	delete(s.Items, id)
	ids := s.Order[n.Section]
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	s.Order[n.Section] = out
}

// CheckIntegrity verifies the dual-index invariant between Items and Order.
func (s *Store) CheckIntegrity() error {
	seen := make(map[string]Section)
	for sec, ids := range s.Order {
		for _, id := range ids {
			n, ok := s.Items[id]
			if !ok {
				return fmt.Errorf("order list %q references missing note %s", sec, id)
			}
			if n.Section != sec {
				return fmt.Errorf("note %s is ordered under %q but belongs to %q", id, sec, n.Section)
			}
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("note %s appears in both %q and %q order lists", id, prev, sec)
			}
			seen[id] = sec
		}
	}
	for id := range s.Items {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("note %s is missing from its section order list", id)
		}
	}
	return nil
}
