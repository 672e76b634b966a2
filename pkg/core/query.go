package core

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// VisibleNotes derives the ordered note list for a section under the
// given search text and tag filter.
//
// Pipeline:
//  1. Materialize the section's order list, dropping dangling ids
//     (defensive against invariant violations in hand-edited blobs).
//  2. Tag filter: exact string match against the note's tags.
//  3. Search: trimmed, lowercased substring of title, content or any tag.
//  4. Stable sort: pinned first, then updatedAt descending; ties keep
//     their order-list position.
func VisibleNotes(s *Store, section Section, searchText, tagFilter string) []*Note {
	var notes []*Note
	for _, id := range s.Order[section] {
		n, ok := s.Items[id]
		if !ok {
			continue
		}
		notes = append(notes, n)
	}

	if tagFilter != "" {
		kept := notes[:0]
		for _, n := range notes {
			if n.HasTag(tagFilter) {
				kept = append(kept, n)
			}
		}
		notes = kept
	}

	q := strings.ToLower(strings.TrimSpace(searchText))
	if q != "" {
		kept := notes[:0]
		for _, n := range notes {
			if matchesQuery(n, q) {
				kept = append(kept, n)
			}
		}
		notes = kept
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes
}

func matchesQuery(n *Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// AllTags returns the alphabetically sorted union of tags across all notes.
func AllTags(s *Store) []string {
	set := make(map[string]struct{})
	for _, n := range s.Items {
		for _, t := range n.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Match returns the notes whose "section/slug" address matches the glob
// pattern (doublestar syntax, so "npcs/*" and "**/captain-*" both work).
// Results follow section display order, then each section's order list.
func Match(s *Store, pattern string) ([]*Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	var out []*Note
	for _, sec := range Sections {
		for _, id := range s.Order[sec.Key] {
			n, ok := s.Items[id]
			if !ok {
				continue
			}
			if ok, _ := doublestar.Match(pattern, n.Address()); ok {
				out = append(out, n)
			}
		}
	}
	return out, nil
}
