package core

import (
	"sort"
	"strings"
)

// OutgoingLinks returns the titles the note links to, in first-occurrence
// order. Link targets are resolved by title, so a rename elsewhere can
// silently turn an outgoing link into a dangling one; FollowLink handles
// dangling targets by creating stubs.
func OutgoingLinks(n *Note) []string {
	return ExtractLinks(n.Content)
}

// Backlinks returns every note whose content links to the given note's
// current title, case-insensitively, ordered by updatedAt descending.
// The note itself is excluded even when self-referential. Backlinks are
// recomputed live from current titles on every call; titles change too
// often to make a cached index worth keeping consistent.
func Backlinks(s *Store, target *Note) []*Note {
	want := strings.ToLower(strings.TrimSpace(target.Title))
	if want == "" {
		return nil
	}

	var out []*Note
	for _, n := range s.Items {
		if n.ID == target.ID {
			continue
		}
		for _, link := range ExtractLinks(n.Content) {
			if strings.ToLower(link) == want {
				out = append(out, n)
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
