package core

import (
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Mentions finds unlinked references: notes whose title appears verbatim
// in the given note's content without a [[...]] marker around it. It
// builds an Aho-Corasick automaton over all other titles and scans the
// content once, so cost stays linear in content length even with many
// notes. Titles already covered by an explicit link are excluded, as is
// the note itself.
func Mentions(s *Store, source *Note) []*Note {
	type candidate struct {
		title string
		notes []*Note
	}

	linked := make(map[string]struct{})
	for _, l := range ExtractLinks(source.Content) {
		linked[strings.ToLower(l)] = struct{}{}
	}

	// One pattern per distinct lowercased title; several notes may share one.
	var patterns []string
	index := make(map[string]int)
	var byPattern []candidate
	for _, n := range s.Items {
		if n.ID == source.ID {
			continue
		}
		title := strings.ToLower(strings.TrimSpace(n.Title))
		if title == "" {
			continue
		}
		if _, already := linked[title]; already {
			continue
		}
		if i, ok := index[title]; ok {
			byPattern[i].notes = append(byPattern[i].notes, n)
			continue
		}
		index[title] = len(patterns)
		patterns = append(patterns, title)
		byPattern = append(byPattern, candidate{title: title, notes: []*Note{n}})
	}
	if len(patterns) == 0 {
		return nil
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  true,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	ac := builder.Build(patterns)

	seen := make(map[string]struct{})
	var out []*Note
	for _, m := range ac.FindAll(strings.ToLower(source.Content)) {
		for _, n := range byPattern[m.Pattern()].notes {
			if _, dup := seen[n.ID]; dup {
				continue
			}
			seen[n.ID] = struct{}{}
			out = append(out, n)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
