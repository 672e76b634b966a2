// Package markdown renders the note store as a tree of Markdown files
// with YAML frontmatter, one file per note, for use in external editors
// (Obsidian and friends). Export only; the JSON blob stays the single
// source of truth.
package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lorekeep/lorekeep/pkg/core"
)

// frontmatter is the per-note metadata block. Field order is fixed by
// the struct so exports diff cleanly.
type frontmatter struct {
	Title   string   `yaml:"title"`
	Tags    []string `yaml:"tags,omitempty"`
	Pinned  bool     `yaml:"pinned,omitempty"`
	Created string   `yaml:"created"`
	Updated string   `yaml:"updated"`
}

// Render serializes a single note to Markdown with YAML frontmatter.
func Render(n *core.Note) ([]byte, error) {
	var buf bytes.Buffer

	fm := frontmatter{
		Title:   n.Title,
		Tags:    n.Tags,
		Pinned:  n.Pinned,
		Created: n.CreatedAt.Format("2006-01-02"),
		Updated: n.UpdatedAt.Format("2006-01-02"),
	}

	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, err
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	if n.Content != "" && n.Content[len(n.Content)-1] != '\n' {
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// ExportTree writes one <section>/<slug>.md per note under dir. Notes
// with an empty or colliding slug fall back to their id as filename, so
// no note is silently dropped.
func ExportTree(s *core.Store, dir string) error {
	used := make(map[string]bool)

	for _, sec := range core.Sections {
		for _, id := range s.Order[sec.Key] {
			n, ok := s.Items[id]
			if !ok {
				continue
			}

			name := n.Slug
			if name == "" || used[string(n.Section)+"/"+name] {
				name = n.ID
			}
			used[string(n.Section)+"/"+name] = true

			data, err := Render(n)
			if err != nil {
				return fmt.Errorf("failed to render note %s: %w", n.ID, err)
			}

			path := filepath.Join(dir, string(n.Section), name+".md")
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create section directory: %w", err)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
	}
	return nil
}
