package core

import "time"

// Section is one of the fixed categories a note lives in.
type Section string

// The closed set of sections. Notes never exist outside of these.
const (
	SectionStory     Section = "story"
	SectionSessions  Section = "sessions"
	SectionQuests    Section = "quests"
	SectionNPCs      Section = "npcs"
	SectionLocations Section = "locations"
	SectionItems     Section = "items"
	SectionLore      Section = "lore"
)

// Sections lists every section in display order, with its human label.
var Sections = []struct {
	Key   Section
	Label string
}{
	{SectionStory, "Story"},
	{SectionSessions, "Sessions"},
	{SectionQuests, "Quests"},
	{SectionNPCs, "NPCs"},
	{SectionLocations, "Locations"},
	{SectionItems, "Items"},
	{SectionLore, "Lore"},
}

// ValidSection reports whether key belongs to the closed section set.
func ValidSection(key Section) bool {
	for _, s := range Sections {
		if s.Key == key {
			return true
		}
	}
	return false
}

// MaxTags caps the tag list of a single note.
const MaxTags = 24

// Note is the sole entity of the domain: a freeform campaign note.
// Content may embed [[Title]] links to other notes; those are resolved
// live by the graph functions, never cached on the note itself.
type Note struct {
	ID        string    `json:"id"`
	Section   Section   `json:"section"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Tags      []string  `json:"tags"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Pinned    bool      `json:"pinned"`
}

// Address returns the note's stable CLI address, "section/slug".
// Slugs are not unique; Resolve falls back to ids for ambiguous cases.
func (n *Note) Address() string {
	return string(n.Section) + "/" + n.Slug
}

// Clone returns a deep copy of the note.
func (n *Note) Clone() *Note {
	c := *n
	if n.Tags != nil {
		c.Tags = make([]string, len(n.Tags))
		copy(c.Tags, n.Tags)
	}
	return &c
}

// HasTag reports whether the note carries the tag (exact match).
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Meta is the schema stamp of a persisted store.
type Meta struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings carries campaign-level configuration persisted with the notes.
type Settings struct {
	CampaignName string `json:"campaignName"`
	System       string `json:"system"`
}

// SchemaVersion is the current blob schema version.
// A persisted blob without a positive version is treated as corrupt.
const SchemaVersion = 1
