package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// StubContent is the placeholder body of a note created by following a
// link whose target does not exist yet.
const StubContent = "(Made from a link, please work me out.)"

// Service owns the current store revision and the session view state,
// and runs every mutation through the same commit path: clone the
// revision, apply the change, persist the whole blob, swap the pointer.
// Readers always see a complete, consistent revision.
//
// Missing-id mutations are silent no-ops rather than errors: the caller
// may legitimately race a delete against a pending edit.
type Service struct {
	mu      sync.RWMutex
	store   *Store
	view    ViewState
	gateway Gateway
	logger  *slog.Logger
}

// NewService creates a Service over the given gateway. The store starts
// empty; call Load to read the persisted blob (or seed the default).
func NewService(gateway Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   NewStore(),
		view:    DefaultViewState(),
		gateway: gateway,
		logger:  logger,
	}
}

// Load reads the persisted store. An absent blob, a parse failure, or a
// blob without a positive schema version all fall back to the seeded
// default store, which is then persisted. First run and corrupted state
// are deliberately indistinguishable: both yield a usable store.
func (s *Service) Load(ctx context.Context) error {
	loaded, err := s.gateway.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Info("no store blob found, seeding default")
	case err != nil:
		s.logger.Warn("store blob unreadable, seeding default", "error", err)
	case loaded.Meta.Version < 1:
		s.logger.Warn("store blob has no schema version, seeding default")
		loaded = nil
	}

	if err != nil || loaded == nil {
		loaded = DefaultStore()
		if saveErr := s.gateway.Save(ctx, loaded); saveErr != nil {
			return fmt.Errorf("failed to persist seeded store: %w", saveErr)
		}
	}

	s.mu.Lock()
	s.store = loaded
	s.view = DefaultViewState()
	s.mu.Unlock()
	return nil
}

// Reload re-reads the blob after an external change. Unlike Load it does
// not substitute the default store on failure: an external writer leaving
// a half-written blob must not wipe the in-memory state.
func (s *Service) Reload(ctx context.Context) error {
	loaded, err := s.gateway.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if loaded.Meta.Version < 1 {
		return fmt.Errorf("reload: %w", ErrInvalidImport)
	}

	s.mu.Lock()
	s.store = loaded
	s.ensureSelectionLocked()
	s.mu.Unlock()
	return nil
}

// commit applies a mutation to a cloned revision and persists it.
// mutate returns false to signal a no-op; nothing is swapped or saved.
func (s *Service) commit(ctx context.Context, mutate func(*Store) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.store.Clone()
	if !mutate(next) {
		return nil
	}
	next.Stamp()
	s.store = next

	if err := s.gateway.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist store: %w", err)
	}
	return nil
}

// Store returns the current revision. Revisions are immutable by
// convention: callers must treat the result as read-only.
func (s *Service) Store() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// View returns a copy of the current view state.
func (s *Service) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Note returns the note with the given id, or nil.
func (s *Service) Note(id string) *Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Items[id]
}

// Selected returns the currently selected note, or nil.
func (s *Service) Selected() *Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.view.SelectedID == "" {
		return nil
	}
	return s.store.Items[s.view.SelectedID]
}

// Create adds a new note to the given section and selects it. The title
// defaults to "New note", deduplicated case-insensitively against every
// existing title by appending " 2", " 3", ... until unique.
func (s *Service) Create(ctx context.Context, section Section) (*Note, error) {
	if !ValidSection(section) {
		return nil, fmt.Errorf("unknown section: %s", section)
	}

	var created *Note
	err := s.commit(ctx, func(st *Store) bool {
		title := dedupeTitle(st, "New note")
		now := time.Now()
		created = &Note{
			ID:        NewID(),
			Section:   section,
			Title:     title,
			Slug:      Slugify(title),
			Tags:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.insert(created)
		return true
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.view.Section = section
	s.view.SelectedID = created.ID
	s.mu.Unlock()

	s.logger.Debug("note created", "id", created.ID, "section", section)
	return created, nil
}

func dedupeTitle(st *Store, base string) string {
	titles := make(map[string]struct{}, len(st.Items))
	for _, n := range st.Items {
		titles[strings.ToLower(n.Title)] = struct{}{}
	}
	title := base
	for n := 2; ; n++ {
		if _, taken := titles[strings.ToLower(title)]; !taken {
			return title
		}
		title = fmt.Sprintf("%s %d", base, n)
	}
}

// Patch carries the optional fields of an update. Nil fields are left
// untouched. There is deliberately no Section field: category changes
// happen only through link-following flows, never through Update.
type Patch struct {
	Title   *string
	Content *string
	Tags    *[]string
	Pinned  *bool
}

// Update merges a patch into the note. Setting Title recomputes the slug;
// updatedAt is always refreshed. Missing id is a silent no-op.
func (s *Service) Update(ctx context.Context, id string, p Patch) error {
	return s.commit(ctx, func(st *Store) bool {
		n, ok := st.Items[id]
		if !ok {
			return false
		}
		if p.Title != nil {
			n.Title = *p.Title
			n.Slug = Slugify(n.Title)
		}
		if p.Content != nil {
			n.Content = *p.Content
		}
		if p.Tags != nil {
			tags := *p.Tags
			if len(tags) > MaxTags {
				tags = tags[:MaxTags]
			}
			n.Tags = tags
		}
		if p.Pinned != nil {
			n.Pinned = *p.Pinned
		}
		n.UpdatedAt = time.Now()
		return true
	})
}

// Delete removes the note and its order entry. Missing id is a silent
// no-op. The selection is cleared if it pointed at the deleted note.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.commit(ctx, func(st *Store) bool {
		if _, ok := st.Items[id]; !ok {
			return false
		}
		st.remove(id)
		return true
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.view.SelectedID == id {
		s.view.SelectedID = ""
	}
	s.mu.Unlock()
	return nil
}

// ParseTags splits a comma-separated tag string: trimmed, empties
// dropped, capped at MaxTags. Duplicates are kept; tags are freeform.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		t := strings.TrimSpace(part)
		if t == "" {
			continue
		}
		tags = append(tags, t)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}

// SetTags replaces the note's tags from a raw comma-separated string.
func (s *Service) SetTags(ctx context.Context, id, raw string) error {
	tags := ParseTags(raw)
	return s.Update(ctx, id, Patch{Tags: &tags})
}

// TogglePin flips the note's pinned flag.
func (s *Service) TogglePin(ctx context.Context, id string) error {
	return s.commit(ctx, func(st *Store) bool {
		n, ok := st.Items[id]
		if !ok {
			return false
		}
		n.Pinned = !n.Pinned
		n.UpdatedAt = time.Now()
		return true
	})
}

// FollowLink resolves a link title to an existing note (case-insensitive,
// trimmed exact title match) and selects it, or creates a stub note in
// the active section when no note matches. Following a link is a total
// operation: it never fails with "not found".
func (s *Service) FollowLink(ctx context.Context, title string) (*Note, error) {
	title = strings.TrimSpace(title)

	s.mu.Lock()
	if found := s.store.FindByTitle(title); found != nil {
		s.view.Section = found.Section
		s.view.SelectedID = found.ID
		s.mu.Unlock()
		return found, nil
	}
	section := s.view.Section
	s.mu.Unlock()

	var stub *Note
	err := s.commit(ctx, func(st *Store) bool {
		// Re-check under the commit lock: a concurrent follow of the same
		// link must return the first stub, not create a twin.
		if found := st.FindByTitle(title); found != nil {
			stub = found
			return false
		}
		now := time.Now()
		stub = &Note{
			ID:        NewID(),
			Section:   section,
			Title:     title,
			Slug:      Slugify(title),
			Tags:      []string{"stub"},
			Content:   StubContent,
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.insert(stub)
		return true
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.view.Section = stub.Section
	s.view.SelectedID = stub.ID
	s.mu.Unlock()

	s.logger.Debug("link followed", "title", title, "id", stub.ID)
	return stub, nil
}

// Outgoing returns the link titles of the note with the given id.
func (s *Service) Outgoing(id string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.store.Items[id]
	if !ok {
		return nil
	}
	return OutgoingLinks(n)
}

// Backlinks returns the notes linking to the note with the given id.
func (s *Service) Backlinks(id string) []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.store.Items[id]
	if !ok {
		return nil
	}
	return Backlinks(s.store, n)
}

// Mentions returns unlinked references to other notes' titles inside the
// note with the given id.
func (s *Service) Mentions(id string) []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.store.Items[id]
	if !ok {
		return nil
	}
	return Mentions(s.store, n)
}

// VisibleNotes derives the visible, ordered note list for the current
// section, search text and tag filter.
func (s *Service) VisibleNotes() []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return VisibleNotes(s.store, s.view.Section, s.view.Query, s.view.TagFilter)
}

// AllTags returns the sorted union of tags across all notes.
func (s *Service) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AllTags(s.store)
}

// Match returns the notes whose section/slug address matches the glob.
func (s *Service) Match(pattern string) ([]*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Match(s.store, pattern)
}

// Resolve turns a CLI reference into a note: an exact id, an exact
// section/slug address, or the first glob match. Returns nil when
// nothing matches.
func (s *Service) Resolve(ref string) *Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n, ok := s.store.Items[ref]; ok {
		return n
	}
	for _, n := range s.store.Items {
		if n.Address() == ref {
			return n
		}
	}
	if matches, err := Match(s.store, ref); err == nil && len(matches) > 0 {
		return matches[0]
	}
	return nil
}

// SetSection switches the active section, moving the selection to the
// section's first note when the current selection does not belong there.
func (s *Service) SetSection(section Section) {
	if !ValidSection(section) {
		return
	}
	s.mu.Lock()
	s.view.Section = section
	s.ensureSelectionLocked()
	s.mu.Unlock()
}

// ensureSelectionLocked resets the selection to the active section's
// first note when the selection is absent or points elsewhere.
func (s *Service) ensureSelectionLocked() {
	cur, ok := s.store.Items[s.view.SelectedID]
	if ok && cur.Section == s.view.Section {
		return
	}
	s.view.SelectedID = ""
	if ids := s.store.Order[s.view.Section]; len(ids) > 0 {
		s.view.SelectedID = ids[0]
	}
}

// Select marks the note as selected. Missing id is a silent no-op.
func (s *Service) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.store.Items[id]
	if !ok {
		return
	}
	s.view.Section = n.Section
	s.view.SelectedID = id
}

// SetQuery sets the free-text search filter.
func (s *Service) SetQuery(q string) {
	s.mu.Lock()
	s.view.Query = q
	s.mu.Unlock()
}

// SetTagFilter sets (or clears, with "") the tag filter.
func (s *Service) SetTagFilter(tag string) {
	s.mu.Lock()
	s.view.TagFilter = tag
	s.mu.Unlock()
}

// SetCampaignName updates the persisted campaign name.
func (s *Service) SetCampaignName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Untitled Campaign"
	}
	return s.commit(ctx, func(st *Store) bool {
		st.Settings.CampaignName = name
		return true
	})
}

// SetSystem updates the persisted game system label.
func (s *Service) SetSystem(ctx context.Context, system string) error {
	return s.commit(ctx, func(st *Store) bool {
		st.Settings.System = system
		return true
	})
}

// Import replaces the active store with a parsed payload and persists it.
// Validation happens before anything is touched: on failure the current
// store and view state stay exactly as they were.
func (s *Service) Import(ctx context.Context, data []byte) error {
	imported, err := DecodeStore(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gateway.Save(ctx, imported); err != nil {
		return fmt.Errorf("failed to persist imported store: %w", err)
	}
	s.store = imported
	s.view = DefaultViewState()
	s.logger.Info("store imported", "notes", len(imported.Items))
	return nil
}

// Export serializes the current store with human-readable formatting and
// suggests a date-stamped filename.
func (s *Service) Export() ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := EncodeStore(s.store)
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize store: %w", err)
	}
	return data, ExportFilename(time.Now()), nil
}

// Reset discards everything and reseeds the demo dataset.
func (s *Service) Reset(ctx context.Context) error {
	fresh := DefaultStore()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gateway.Save(ctx, fresh); err != nil {
		return fmt.Errorf("failed to persist reset store: %w", err)
	}
	s.store = fresh
	s.view = DefaultViewState()
	s.logger.Info("store reset to demo data")
	return nil
}

// Watch observes external changes to the persisted blob if the gateway
// supports it. Consumers typically call Reload on each event.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.gateway.(Watchable)
	if !ok {
		return nil, errors.New("gateway does not support watching")
	}
	return w.Watch(ctx)
}
