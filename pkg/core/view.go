package core

// ViewState is the small, non-persisted record of what the collaborator
// is currently looking at. It travels alongside the Store but is never
// serialized into the blob: selection and filters are session concerns.
type ViewState struct {
	Section    Section
	SelectedID string
	Query      string
	TagFilter  string
}

// DefaultViewState opens on the sessions tab with nothing selected.
func DefaultViewState() ViewState {
	return ViewState{Section: SectionSessions}
}
