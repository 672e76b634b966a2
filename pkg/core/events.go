package core

import "fmt"

// EventType represents the type of external change observed on the blob.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to the persisted store, observed from outside
// the running process (another editor, a sync tool, a manual overwrite).
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so events can flow through a
// lifecycle.Source without an extra wrapper type.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
