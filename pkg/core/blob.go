package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// DecodeStore parses a serialized blob and validates its gross shape:
// both the note mapping and the per-section order structure must be
// present. Anything less is ErrInvalidImport.
func DecodeStore(data []byte) (*Store, error) {
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if s.Items == nil || s.Order == nil {
		return nil, fmt.Errorf("%w: missing items or orderBySection", ErrInvalidImport)
	}
	// Every section gets an order list even if the blob predates it.
	for _, sec := range Sections {
		if _, ok := s.Order[sec.Key]; !ok {
			s.Order[sec.Key] = []string{}
		}
	}
	return &s, nil
}

// EncodeStore serializes the store with human-readable formatting.
func EncodeStore(s *Store) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// ExportFilename suggests a date-stamped filename for an export taken now.
func ExportFilename(now time.Time) string {
	return "lorekeep-notes-" + now.Format("2006-01-02") + ".json"
}
