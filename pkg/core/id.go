package core

import "github.com/segmentio/ksuid"

// NewID returns a collision-resistant opaque identifier.
// KSUIDs combine a timestamp with 16 random bytes, so ids are unique for
// any realistic session lifetime and sort roughly by creation time.
func NewID() string {
	return ksuid.New().String()
}
