package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a new lexicographically sortable ID. ulid.Make draws from a
// process-wide monotonic entropy source and is safe for concurrent use.
func NewULID() string {
	return ulid.Make().String()
}

// IsULID reports whether s is a well-formed ULID.
func IsULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
