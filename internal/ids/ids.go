// Package ids provides the identifier and clock capabilities the mutation
// engines depend on.
package ids

import (
	"time"

	"github.com/google/uuid"
)

// Generator produces globally unique string identifiers on demand.
type Generator interface {
	NewID() string
}

// Clock produces the current timestamp on demand.
type Clock interface {
	Now() time.Time
}

// UUIDGenerator issues random (version 4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SystemClock reads the wall clock, in UTC so persisted timestamps are stable.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Compile-time verification of the default implementations
var (
	_ Generator = UUIDGenerator{}
	_ Clock     = SystemClock{}
)
