package ids

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Unique(t *testing.T) {
	t.Parallel()

	gen := UUIDGenerator{}
	seen := make(map[string]bool)
	for range 1000 {
		id := gen.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("id %q is not a UUID: %v", id, err)
		}
	}
}

func TestSystemClock_UTC(t *testing.T) {
	t.Parallel()

	now := SystemClock{}.Now()
	if now.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", now.Location())
	}
	if time.Since(now) > time.Minute {
		t.Errorf("clock is far in the past: %v", now)
	}
}
