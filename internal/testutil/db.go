package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/Chandra-Moulii/project-planner/internal/database"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	return <-outC
}

// SetupTestStore opens an in-memory SQLite key-value store that is closed
// when the test ends.
func SetupTestStore(t *testing.T) *database.SQLiteStore {
	t.Helper()
	s, err := database.OpenSQLite(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}
