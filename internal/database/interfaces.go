// Package database provides the key-value persistence the planner mirrors
// its state into.
package database

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Entry is one key-value pair.
type Entry struct {
	Key   string
	Value string
}

// KeyValueStore is a string key-value persistence interface. Values are
// opaque strings; callers decide the encoding.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key
	// has never been set or was deleted.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// SetMany stores all entries atomically: either every entry is written
	// or none is.
	SetMany(ctx context.Context, entries []Entry) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)

	Close() error
}

// Compile-time verification of the implementations
var (
	_ KeyValueStore = (*SQLiteStore)(nil)
	_ KeyValueStore = (*MemoryStore)(nil)
)
