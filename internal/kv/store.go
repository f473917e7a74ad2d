// Package kv implements the flat key/value namespace every other component
// persists into. Values are opaque byte slices; callers serialize records as
// JSON via ReadJSON/WriteJSON. There are no transactions spanning keys: each
// store operation reads a whole key, mutates in memory, and writes the whole
// key back, so concurrent writers from separate processes can lose updates.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is the durable per-origin storage the emulated backend lives in.
//
// Contract:
//   - Get: returns ErrNotFound for absent keys.
//   - Set: creates or overwrites the value under key.
//   - Delete: removes the key; deleting an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ReadJSON loads and unmarshals the value under key. A missing key or a
// value that fails to unmarshal yields the fallback, never an error: a
// corrupt entry behaves like an absent one.
func ReadJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// WriteJSON marshals v and stores it under key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
