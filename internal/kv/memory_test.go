package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissingKey(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySetGetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v1")))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), got)

	require.NoError(t, m.Set(ctx, "k", []byte("v2")))
	got, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, m.Delete(ctx, "k"))
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	value := []byte("original")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("original"), got)

	got[0] = 'Y'
	again, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("original"), again)
}

func TestReadJSONFallbacks(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type record struct {
		Name string `json:"name"`
	}

	// Missing key.
	got := ReadJSON(ctx, m, "rec", record{Name: "fallback"})
	require.Equal(t, "fallback", got.Name)

	// Corrupt value behaves like an absent one.
	require.NoError(t, m.Set(ctx, "rec", []byte("{not json")))
	got = ReadJSON(ctx, m, "rec", record{Name: "fallback"})
	require.Equal(t, "fallback", got.Name)

	require.NoError(t, WriteJSON(ctx, m, "rec", record{Name: "stored"}))
	got = ReadJSON(ctx, m, "rec", record{})
	require.Equal(t, "stored", got.Name)
}

func TestWriteJSONRejectsUnmarshalableValue(t *testing.T) {
	m := NewMemory()

	err := WriteJSON(context.Background(), m, "bad", func() {})
	require.Error(t, err)
}
