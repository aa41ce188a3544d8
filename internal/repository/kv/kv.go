// Package kv implements the repository interfaces over the flat
// key-value store. Each collection is one JSON-serialized blob; an
// unparseable blob is treated as an empty collection rather than a
// fatal error.
package kv

import (
	"context"
	"encoding/json"

	"suraksha/internal/storage"
)

// loadList reads and decodes a JSON list under key. A missing key or a
// corrupted blob yields an empty slice.
func loadList[T any](ctx context.Context, store storage.Store, key string) ([]T, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// saveList encodes and writes a JSON list under key
func saveList[T any](ctx context.Context, store storage.Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(data))
}
