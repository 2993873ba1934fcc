// Package kv layers the typed document contract over a raw ports.Store.
// Reads never fail: a missing key, a backend error, or malformed content all
// yield the caller-supplied fallback, so callers can treat the store as
// always-readable.
package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// ReadJSON decodes the document under key into T, returning fallback when the
// key is absent, the backend fails, or the content does not decode.
func ReadJSON[T any](ctx context.Context, s ports.Store, key string, fallback T) T {
	data, err := s.Read(ctx, key)
	if err != nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

// WriteJSON serializes v and stores it under key, replacing any prior value.
func WriteJSON(ctx context.Context, s ports.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.Write(ctx, key, data); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Remove deletes the document under key. Removing an absent key is not an
// error.
func Remove(ctx context.Context, s ports.Store, key string) error {
	return s.Remove(ctx, key)
}
