package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ticketapp/ticket-system/internal/core/domain"
)

func TestFileStore_ReadMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := s.Read(context.Background(), "absent"); !errors.Is(err, domain.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument, got %v", err)
	}
}

func TestFileStore_WriteReadRemove(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Write(ctx, "ticketapp.session", []byte(`{"email":"a@b.c"}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := s.Read(ctx, "ticketapp.session")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != `{"email":"a@b.c"}` {
		t.Fatalf("unexpected content: %s", data)
	}

	// Write replaces the prior value.
	if err := s.Write(ctx, "ticketapp.session", []byte(`{"email":"x@y.z"}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ = s.Read(ctx, "ticketapp.session")
	if string(data) != `{"email":"x@y.z"}` {
		t.Fatalf("expected replaced content, got %s", data)
	}

	if err := s.Remove(ctx, "ticketapp.session"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Read(ctx, "ticketapp.session"); !errors.Is(err, domain.ErrNoDocument) {
		t.Fatalf("expected ErrNoDocument after remove, got %v", err)
	}

	// Removing an absent key is a no-op.
	if err := s.Remove(ctx, "ticketapp.session"); err != nil {
		t.Fatalf("Remove of absent key: %v", err)
	}
}

func TestMemoryStore_CopiesData(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	payload := []byte(`{"n":1}`)
	if err := s.Write(ctx, "doc", payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	payload[0] = 'X' // caller mutation must not reach the store

	data, err := s.Read(ctx, "doc")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != `{"n":1}` {
		t.Fatalf("stored data aliased caller buffer: %s", data)
	}
}
