package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"noteboard/internal/notes"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	bolt, err := NewBoltStore(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	t.Cleanup(func() { bolt.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   bolt,
	}
}

func TestStoreCRUD(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first, err := s.Create(ctx, "First", "one")
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			second, err := s.Create(ctx, "Second", "two")
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if first.ID != "1" || second.ID != "2" {
				t.Fatalf("expected sequential ids, got %q and %q", first.ID, second.ID)
			}
			if first.Timestamp.IsZero() {
				t.Error("expected creation timestamp")
			}

			updated, err := s.Update(ctx, first.ID, "", "changed")
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if updated.Title != "First" || updated.Content != "changed" {
				t.Errorf("expected only content replaced, got %+v", updated)
			}
			if !updated.Timestamp.Time.Equal(first.Timestamp.Time) {
				t.Error("expected timestamp unchanged by update")
			}

			deleted, err := s.Delete(ctx, second.ID)
			if err != nil {
				t.Fatalf("delete: %v", err)
			}
			if deleted.Title != "Second" {
				t.Errorf("expected deleted note returned, got %+v", deleted)
			}

			list, err := s.List(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(list) != 1 || list[0].ID != "1" {
				t.Fatalf("unexpected list %+v", list)
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, id := range []string{"99", "abc", "0"} {
				if _, err := s.Update(ctx, notes.ID(id), "t", "c"); !errors.Is(err, ErrNotFound) {
					t.Errorf("update %s: expected ErrNotFound, got %v", id, err)
				}
				if _, err := s.Delete(ctx, notes.ID(id)); !errors.Is(err, ErrNotFound) {
					t.Errorf("delete %s: expected ErrNotFound, got %v", id, err)
				}
			}
		})
	}
}

func TestStoreEmptyListIsNotNil(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			list, err := s.List(context.Background())
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if list == nil || len(list) != 0 {
				t.Fatalf("expected empty non-nil list, got %#v", list)
			}
		})
	}
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "notes.db")
	ctx := context.Background()

	s, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	s.now = func() time.Time { return time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC) }
	if _, err := s.Create(ctx, "Kept", "across restarts"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewBoltStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	list, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Kept" {
		t.Fatalf("unexpected list after reopen %+v", list)
	}
	if !list[0].Timestamp.Time.Equal(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)) {
		t.Errorf("unexpected timestamp %v", list[0].Timestamp.Time)
	}

	next, err := reopened.Create(ctx, "Next", "id continues")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if next.ID != "2" {
		t.Errorf("expected sequence to continue at 2, got %q", next.ID)
	}
}

func TestOpen(t *testing.T) {
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("expected memory store for empty path, got %T", s)
	}

	s, err = Open(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*BoltStore); !ok {
		t.Errorf("expected bolt store, got %T", s)
	}
}
