package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"noteboard/internal/notes"
)

var ErrNotFound = errors.New("note not found")

// Store holds the note collection served by notesd. Ids are assigned
// sequentially from 1 and timestamps are set once at creation.
type Store interface {
	List(ctx context.Context) ([]notes.Note, error)
	Create(ctx context.Context, title, content string) (notes.Note, error)
	// Update replaces the non-empty fields of the note.
	Update(ctx context.Context, id notes.ID, title, content string) (notes.Note, error)
	// Delete removes the note and returns it.
	Delete(ctx context.Context, id notes.ID) (notes.Note, error)
	Close() error
}

// Open returns a bbolt store at path, or an in-memory store when path is empty.
func Open(path string) (Store, error) {
	if path == "" {
		return NewMemoryStore(), nil
	}
	return NewBoltStore(path)
}

func parseID(id notes.ID) (uint64, bool) {
	n, err := strconv.ParseUint(id.String(), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

func formatID(n uint64) notes.ID {
	return notes.ID(strconv.FormatUint(n, 10))
}

func applyPatch(n *notes.Note, title, content string) {
	if title != "" {
		n.Title = title
	}
	if content != "" {
		n.Content = content
	}
}

func newTimestamp(now func() time.Time) notes.Timestamp {
	return notes.NewTimestamp(now().UTC())
}
