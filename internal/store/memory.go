package store

import (
	"context"
	"sync"
	"time"

	"noteboard/internal/notes"
)

// MemoryStore keeps notes for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	notes  []notes.Note
	nextID uint64
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (s *MemoryStore) List(ctx context.Context) ([]notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]notes.Note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, title, content string) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := notes.Note{
		ID:        formatID(s.nextID),
		Title:     title,
		Content:   content,
		Timestamp: newTimestamp(s.now),
	}
	s.nextID++
	s.notes = append(s.notes, n)
	return n, nil
}

func (s *MemoryStore) Update(ctx context.Context, id notes.ID, title, content string) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := notes.IndexOf(s.notes, id)
	if i < 0 {
		return notes.Note{}, ErrNotFound
	}
	applyPatch(&s.notes[i], title, content)
	return s.notes[i], nil
}

func (s *MemoryStore) Delete(ctx context.Context, id notes.ID) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := notes.IndexOf(s.notes, id)
	if i < 0 {
		return notes.Note{}, ErrNotFound
	}
	deleted := s.notes[i]
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	return deleted, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
