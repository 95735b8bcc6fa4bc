package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"noteboard/internal/notes"
)

var bucketNotes = []byte("notes")

// BoltStore persists notes in a bbolt file, one JSON value per note keyed by
// its big-endian sequence number.
type BoltStore struct {
	db  *bolt.DB
	mu  sync.Mutex
	now func() time.Time
}

func NewBoltStore(path string) (*BoltStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketNotes)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltStore{db: db, now: time.Now}, nil
}

func itob(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

func (s *BoltStore) List(ctx context.Context) ([]notes.Note, error) {
	out := []notes.Note{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if b == nil {
			return errors.New("notes bucket missing")
		}
		return b.ForEach(func(_, v []byte) error {
			var n notes.Note
			if err := json.Unmarshal(v, &n); err != nil {
				return err
			}
			out = append(out, n)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) Create(ctx context.Context, title, content string) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var created notes.Note
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if b == nil {
			return errors.New("notes bucket missing")
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		created = notes.Note{
			ID:        formatID(seq),
			Title:     title,
			Content:   content,
			Timestamp: newTimestamp(s.now),
		}
		raw, err := json.Marshal(created)
		if err != nil {
			return err
		}
		return b.Put(itob(seq), raw)
	})
	if err != nil {
		return notes.Note{}, err
	}
	return created, nil
}

func (s *BoltStore) Update(ctx context.Context, id notes.ID, title, content string) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := parseID(id)
	if !ok {
		return notes.Note{}, ErrNotFound
	}

	var updated notes.Note
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if b == nil {
			return errors.New("notes bucket missing")
		}
		key := itob(seq)
		current := b.Get(key)
		if len(current) == 0 {
			return ErrNotFound
		}
		if err := json.Unmarshal(current, &updated); err != nil {
			return err
		}
		applyPatch(&updated, title, content)
		raw, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return b.Put(key, raw)
	})
	if err != nil {
		return notes.Note{}, err
	}
	return updated, nil
}

func (s *BoltStore) Delete(ctx context.Context, id notes.ID) (notes.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := parseID(id)
	if !ok {
		return notes.Note{}, ErrNotFound
	}

	var deleted notes.Note
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		if b == nil {
			return errors.New("notes bucket missing")
		}
		key := itob(seq)
		current := b.Get(key)
		if len(current) == 0 {
			return ErrNotFound
		}
		if err := json.Unmarshal(current, &deleted); err != nil {
			return err
		}
		return b.Delete(key)
	})
	if err != nil {
		return notes.Note{}, err
	}
	return deleted, nil
}

func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
