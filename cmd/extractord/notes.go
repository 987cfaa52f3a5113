package main

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	errNoteNotFound = errors.New("note not found")
	errTagNotFound  = errors.New("tag not found")
)

type note struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Tags       []string  `json:"tags"`
	Attachment int       `json:"attachment_bytes"`
	Author     string    `json:"author,omitempty"`
	RequestID  string    `json:"request_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// noteStore is an in-memory note repository shared by all requests.
type noteStore struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]note
	order []uuid.UUID
}

func newNoteStore() *noteStore {
	return &noteStore{notes: make(map[uuid.UUID]note)}
}

func (s *noteStore) create(n note) note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.New()
	n.CreatedAt = time.Now().UTC()
	if n.Tags == nil {
		n.Tags = []string{}
	}
	s.notes[n.ID] = n
	s.order = append(s.order, n.ID)
	return n
}

func (s *noteStore) get(id uuid.UUID) (note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return note{}, errNoteNotFound
	}
	return n, nil
}

func (s *noteStore) update(id uuid.UUID, fn func(n *note)) (note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return note{}, errNoteNotFound
	}
	fn(&n)
	s.notes[id] = n
	return n, nil
}

func (s *noteStore) delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return errNoteNotFound
	}
	delete(s.notes, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

// list returns notes in creation order, filtered by tag when tag is not empty.
// A limit of zero or less means no limit.
func (s *noteStore) list(tag string, limit int) []note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]note, 0, len(s.order))
	for _, id := range s.order {
		n := s.notes[id]
		if tag != "" && !slices.Contains(n.Tags, tag) {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *noteStore) tag(id uuid.UUID, index int) (string, error) {
	n, err := s.get(id)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(n.Tags) {
		return "", errTagNotFound
	}
	return n.Tags[index], nil
}

// ping reports whether the store can serve requests.
func (s *noteStore) ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notes == nil {
		return errors.New("note store is not initialized")
	}
	return nil
}
