package client

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"jotter/internal/database/models"
)

// NotesStore caches the caller's notes. Every mutation performs the network
// call first and reconciles the cached list from the server's response.
// Snapshot returns copies, so callers never observe in-place mutation.
type NotesStore struct {
	c *Client

	mu      sync.RWMutex
	notes   []models.Note
	loading bool
}

func NewNotesStore(c *Client) *NotesStore {
	return &NotesStore{c: c}
}

// Snapshot returns a copy of the cached notes.
func (s *NotesStore) Snapshot() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Loading reports whether a Fetch is in flight.
func (s *NotesStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *NotesStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Fetch replaces the cached list with the server's. Overlapping fetches are
// not deduplicated; the last response to land wins.
func (s *NotesStore) Fetch(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	var resp struct {
		Notes []models.Note `json:"notes"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/notes", nil, &resp); err != nil {
		return err
	}
	s.mu.Lock()
	s.notes = resp.Notes
	s.mu.Unlock()
	return nil
}

// Add creates a note and prepends the server's record to the cache.
func (s *NotesStore) Add(ctx context.Context, title, content string) (*models.Note, error) {
	body := map[string]string{"title": title, "content": content}
	var resp struct {
		Note models.Note `json:"note"`
	}
	if err := s.c.do(ctx, http.MethodPost, "/notes", body, &resp); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.notes = append([]models.Note{resp.Note}, s.notes...)
	s.mu.Unlock()
	return &resp.Note, nil
}

// Update sends a partial update and replaces the cached record by id.
func (s *NotesStore) Update(ctx context.Context, id uuid.UUID, title, content *string) (*models.Note, error) {
	body := map[string]any{}
	if title != nil {
		body["title"] = *title
	}
	if content != nil {
		body["content"] = *content
	}
	var resp struct {
		Note models.Note `json:"note"`
	}
	if err := s.c.do(ctx, http.MethodPut, "/notes/"+id.String(), body, &resp); err != nil {
		return nil, err
	}
	s.replace(resp.Note)
	return &resp.Note, nil
}

// Summarize asks the server for an AI summary and replaces the cached
// record by id.
func (s *NotesStore) Summarize(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var resp struct {
		Note models.Note `json:"note"`
	}
	if err := s.c.do(ctx, http.MethodPost, "/notes/"+id.String()+"/summarize", nil, &resp); err != nil {
		return nil, err
	}
	s.replace(resp.Note)
	return &resp.Note, nil
}

// Delete removes the note server-side first, then drops it from the cache.
func (s *NotesStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.do(ctx, http.MethodDelete, "/notes/"+id.String(), nil, nil); err != nil {
		return err
	}
	s.mu.Lock()
	kept := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	s.mu.Unlock()
	return nil
}

func (s *NotesStore) replace(note models.Note) {
	s.mu.Lock()
	next := make([]models.Note, len(s.notes))
	for i, n := range s.notes {
		if n.ID == note.ID {
			next[i] = note
		} else {
			next[i] = n
		}
	}
	s.notes = next
	s.mu.Unlock()
}
