package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"jotter/internal/database/models"
)

// TasksStore caches the caller's tasks with the same reconciliation rules
// as NotesStore.
type TasksStore struct {
	c *Client

	mu      sync.RWMutex
	tasks   []models.Task
	loading bool
}

func NewTasksStore(c *Client) *TasksStore {
	return &TasksStore{c: c}
}

// Snapshot returns a copy of the cached tasks.
func (s *TasksStore) Snapshot() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Loading reports whether a Fetch is in flight.
func (s *TasksStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *TasksStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Fetch replaces the cached list with the server's.
func (s *TasksStore) Fetch(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	var resp struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/tasks", nil, &resp); err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = resp.Tasks
	s.mu.Unlock()
	return nil
}

// Add creates a task and prepends the server's record to the cache.
func (s *TasksStore) Add(ctx context.Context, title, description string) (*models.Task, error) {
	body := map[string]any{"title": title, "description": description}
	var resp struct {
		Task models.Task `json:"task"`
	}
	if err := s.c.do(ctx, http.MethodPost, "/tasks", body, &resp); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.tasks = append([]models.Task{resp.Task}, s.tasks...)
	s.mu.Unlock()
	return &resp.Task, nil
}

// Update sends a partial update and replaces the cached record by id.
func (s *TasksStore) Update(ctx context.Context, id uuid.UUID, title, description *string, completed *bool) (*models.Task, error) {
	body := map[string]any{}
	if title != nil {
		body["title"] = *title
	}
	if description != nil {
		body["description"] = *description
	}
	if completed != nil {
		body["completed"] = *completed
	}
	var resp struct {
		Task models.Task `json:"task"`
	}
	if err := s.c.do(ctx, http.MethodPut, "/tasks/"+id.String(), body, &resp); err != nil {
		return nil, err
	}
	s.replace(resp.Task)
	return &resp.Task, nil
}

// Toggle flips the completed flag of a cached task via a partial update.
func (s *TasksStore) Toggle(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var current *models.Task
	for _, t := range s.Snapshot() {
		if t.ID == id {
			current = &t
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("task %s not in store", id)
	}
	next := !current.Completed
	return s.Update(ctx, id, nil, nil, &next)
}

// Delete removes the task server-side first, then drops it from the cache.
func (s *TasksStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.do(ctx, http.MethodDelete, "/tasks/"+id.String(), nil, nil); err != nil {
		return err
	}
	s.mu.Lock()
	kept := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()
	return nil
}

func (s *TasksStore) replace(task models.Task) {
	s.mu.Lock()
	next := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID == task.ID {
			next[i] = task
		} else {
			next[i] = t
		}
	}
	s.tasks = next
	s.mu.Unlock()
}
