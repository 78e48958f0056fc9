package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"jotter/internal/config"
	"jotter/internal/database/models"
	"jotter/internal/database/repositories"
	"jotter/internal/service"
	"jotter/internal/summarizer"
	"jotter/internal/utils"
)

const testSecret = "test-secret"

// ---------------------------------------------------------------------------
// in-memory fakes
// ---------------------------------------------------------------------------

type fakeNoteRepo struct {
	mu    sync.Mutex
	notes map[uuid.UUID]models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]models.Note)}
}

func (r *fakeNoteRepo) seed(title, content string, userID uuid.UUID) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	now := time.Now()
	r.notes[id] = models.Note{ID: id, Title: title, Content: content, UserID: userID, CreatedAt: now, UpdatedAt: now}
	return id
}

func (r *fakeNoteRepo) Create(_ context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note.ID = uuid.New()
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	r.notes[note.ID] = *note
	return nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok || note.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	out := note
	return &out, nil
}

func (r *fakeNoteRepo) GetAll(_ context.Context, userID uuid.UUID) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) Update(_ context.Context, id uuid.UUID, userID uuid.UUID, title, content *string) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok || note.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.UpdatedAt = time.Now()
	r.notes[id] = note
	out := note
	return &out, nil
}

func (r *fakeNoteRepo) UpdateSummary(_ context.Context, id uuid.UUID, userID uuid.UUID, summary string) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok || note.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	note.AISummary = summary
	note.UpdatedAt = time.Now()
	r.notes[id] = note
	out := note
	return &out, nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok || note.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]models.Task)}
}

func (r *fakeTaskRepo) seed(title, description string, userID uuid.UUID) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	now := time.Now()
	r.tasks[id] = models.Task{ID: id, Title: title, Description: description, UserID: userID, CreatedAt: now, UpdatedAt: now}
	return id
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID, userID uuid.UUID) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	out := task
	return &out, nil
}

func (r *fakeTaskRepo) GetAll(_ context.Context, userID uuid.UUID) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, id uuid.UUID, userID uuid.UUID, title, description *string, completed *bool) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, repositories.ErrNotFound
	}
	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = *description
	}
	if completed != nil {
		task.Completed = *completed
	}
	task.UpdatedAt = time.Now()
	r.tasks[id] = task
	out := task
	return &out, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) seed(t *testing.T, email, password string) uuid.UUID {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.users[email] = models.User{ID: id, Email: email, Password: hashed}
	return id
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return repositories.ErrDuplicateEmail
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := u
	return &out, nil
}

// summarizeFunc adapts a function to the Summarizer interface.
type summarizeFunc func(ctx context.Context, title, content string) (string, error)

func (f summarizeFunc) Summarize(ctx context.Context, title, content string) (string, error) {
	return f(ctx, title, content)
}

// ---------------------------------------------------------------------------
// harness
// ---------------------------------------------------------------------------

type testEnv struct {
	srv   *FiberServer
	notes *fakeNoteRepo
	tasks *fakeTaskRepo
	users *fakeUserRepo
}

func newTestEnv(t *testing.T, summ summarizer.Summarizer) *testEnv {
	t.Helper()
	if summ == nil {
		summ = summarizer.NewMock()
	}
	cfg := &config.Config{
		JWTSecret:        testSecret,
		SummarizeTimeout: time.Second,
		CORSOrigins:      "*",
	}
	env := &testEnv{
		notes: newFakeNoteRepo(),
		tasks: newFakeTaskRepo(),
		users: newFakeUserRepo(),
	}
	srv := &FiberServer{
		cfg:   cfg,
		log:   zerolog.Nop(),
		users: env.users,
		notes: env.notes,
		tasks: env.tasks,
	}
	srv.App = fiber.New(fiber.Config{ErrorHandler: srv.errorHandler})
	srv.noteService = service.NewNoteService(env.notes, summ, cfg.SummarizeTimeout, srv.log)
	srv.RegisterFiberRoutes()
	env.srv = srv
	return env
}

func authToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.srv.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
