// Package dto holds request payloads and their validation rules.
package dto

import (
	"errors"
	"strings"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
)

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (p *RegisterPayload) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return ErrEmailRequired
	}
	if len(p.Password) < 8 {
		return ErrPasswordTooWeak
	}
	return nil
}

type CreateNotePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (p *CreateNotePayload) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(p.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

// UpdateNotePayload carries partial note updates. Nil fields are left
// untouched by the repository.
type UpdateNotePayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CreateTaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

func (p *CreateTaskPayload) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// UpdateTaskPayload carries partial task updates, including the completed
// toggle sent on its own by clients.
type UpdateTaskPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
