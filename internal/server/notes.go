package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jotter/internal/database/dto"
	"jotter/internal/database/models"
	"jotter/internal/database/repositories"
)

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	payload := dto.CreateNotePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	note := models.Note{
		Title:   strings.TrimSpace(payload.Title),
		Content: payload.Content,
		UserID:  userID,
	}
	if err := s.notes.Create(c.Context(), &note); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"note": note})
}

func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	notes, err := s.notes.GetAll(c.Context(), userID)
	if err != nil {
		return err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return c.JSON(fiber.Map{"notes": notes})
}

func (s *FiberServer) getSingleNote(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid note id"})
	}
	note, err := s.notes.GetByID(c.Context(), id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "note not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"note": note})
}

func (s *FiberServer) updateNote(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid note id"})
	}
	payload := dto.UpdateNotePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	note, err := s.notes.Update(c.Context(), id, userID, payload.Title, payload.Content)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "note not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"note": note})
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid note id"})
	}
	err = s.notes.Delete(c.Context(), id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "note not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "note deleted successfully"})
}

func (s *FiberServer) summarizeNote(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid note id"})
	}
	note, err := s.noteService.Summarize(c.Context(), id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "note not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"note": note})
}
