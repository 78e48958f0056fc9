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

func (s *FiberServer) createTask(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	payload := dto.CreateTaskPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	task := models.Task{
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		Completed:   payload.Completed,
		UserID:      userID,
	}
	if err := s.tasks.Create(c.Context(), &task); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": task})
}

func (s *FiberServer) getAllTasks(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	tasks, err := s.tasks.GetAll(c.Context(), userID)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func (s *FiberServer) getSingleTask(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task id"})
	}
	task, err := s.tasks.GetByID(c.Context(), id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "task not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}

func (s *FiberServer) updateTask(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task id"})
	}
	payload := dto.UpdateTaskPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	task, err := s.tasks.Update(c.Context(), id, userID, payload.Title, payload.Description, payload.Completed)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "task not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}

func (s *FiberServer) deleteTask(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid task id"})
	}
	err = s.tasks.Delete(c.Context(), id, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "task not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "task deleted successfully"})
}
