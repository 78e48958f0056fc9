package server

import (
	"fmt"
	"runtime"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Post("/register", s.registerUser)
	s.App.Post("/login", s.login)
	s.App.Get("/health", s.healthHandler)
	// endpoint to monitor memory
	s.App.Get("/memory", func(c *fiber.Ctx) error {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		memoryInfo := fmt.Sprintf("Alloc = %v MiB, TotalAlloc = %v MiB, Sys = %v MiB, NumGC = %v",
			bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
		return c.SendString(memoryInfo)
	})

	// Everything below requires a valid session token.
	s.App.Use(jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(s.cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		},
	}))

	s.App.Post("/notes", s.createNote)
	s.App.Get("/notes", s.getAllNotes)
	s.App.Get("/notes/:id", s.getSingleNote)
	s.App.Put("/notes/:id", s.updateNote)
	s.App.Delete("/notes/:id", s.deleteNote)
	s.App.Post("/notes/:id/summarize", s.summarizeNote)

	s.App.Post("/tasks", s.createTask)
	s.App.Get("/tasks", s.getAllTasks)
	s.App.Get("/tasks/:id", s.getSingleTask)
	s.App.Put("/tasks/:id", s.updateTask)
	s.App.Delete("/tasks/:id", s.deleteTask)

	s.App.Get("/search", s.searchRecords)
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	return c.JSON(s.db.Health())
}

// currentUserID resolves the authenticated caller from the verified token.
func (s *FiberServer) currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return id, nil
}

func (s *FiberServer) searchRecords(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return err
	}
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "query parameter q is required"})
	}
	result, err := s.search.SearchQuery(c.Context(), query, userID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
