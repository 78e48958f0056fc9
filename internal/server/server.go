package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/rs/zerolog"

	"jotter/internal/config"
	"jotter/internal/database"
	"jotter/internal/database/repositories"
	"jotter/internal/service"
	"jotter/internal/summarizer"
)

type FiberServer struct {
	*fiber.App

	cfg *config.Config
	db  database.Service
	log zerolog.Logger

	users  repositories.UserRepository
	notes  repositories.NoteRepository
	tasks  repositories.TaskRepository
	search repositories.SearchRepository

	noteService *service.NoteService
}

func New(cfg *config.Config, db database.Service, summ summarizer.Summarizer, log zerolog.Logger) *FiberServer {
	server := &FiberServer{
		cfg: cfg,
		db:  db,
		log: log,
	}
	server.App = fiber.New(fiber.Config{
		ServerHeader: "jotter",
		AppName:      "jotter",
		ErrorHandler: server.errorHandler,
	})

	server.users = repositories.NewUserRepository(db.DB())
	server.notes = repositories.NewNoteRepository(db.DB())
	server.tasks = repositories.NewTaskRepository(db.DB())
	server.search = repositories.NewSearchRepository(db.DB())
	server.noteService = service.NewNoteService(server.notes, summ, cfg.SummarizeTimeout, log)

	server.App.Use(favicon.New())
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization,X-Requested-With",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       3600,
	}))
	server.App.Use(logger.New())
	server.App.Use(pprof.New(pprof.Config{
		Next: nil,
	}))
	return server
}

// errorHandler is the catch-all for errors handlers did not map themselves.
// Clients get a generic message; the detail goes to the operator log.
func (s *FiberServer) errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}
	s.log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
