package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"jotter/internal/database/dto"
	"jotter/internal/database/models"
	"jotter/internal/database/repositories"
	"jotter/internal/utils"
)

func (s *FiberServer) login(c *fiber.Ctx) error {
	credentials := dto.LoginCredentials{}
	if err := c.BodyParser(&credentials); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	user, err := s.users.GetByEmail(c.Context(), credentials.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		// same response as a bad password, no account enumeration
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(credentials.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"token": t})
}

func (s *FiberServer) registerUser(c *fiber.Ctx) error {
	payload := dto.RegisterPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return err
	}
	user := models.User{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  hashed,
	}
	if err := s.users.Create(c.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email already registered"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "created user successfully"})
}
