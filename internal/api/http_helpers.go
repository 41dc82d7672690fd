package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps the closed business-error set onto HTTP statuses. All
// errors are recovered here; none are fatal to the process.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrEdgeNotFound),
		errors.Is(err, services.ErrMoodNotFound),
		errors.Is(err, db.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrSelfReference),
		errors.Is(err, services.ErrInvalidDecision),
		errors.Is(err, services.ErrInvalidMood),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidUsername):
		return apiError(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrFriendExists),
		errors.Is(err, services.ErrFriendStateConflict),
		errors.Is(err, services.ErrAlreadyLoggedToday),
		errors.Is(err, db.ErrConflict):
		return apiError(c, fiber.StatusConflict, err.Error())

	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
