package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := usernameInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.profiles.UpdateUsername(user.ID, input.Username); err != nil {
		return serviceError(c, err)
	}

	user.Username = strings.TrimSpace(input.Username)
	return c.JSON(user)
}
