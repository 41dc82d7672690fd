package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moodmates/moodmates/internal/realtime"
)

func (handler *Handler) SubmitMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.moods.Submit(user.ID, input.Mood, input.Note, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("moods", realtime.EventInsert)
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) MoodHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.moods.History(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) UpdateMoodNote(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	moodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input := noteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.moods.UpdateNote(user.ID, moodID, input.Note); err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("moods", realtime.EventUpdate)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	moodID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.moods.Delete(user.ID, moodID); err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("moods", realtime.EventDelete)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Feed(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	feed, err := handler.moods.Feed(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(feed)
}
