package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/moodmates/moodmates/internal/realtime"
)

func (handler *Handler) ListFriends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	listings, err := handler.friendships.ListFriends(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(listings)
}

func (handler *Handler) ListFriendRequests(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	requests, err := handler.friendships.ListIncomingRequests(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(requests)
}

func (handler *Handler) SendFriendRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := friendRequestInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	edge, err := handler.friendships.SendRequest(user.ID, input.Email)
	if err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("friends", realtime.EventInsert)
	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (handler *Handler) RespondToFriendRequest(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	edgeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	input := respondInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.friendships.Respond(edgeID, user.ID, input.Decision); err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("friends", realtime.EventUpdate)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) BlockFriend(c *fiber.Ctx) error {
	return handler.setFriendBlocked(c, true)
}

func (handler *Handler) UnblockFriend(c *fiber.Ctx) error {
	return handler.setFriendBlocked(c, false)
}

func (handler *Handler) setFriendBlocked(c *fiber.Ctx, blocked bool) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	edgeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.friendships.SetBlocked(edgeID, user.ID, blocked); err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("friends", realtime.EventUpdate)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RemoveFriend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	edgeID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.friendships.Remove(edgeID, user.ID); err != nil {
		return serviceError(c, err)
	}

	handler.publishChange("friends", realtime.EventDelete)
	return c.JSON(fiber.Map{"ok": true})
}
