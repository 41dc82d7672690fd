package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/moodmates/moodmates/internal/realtime"
)

// Realtime upgrades an authenticated request to the websocket change
// channel. The gorilla upgrader works on net/http, so the handler goes
// through Fiber's adaptor.
func (handler *Handler) Realtime(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.hub == nil {
		return apiError(c, fiber.StatusServiceUnavailable, "realtime disabled")
	}
	return adaptor.HTTPHandlerFunc(realtime.ServeWS(handler.hub, user.ID))(c)
}

func (handler *Handler) publishChange(collection string, event string) {
	if handler.hub == nil {
		return
	}
	handler.hub.Publish(realtime.Change{Collection: collection, Event: event})
}
