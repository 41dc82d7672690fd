package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/ws", handler.AuthRequired, handler.Realtime)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.Me)
	users.Put("/me", handler.UpdateMe)

	friends := api.Group("/friends", handler.AuthRequired)
	friends.Get("", handler.ListFriends)
	friends.Post("", handler.SendFriendRequest)
	friends.Get("/requests", handler.ListFriendRequests)
	friends.Post("/:id/respond", handler.RespondToFriendRequest)
	friends.Post("/:id/block", handler.BlockFriend)
	friends.Post("/:id/unblock", handler.UnblockFriend)
	friends.Delete("/:id", handler.RemoveFriend)

	moods := api.Group("/moods", handler.AuthRequired)
	moods.Get("", handler.MoodHistory)
	moods.Post("", handler.SubmitMood)
	moods.Patch("/:id", handler.UpdateMoodNote)
	moods.Delete("/:id", handler.DeleteMood)

	api.Get("/feed", handler.AuthRequired, handler.Feed)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}
