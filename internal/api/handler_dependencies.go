package api

import (
	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.profiles = services.NewProfileService(handler.repositories.Users)
	handler.friendships = services.NewFriendshipService(handler.repositories.Friends, handler.repositories.Users)
	handler.moods = services.NewMoodService(handler.repositories.Moods, handler.repositories.Users, handler.friendships)
	handler.exports = services.NewExportService(handler.repositories.Moods)
	return handler
}
