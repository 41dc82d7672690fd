package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/realtime"
	"github.com/moodmates/moodmates/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool

	repositories *db.Repositories
	profiles     *services.ProfileService
	friendships  *services.FriendshipService
	moods        *services.MoodService
	exports      *services.ExportService

	hub          *realtime.Hub
	loginLimiter *loginLimiter
}

func NewHandler(database *gorm.DB, secretKey string, hub *realtime.Hub, cookieSecure bool) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		hub:          hub,
		loginLimiter: newLoginLimiter(),
	}
	return handler.withDependencies(database)
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type friendRequestInput struct {
	Email string `json:"email" form:"email"`
}

type respondInput struct {
	Decision string `json:"decision" form:"decision"`
}

type moodInput struct {
	Mood string `json:"mood" form:"mood"`
	Note string `json:"note" form:"note"`
}

type noteInput struct {
	Note string `json:"note" form:"note"`
}

type usernameInput struct {
	Username string `json:"username" form:"username"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
