package services

import (
	"errors"
	"strings"
	"time"

	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/models"
)

// ProfileOutcome reports how EnsureProfile satisfied the request.
type ProfileOutcome string

const (
	ProfileCreated ProfileOutcome = "created"
	ProfileFound   ProfileOutcome = "found"
)

type ProfileUserRepository interface {
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdateUsername(userID uint, username string) error
}

// ProfileService manages the users collection. Profiles are keyed by email,
// created on first authentication, and never deleted here.
type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// EnsureProfile is an idempotent upsert keyed by email. It returns the
// existing profile when one exists, otherwise creates it with the email's
// local part as the default username. Losing the insert race resolves by
// refetching the row the winner created, so concurrent first logins both
// end up with the same profile.
func (service *ProfileService) EnsureProfile(email string, passwordHash string, now time.Time) (models.User, ProfileOutcome, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return models.User{}, "", ErrInvalidEmail
	}

	existing, err := service.users.FindByNormalizedEmail(normalized)
	if err == nil {
		return existing, ProfileFound, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return models.User{}, "", err
	}

	user := models.User{
		Username:     defaultUsername(normalized),
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
	}
	createErr := service.users.Create(&user)
	if createErr == nil {
		return user, ProfileCreated, nil
	}
	if !errors.Is(createErr, db.ErrConflict) {
		return models.User{}, "", createErr
	}

	winner, err := service.users.FindByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, "", err
	}
	return winner, ProfileFound, nil
}

func (service *ProfileService) FindByID(userID uint) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if errors.Is(err, db.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (service *ProfileService) FindByEmail(email string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if errors.Is(err, db.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

// UpdateUsername changes the mutable display name. The email stays the
// immutable natural key.
func (service *ProfileService) UpdateUsername(userID uint, username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return ErrInvalidUsername
	}
	return service.users.UpdateUsername(userID, trimmed)
}

// NormalizeEmail lowercases and trims an email address. An address without
// an @ is treated as empty.
func NormalizeEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(normalized, "@") {
		return ""
	}
	return normalized
}

func defaultUsername(email string) string {
	localPart, _, found := strings.Cut(email, "@")
	if !found || localPart == "" {
		return "user"
	}
	return localPart
}
