package services

import (
	"errors"
	"strings"
	"time"

	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/models"
)

const (
	historyLimit = 200
	feedLimit    = 50
)

// moodColors maps each supported emoji to its display color. The color is
// derived on the server so feed clients never compute it.
var moodColors = map[string]string{
	"🤩": "#FF6B6B",
	"😊": "#4ECDC4",
	"😌": "#95E1D3",
	"😐": "#FFA07A",
	"😕": "#FFD93D",
	"😔": "#6C5CE7",
	"😢": "#A8A8A8",
}

type MoodEntryRepository interface {
	FindLatestByUser(userID uint) (models.MoodEntry, bool, error)
	ListByUser(userID uint, limit int) ([]models.MoodEntry, error)
	ListByUsers(userIDs []uint, limit int) ([]models.MoodEntry, error)
	Create(entry *models.MoodEntry) error
	UpdateNote(moodID uint, userID uint, note string) (int64, error)
	DeleteByIDAndUser(moodID uint, userID uint) (int64, error)
}

type MoodAuthorRepository interface {
	FindManyByIDs(userIDs []uint) ([]models.User, error)
}

// FeedScope supplies the set of users whose entries appear in a feed.
type FeedScope interface {
	MutualFriendIDs(ownerID uint) ([]uint, error)
}

type MoodService struct {
	moods MoodEntryRepository
	users MoodAuthorRepository
	scope FeedScope
}

func NewMoodService(moods MoodEntryRepository, users MoodAuthorRepository, scope FeedScope) *MoodService {
	return &MoodService{moods: moods, users: users, scope: scope}
}

// MoodColor returns the display color for an emoji and whether the emoji
// belongs to the supported catalog.
func MoodColor(emoji string) (string, bool) {
	color, ok := moodColors[emoji]
	return color, ok
}

// Submit logs a mood for the user at now. The streak is a pure function of
// the immediately preceding entry; a second entry on the same UTC calendar
// day is rejected, and losing the same-day insert race reports the same
// error because the outcome is identical for the caller.
func (service *MoodService) Submit(userID uint, emoji string, note string, now time.Time) (models.MoodEntry, error) {
	color, ok := MoodColor(emoji)
	if !ok {
		return models.MoodEntry{}, ErrInvalidMood
	}

	var previous *StreakPoint
	latest, found, err := service.moods.FindLatestByUser(userID)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if found {
		previous = &StreakPoint{At: latest.CreatedAt, Streak: latest.Streak}
	}

	result := ComputeStreak(previous, now)
	if !result.Allowed {
		return models.MoodEntry{}, ErrAlreadyLoggedToday
	}

	entry := models.MoodEntry{
		UserID:    userID,
		Mood:      emoji,
		Note:      strings.TrimSpace(note),
		Color:     color,
		Streak:    result.Streak,
		Day:       UTCDay(now),
		CreatedAt: now.UTC(),
	}
	if err := service.moods.Create(&entry); err != nil {
		if errors.Is(err, db.ErrConflict) {
			return models.MoodEntry{}, ErrAlreadyLoggedToday
		}
		return models.MoodEntry{}, err
	}
	return entry, nil
}

// History returns the user's own entries, newest first.
func (service *MoodService) History(userID uint) ([]models.MoodEntry, error) {
	return service.moods.ListByUser(userID, historyLimit)
}

// UpdateNote edits the free-text note of one of the user's entries. The
// entry's identity, emoji, and streak stay immutable.
func (service *MoodService) UpdateNote(userID uint, moodID uint, note string) error {
	affected, err := service.moods.UpdateNote(moodID, userID, strings.TrimSpace(note))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMoodNotFound
	}
	return nil
}

// Delete removes one of the user's entries.
func (service *MoodService) Delete(userID uint, moodID uint) error {
	affected, err := service.moods.DeleteByIDAndUser(moodID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMoodNotFound
	}
	return nil
}

// Feed returns the newest entries from the user and their mutual friends,
// each with the author attached. Pending or blocked relationships never
// contribute entries.
func (service *MoodService) Feed(userID uint) ([]models.FeedEntry, error) {
	friendIDs, err := service.scope.MutualFriendIDs(userID)
	if err != nil {
		return nil, err
	}
	visible := append(friendIDs, userID)

	entries, err := service.moods.ListByUsers(visible, feedLimit)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(entries))
	seen := make(map[uint]struct{}, len(entries))
	for _, entry := range entries {
		if _, duplicate := seen[entry.UserID]; duplicate {
			continue
		}
		seen[entry.UserID] = struct{}{}
		authorIDs = append(authorIDs, entry.UserID)
	}

	authors, err := service.users.FindManyByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	profiles := make(map[uint]models.PublicUser, len(authors))
	for _, author := range authors {
		profiles[author.ID] = author.Public()
	}

	feed := make([]models.FeedEntry, 0, len(entries))
	for _, entry := range entries {
		feed = append(feed, models.FeedEntry{MoodEntry: entry, Author: profiles[entry.UserID]})
	}
	return feed, nil
}
