package db

import (
	"errors"
	"time"

	"github.com/moodmates/moodmates/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

// FindLatestByUser returns the user's most recent entry, newest first by
// creation time. The boolean is false when the user has no entries yet.
func (repo *MoodRepository) FindLatestByUser(userID uint) (models.MoodEntry, bool, error) {
	var entry models.MoodEntry
	err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MoodEntry{}, false, nil
	}
	if err != nil {
		return models.MoodEntry{}, false, translateStoreError(err)
	}
	return entry, true, nil
}

func (repo *MoodRepository) FindByIDAndUser(moodID uint, userID uint) (models.MoodEntry, error) {
	var entry models.MoodEntry
	err := repo.database.Where("id = ? AND user_id = ?", moodID, userID).First(&entry).Error
	if err != nil {
		return models.MoodEntry{}, translateStoreError(err)
	}
	return entry, nil
}

func (repo *MoodRepository) ListByUser(userID uint, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return entries, nil
}

func (repo *MoodRepository) ListByUsers(userIDs []uint, limit int) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if len(userIDs) == 0 {
		return entries, nil
	}
	query := repo.database.Where("user_id IN ?", userIDs).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return entries, nil
}

// ListByUserInRange returns the user's entries ordered oldest first, with
// either bound optional. Bounds are inclusive UTC calendar days.
func (repo *MoodRepository) ListByUserInRange(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	query := repo.database.Where("user_id = ?", userID).Order("day ASC, id ASC")
	if from != nil {
		query = query.Where("day >= ?", *from)
	}
	if to != nil {
		query = query.Where("day <= ?", *to)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return entries, nil
}

func (repo *MoodRepository) Create(entry *models.MoodEntry) error {
	return translateStoreError(repo.database.Create(entry).Error)
}

func (repo *MoodRepository) UpdateNote(moodID uint, userID uint, note string) (int64, error) {
	result := repo.database.Model(&models.MoodEntry{}).
		Where("id = ? AND user_id = ?", moodID, userID).
		Update("note", note)
	if result.Error != nil {
		return 0, translateStoreError(result.Error)
	}
	return result.RowsAffected, nil
}

func (repo *MoodRepository) DeleteByIDAndUser(moodID uint, userID uint) (int64, error) {
	result := repo.database.Where("id = ? AND user_id = ?", moodID, userID).Delete(&models.MoodEntry{})
	if result.Error != nil {
		return 0, translateStoreError(result.Error)
	}
	return result.RowsAffected, nil
}
