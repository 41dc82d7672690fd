package db

import (
	"errors"
	"time"

	"github.com/moodmates/moodmates/internal/models"
	"gorm.io/gorm"
)

type FriendRepository struct {
	database *gorm.DB
}

func NewFriendRepository(database *gorm.DB) *FriendRepository {
	return &FriendRepository{database: database}
}

func (repo *FriendRepository) FindEdgeByID(edgeID uint) (models.FriendEdge, error) {
	var edge models.FriendEdge
	if err := repo.database.First(&edge, edgeID).Error; err != nil {
		return models.FriendEdge{}, translateStoreError(err)
	}
	return edge, nil
}

func (repo *FriendRepository) FindEdgeByPair(userID uint, friendID uint) (models.FriendEdge, bool, error) {
	var edge models.FriendEdge
	err := repo.database.Where("user_id = ? AND friend_id = ?", userID, friendID).First(&edge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.FriendEdge{}, false, nil
	}
	if err != nil {
		return models.FriendEdge{}, false, translateStoreError(err)
	}
	return edge, true, nil
}

// PairHasEdges reports whether any edge exists between the two users in
// either direction.
func (repo *FriendRepository) PairHasEdges(userID uint, friendID uint) (bool, error) {
	var matched int64
	err := repo.database.Model(&models.FriendEdge{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Count(&matched).Error
	if err != nil {
		return false, translateStoreError(err)
	}
	return matched > 0, nil
}

func (repo *FriendRepository) CreateEdge(edge *models.FriendEdge) error {
	return translateStoreError(repo.database.Create(edge).Error)
}

func (repo *FriendRepository) ListOutgoing(userID uint) ([]models.FriendEdge, error) {
	edges := make([]models.FriendEdge, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&edges).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return edges, nil
}

func (repo *FriendRepository) ListIncoming(userID uint) ([]models.FriendEdge, error) {
	edges := make([]models.FriendEdge, 0)
	if err := repo.database.Where("friend_id = ?", userID).Order("created_at DESC, id DESC").Find(&edges).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return edges, nil
}

// AcceptPair marks the requester->recipient edge accepted and creates or
// updates the reciprocal edge in the same transaction, so the two edges
// never diverge. Safe to call again after a prior accept.
func (repo *FriendRepository) AcceptPair(requesterID uint, recipientID uint) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FriendEdge{}).
			Where("user_id = ? AND friend_id = ?", requesterID, recipientID).
			Update("status", models.FriendStatusAccepted).Error; err != nil {
			return err
		}

		var reciprocal models.FriendEdge
		err := tx.Where("user_id = ? AND friend_id = ?", recipientID, requesterID).First(&reciprocal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reciprocal = models.FriendEdge{
				UserID:   recipientID,
				FriendID: requesterID,
				Status:   models.FriendStatusAccepted,
			}
			return tx.Create(&reciprocal).Error
		}
		if err != nil {
			return err
		}
		if reciprocal.Status == models.FriendStatusAccepted {
			return nil
		}
		return tx.Model(&reciprocal).Update("status", models.FriendStatusAccepted).Error
	})
	return translateStoreError(err)
}

// DeletePair removes every edge between the two users, both directions,
// in one transaction.
func (repo *FriendRepository) DeletePair(userID uint, friendID uint) error {
	err := repo.database.
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&models.FriendEdge{}).Error
	return translateStoreError(err)
}

// SetPairStatus updates both directed edges between the two users to the
// given status in one transaction.
func (repo *FriendRepository) SetPairStatus(userID uint, friendID uint, status string) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.FriendEdge{}).
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Updates(map[string]any{
				"status":     status,
				"updated_at": time.Now().UTC(),
			}).Error
	})
	return translateStoreError(err)
}
