package db

import (
	"github.com/moodmates/moodmates/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, translateStoreError(err)
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, translateStoreError(err)
	}
	return user, nil
}

func (repo *UserRepository) FindManyByIDs(userIDs []uint) ([]models.User, error) {
	users := make([]models.User, 0, len(userIDs))
	if len(userIDs) == 0 {
		return users, nil
	}
	if err := repo.database.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, translateStoreError(err)
	}
	return users, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return translateStoreError(repo.database.Create(user).Error)
}

func (repo *UserRepository) UpdateUsername(userID uint, username string) error {
	return translateStoreError(
		repo.database.Model(&models.User{}).Where("id = ?", userID).Update("username", username).Error,
	)
}

func (repo *UserRepository) UpdatePasswordHash(userID uint, passwordHash string) error {
	return translateStoreError(
		repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error,
	)
}
