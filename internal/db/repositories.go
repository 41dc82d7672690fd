package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Friends *FriendRepository
	Moods   *MoodRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Friends: NewFriendRepository(database),
		Moods:   NewMoodRepository(database),
	}
}
