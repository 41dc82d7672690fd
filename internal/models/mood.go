package models

import "time"

// MoodEntry is a single logged mood. Day is CreatedAt truncated to the UTC
// calendar day; the unique (user_id, day) index enforces at most one entry
// per user per day at the store. Streak is derived from the previous entry
// at insert time and is never edited afterwards.
type MoodEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_day" json:"user_id"`
	Mood      string    `gorm:"not null" json:"mood"`
	Note      string    `json:"note"`
	Color     string    `gorm:"not null" json:"color"`
	Streak    int       `gorm:"not null;default:1" json:"streak"`
	Day       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_day" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// FeedEntry is a mood entry with its author attached, as shown in the
// friend feed.
type FeedEntry struct {
	MoodEntry
	Author PublicUser `json:"author"`
}
