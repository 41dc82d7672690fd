package models

import "time"

// Stored friend edge statuses. A declined request is deleted rather than
// kept around, so "declined" never reaches the store.
const (
	FriendStatusSent     = "sent"
	FriendStatusAccepted = "accepted"
	FriendStatusBlocked  = "blocked"
)

// Derived display statuses for outgoing edges. "friends" is shown only
// when both directed edges exist in an accepted state; anything asymmetric
// stays "sent". Incoming pending requests are listed separately.
const (
	DisplayStatusFriends = "friends"
	DisplayStatusSent    = "sent"
	DisplayStatusBlocked = "blocked"
)

// FriendEdge is one directed friendship record from UserID to FriendID.
// A mutual friendship is two edges, one per direction, kept in step by
// FriendshipService. The unique pair index makes the second of two racing
// inserts fail at the store instead of producing duplicate edges.
type FriendEdge struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_friend" json:"user_id"`
	FriendID  uint      `gorm:"not null;uniqueIndex:uidx_user_friend" json:"friend_id"`
	Status    string    `gorm:"not null;default:sent" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FriendListing pairs an outgoing edge with the counterpart's profile and
// the derived display status.
type FriendListing struct {
	Edge          FriendEdge `json:"edge"`
	Friend        PublicUser `json:"friend"`
	DisplayStatus string     `json:"display_status"`
}

// FriendRequestListing is an incoming pending edge with the requester's
// profile attached.
type FriendRequestListing struct {
	Edge      FriendEdge `json:"edge"`
	Requester PublicUser `json:"requester"`
}
