package services

import "errors"

// Closed set of business errors surfaced to the call boundary. Handlers map
// these onto HTTP statuses; nothing here is fatal to the process.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEdgeNotFound        = errors.New("friendship not found")
	ErrSelfReference       = errors.New("cannot befriend yourself")
	ErrFriendExists        = errors.New("friendship already exists")
	ErrFriendStateConflict = errors.New("friendship state does not allow this change")
	ErrInvalidDecision     = errors.New("invalid request decision")
	ErrInvalidMood         = errors.New("unknown mood emoji")
	ErrMoodNotFound        = errors.New("mood entry not found")
	ErrAlreadyLoggedToday  = errors.New("mood already logged today")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidUsername     = errors.New("invalid username")
)
