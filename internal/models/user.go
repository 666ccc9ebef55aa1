package models

import "time"

// User is an account holder.
type User struct {
	ID            int64
	Email         string
	PasswordHash  string
	Name          string
	OAuthProvider string
	OAuthSubject  string
	IsAdmin       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile holds the personal details attached to a user. Gender is
// read-only input to the relationship inference engine.
type Profile struct {
	ID        int64
	UserID    int64
	Gender    string // 'male', 'female' or 'unspecified'
	BirthDate *time.Time
	Bio       string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
