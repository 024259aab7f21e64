package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user.
// LegacyID is the pre-migration string identifier; nil for users created after it.
type User struct {
	ID              uuid.UUID
	LegacyID        *string
	FirstName       string
	LastName        string
	Email           string
	PasswordHash    string
	IsEmailVerified bool
	ProfileImageURL *string
	Bio             *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins first and last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserProfile is a user together with derived counts.
type UserProfile struct {
	User                User
	ActivityCount       int
	FollowedCommunities int
	PostCount           int
}

// Otp is a one-time verification code sent by email.
type Otp struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	Purpose   OtpPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the code has expired relative to now.
func (o *Otp) IsExpired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}
