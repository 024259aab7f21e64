package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a user's social post, optionally attached to a community.
type Post struct {
	ID          uuid.UUID
	LegacyID    *string
	UserID      uuid.UUID
	CommunityID *uuid.UUID
	Caption     string
	ImageURL    string
	Category    Category
	Stats       map[string]any
	LikeCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
