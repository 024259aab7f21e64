package domain

import (
	"time"

	"github.com/google/uuid"
)

// Community is a group users can follow. Followers is the legacy
// relationship array; community_followers is authoritative.
type Community struct {
	ID              uuid.UUID
	LegacyID        *string
	Name            string
	Description     string
	Category        CommunityCategory
	ProfileImageURL *string
	CreatorID       uuid.UUID
	FollowerCount   int
	PostCount       int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CommunityUpdateParams holds the mutable fields of a community. Nil means unchanged.
type CommunityUpdateParams struct {
	Name            *string
	Description     *string
	Category        *CommunityCategory
	ProfileImageURL *string
}
