package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueLegacyID returns a legacy identifier that is unique across the shared test database.
func UniqueLegacyID(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedUser creates an active user. legacyID may be nil.
func SeedUser(t *testing.T, pool *pgxpool.Pool, legacyID *string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		LegacyID:     legacyID,
		FirstName:    "Test",
		LastName:     "User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, legacy_id, first_name, last_name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.LegacyID, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCommunity creates a community owned by creatorID with the given legacy
// followers array. followerCount is stored as-is so tests can simulate drift.
func SeedCommunity(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, legacyID *string, followers []string, followerCount int) domain.Community {
	t.Helper()
	ctx := context.Background()

	if followers == nil {
		followers = []string{}
	}
	raw, err := json.Marshal(followers)
	if err != nil {
		t.Fatalf("testhelper: SeedCommunity marshal followers: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Community{
		ID:            uuid.New(),
		LegacyID:      legacyID,
		Name:          "Community " + uniqueSuffix(),
		Description:   "A community created for tests",
		Category:      domain.CommunityCategoryRunning,
		CreatorID:     creatorID,
		FollowerCount: followerCount,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO communities (id, legacy_id, name, description, category, creator_id, followers, follower_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10)`,
		c.ID, c.LegacyID, c.Name, c.Description, string(c.Category), c.CreatorID, string(raw), c.FollowerCount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCommunity: %v", err)
	}

	return c
}

// SeedPost creates a post authored by userID with the given legacy likedBy array.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, legacyID *string, likedBy []string, likeCount int) domain.Post {
	t.Helper()
	ctx := context.Background()

	if likedBy == nil {
		likedBy = []string{}
	}
	raw, err := json.Marshal(likedBy)
	if err != nil {
		t.Fatalf("testhelper: SeedPost marshal likedBy: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Post{
		ID:        uuid.New(),
		LegacyID:  legacyID,
		UserID:    userID,
		Caption:   "Morning run " + uniqueSuffix(),
		ImageURL:  "https://example.com/run.jpg",
		Category:  domain.CategoryRunning,
		Stats:     map[string]any{},
		LikeCount: likeCount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO posts (id, legacy_id, user_id, caption, image_url, category, liked_by, like_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10)`,
		p.ID, p.LegacyID, p.UserID, p.Caption, p.ImageURL, string(p.Category), string(raw), p.LikeCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}

	return p
}
