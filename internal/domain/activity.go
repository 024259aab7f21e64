package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a logged workout. Details is free-form JSON captured by the client.
type Activity struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  Category
	Details   map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}
