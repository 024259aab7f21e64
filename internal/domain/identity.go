package domain

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// EntityClass names an addressable entity kind.
type EntityClass string

const (
	EntityClassUser      EntityClass = "user"
	EntityClassCommunity EntityClass = "community"
	EntityClassPost      EntityClass = "post"
)

func (c EntityClass) String() string { return string(c) }

func (c EntityClass) IsValid() bool {
	switch c {
	case EntityClassUser, EntityClassCommunity, EntityClassPost:
		return true
	}
	return false
}

// LegacyIDMaxLen is the width of the legacy_id columns.
const LegacyIDMaxLen = 255

// EntityRecord is the identity of a user, community or post.
type EntityRecord struct {
	Class    EntityClass
	ID       uuid.UUID
	LegacyID *string
	// Active is false for soft-deleted entities.
	Active bool
}

// ParsePrimaryID reports whether s is a primary identifier and returns it.
func ParsePrimaryID(s string) (uuid.UUID, bool) {
	id, err := uuid.Parse(s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// LooksLegacy reports whether s has the shape of a legacy identifier:
// non-empty, at most LegacyIDMaxLen bytes, without whitespace.
func LooksLegacy(s string) bool {
	if s == "" || len(s) > LegacyIDMaxLen {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}
