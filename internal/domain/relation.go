package domain

import (
	"time"

	"github.com/google/uuid"
)

// Relation names a many-to-many membership kind between users and an object class.
type Relation string

const (
	RelationCommunityFollow Relation = "community_follow"
	RelationPostLike        Relation = "post_like"
)

// Relations lists every supported relation.
var Relations = []Relation{RelationCommunityFollow, RelationPostLike}

func (r Relation) String() string { return string(r) }

func (r Relation) IsValid() bool {
	switch r {
	case RelationCommunityFollow, RelationPostLike:
		return true
	}
	return false
}

// SubjectClass is the class of the acting side. Always users.
func (r Relation) SubjectClass() EntityClass { return EntityClassUser }

// ObjectClass is the class of the side that carries the counter.
func (r Relation) ObjectClass() EntityClass {
	if r == RelationPostLike {
		return EntityClassPost
	}
	return EntityClassCommunity
}

// Membership is a single (subject, object) fact.
type Membership struct {
	SubjectID uuid.UUID
	ObjectID  uuid.UUID
	CreatedAt time.Time
}

// Member is a subject user listed for an object, with the time it joined.
type Member struct {
	UserID          uuid.UUID
	FirstName       string
	LastName        string
	ProfileImageURL *string
	JoinedAt        time.Time
}

// ToggleResult is the state of a membership after a toggle or an explicit transition.
// Changed is false when the requested transition was already in effect.
type ToggleResult struct {
	Active  bool
	Count   int
	Changed bool
}

// MembershipStatus reports whether a subject holds a membership in an object.
// Since is nil when Active is false.
type MembershipStatus struct {
	Active bool
	Since  *time.Time
	Count  int
}

// LegacyIdentifier is one element of a legacy relationship array.
// Raw is the string value, or the JSON text of a non-string element.
type LegacyIdentifier struct {
	Raw      string
	IsString bool
}

// LegacyRelationship is one object's legacy array of subject identifiers.
type LegacyRelationship struct {
	ObjectID           uuid.UUID
	SubjectIdentifiers []LegacyIdentifier
}

// Reasons a legacy reference is skipped during migration.
const (
	SkipReasonEmptyIdentifier   = "empty identifier"
	SkipReasonInvalidIdentifier = "invalid identifier"
	SkipReasonSubjectNotFound   = "subject not found"
	SkipReasonDuplicate         = "duplicate in legacy array"
)

// SkippedReference records a legacy reference that could not be migrated.
type SkippedReference struct {
	ObjectID          uuid.UUID
	SubjectIdentifier string
	Reason            string
}

// MigrationReport summarizes a relationship migration run.
type MigrationReport struct {
	Relation            Relation
	InsertedCount       int
	SkippedCount        int
	AlreadyPresentCount int
	SkippedReasons      []SkippedReference
}

// Skip records a skipped reference.
func (r *MigrationReport) Skip(objectID uuid.UUID, identifier, reason string) {
	r.SkippedCount++
	r.SkippedReasons = append(r.SkippedReasons, SkippedReference{
		ObjectID:          objectID,
		SubjectIdentifier: identifier,
		Reason:            reason,
	})
}
