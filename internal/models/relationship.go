package models

import (
	"time"

	"yamsoo/internal/relation"
)

// RelationshipStatusAccepted is the only status ever stored on a
// relationship row; rejected requests never become rows.
const RelationshipStatusAccepted = "accepted"

// FamilyRelationship is one direction of an accepted relationship.
// The row reads "UserID is Kind of RelatedUserID". Every row has a
// mirror row (RelatedUserID -> UserID) carrying the inverse kind.
type FamilyRelationship struct {
	ID                   int64
	UserID               int64
	RelatedUserID        int64
	Kind                 relation.Kind
	Status               string
	CreatedAutomatically bool
	CreatedAt            time.Time
}

// RelationshipWithUser pairs a relationship row with the related
// user's details for listing and tree views (populated via JOIN).
type RelationshipWithUser struct {
	FamilyRelationship
	RelatedUserName  string
	RelatedUserEmail string
}
