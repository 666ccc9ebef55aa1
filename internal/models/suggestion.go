package models

import (
	"time"

	"yamsoo/internal/relation"
)

const (
	SuggestionStatusPending  = "pending"
	SuggestionStatusAccepted = "accepted"
	SuggestionStatusRejected = "rejected"
)

// Suggestion proposes that SuggestedUserID is Kind toward UserID.
// Suggestions never touch family_relationships directly; accepting one
// funnels through the relationship request workflow.
type Suggestion struct {
	ID              int64
	UserID          int64
	SuggestedUserID int64
	Kind            relation.Kind
	Reason          string
	Score           float64
	Status          string
	CreatedAt       time.Time

	SuggestedUserName string // Populated via JOIN
}

// IsPending reports whether the suggestion can still be acted on.
func (s *Suggestion) IsPending() bool {
	return s.Status == SuggestionStatusPending
}
