package models

import (
	"time"

	"yamsoo/internal/relation"
)

// Relationship request lifecycle. Cancelled requests are deleted
// outright rather than kept in a terminal state.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// RelationshipRequest is a pending proposal from one user to another.
// Kind names what the requester claims to be toward the target;
// InverseKind is resolved from the target's gender when the request is
// created and cached on the row.
type RelationshipRequest struct {
	ID           int64
	RequesterID  int64
	TargetUserID int64
	Kind         relation.Kind
	InverseKind  relation.Kind
	Message      string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RequesterName string // Populated via JOIN
	TargetName    string // Populated via JOIN
}

// IsPending reports whether the request can still be accepted,
// rejected or cancelled.
func (r *RelationshipRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
