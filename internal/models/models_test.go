package models

import (
	"testing"
	"time"

	"yamsoo/internal/relation"
)

func TestSessionIsExpired(t *testing.T) {
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "future expiration",
			expiresAt: time.Now().Add(1 * time.Hour),
			want:      false,
		},
		{
			name:      "just expired",
			expiresAt: time.Now().Add(-1 * time.Second),
			want:      true,
		},
		{
			name:      "expired yesterday",
			expiresAt: time.Now().Add(-24 * time.Hour),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := Session{
				ID:        "test-session",
				UserID:    1,
				ExpiresAt: tt.expiresAt,
				CreatedAt: time.Now().Add(-1 * time.Hour),
			}
			if got := session.IsExpired(); got != tt.want {
				t.Errorf("Session.IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRelationshipRequestIsPending(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{RequestStatusPending, true},
		{RequestStatusAccepted, false},
		{RequestStatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			req := RelationshipRequest{
				RequesterID:  1,
				TargetUserID: 2,
				Kind:         relation.Brother,
				Status:       tt.status,
			}
			if got := req.IsPending(); got != tt.want {
				t.Errorf("IsPending() with status %q = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestSuggestionIsPending(t *testing.T) {
	s := Suggestion{Status: SuggestionStatusPending}
	if !s.IsPending() {
		t.Error("pending suggestion reported as not pending")
	}
	s.Status = SuggestionStatusRejected
	if s.IsPending() {
		t.Error("rejected suggestion reported as pending")
	}
}
