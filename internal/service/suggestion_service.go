package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"yamsoo/internal/models"
	"yamsoo/internal/relation"
	"yamsoo/internal/repository"
)

var (
	ErrSuggestionNotFound   = errors.New("suggestion not found")
	ErrSuggestionNotPending = errors.New("suggestion is no longer pending")
)

// SuggestionService proposes likely relatives from the existing graph.
// The generator scans accepted parent edges: two users sharing a
// parent are probably siblings. Suggestions never create
// relationships directly; accepting one sends a normal relationship
// request to the other user.
type SuggestionService struct {
	suggestionRepo *repository.SuggestionRepository
	relRepo        *repository.RelationshipRepository
	profileRepo    *repository.ProfileRepository
	relationships  *RelationshipService
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(suggestionRepo *repository.SuggestionRepository,
	relRepo *repository.RelationshipRepository, profileRepo *repository.ProfileRepository,
	relationships *RelationshipService) *SuggestionService {
	return &SuggestionService{
		suggestionRepo: suggestionRepo,
		relRepo:        relRepo,
		profileRepo:    profileRepo,
		relationships:  relationships,
	}
}

// GenerateSiblingSuggestions scans every accepted parent edge and
// creates pending sibling suggestions for child pairs that share a
// parent but have no relationship and no pending suggestion between
// them yet. It returns the number of suggestions created.
func (s *SuggestionService) GenerateSiblingSuggestions() (int, error) {
	edges, err := s.relRepo.ListParentEdges()
	if err != nil {
		return 0, err
	}

	childrenByParent := make(map[int64][]int64)
	for _, e := range edges {
		childrenByParent[e.ParentID] = append(childrenByParent[e.ParentID], e.ChildID)
	}

	related, err := s.pairSet(s.relRepo.ListAllPairs)
	if err != nil {
		return 0, err
	}
	suggested, err := s.pairSet(s.suggestionRepo.ListAllPendingPairs)
	if err != nil {
		return 0, err
	}

	created := 0
	for parentID, children := range childrenByParent {
		for i := 0; i < len(children); i++ {
			for j := i + 1; j < len(children); j++ {
				a, b := children[i], children[j]
				if a == b {
					continue
				}
				key := pairKey(a, b)
				if related[key] || suggested[key] {
					continue
				}

				if err := s.suggestSiblings(a, b, parentID); err != nil {
					log.Printf("Warning: failed to suggest siblings %d and %d: %v", a, b, err)
					continue
				}
				suggested[key] = true
				created++
			}
		}
	}
	return created, nil
}

// suggestSiblings records one pending suggestion that userA and userB
// are siblings, gendered from the suggested user's profile.
func (s *SuggestionService) suggestSiblings(userA, userB, sharedParentID int64) error {
	gender, err := s.profileRepo.GetGender(userB)
	if err != nil {
		return err
	}
	suggestion := &models.Suggestion{
		UserID:          userA,
		SuggestedUserID: userB,
		Kind:            relation.SiblingFor(gender),
		Reason:          fmt.Sprintf("shares a parent (user %d)", sharedParentID),
		Score:           1.0,
	}
	return s.suggestionRepo.Create(suggestion)
}

// ListSuggestions returns a user's pending suggestions
func (s *SuggestionService) ListSuggestions(userID int64) ([]models.Suggestion, error) {
	return s.suggestionRepo.ListPendingByUser(userID)
}

// AcceptSuggestion turns a pending suggestion into a relationship
// request to the suggested user, then marks the suggestion accepted.
// The suggested user still has to approve the request; a suggestion
// alone never creates an edge.
func (s *SuggestionService) AcceptSuggestion(ctx context.Context, userID, suggestionID int64) (*models.RelationshipRequest, error) {
	suggestion, err := s.suggestionRepo.GetByID(suggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}
	if suggestion.UserID != userID {
		return nil, ErrNotAuthorized
	}
	if !suggestion.IsPending() {
		return nil, ErrSuggestionNotPending
	}

	// The requester claims the inverse of what the suggestion says
	// about the other user: if userB is suggested as userA's brother,
	// userA requests as userB's sibling, gendered from userA's profile.
	requesterGender, err := s.profileRepo.GetGender(userID)
	if err != nil {
		return nil, err
	}
	kind := relation.SiblingFor(requesterGender)

	req, err := s.relationships.CreateRequest(ctx, userID, suggestion.SuggestedUserID, kind, "")
	if err != nil {
		return nil, err
	}

	if err := s.suggestionRepo.UpdateStatus(suggestionID, models.SuggestionStatusAccepted); err != nil {
		return nil, err
	}
	return req, nil
}

// RejectSuggestion dismisses a pending suggestion
func (s *SuggestionService) RejectSuggestion(userID, suggestionID int64) error {
	suggestion, err := s.suggestionRepo.GetByID(suggestionID)
	if err != nil {
		return err
	}
	if suggestion == nil {
		return ErrSuggestionNotFound
	}
	if suggestion.UserID != userID {
		return ErrNotAuthorized
	}
	if !suggestion.IsPending() {
		return ErrSuggestionNotPending
	}
	return s.suggestionRepo.UpdateStatus(suggestionID, models.SuggestionStatusRejected)
}

func (s *SuggestionService) pairSet(list func() ([][2]int64, error)) (map[[2]int64]bool, error) {
	pairs, err := list()
	if err != nil {
		return nil, err
	}
	set := make(map[[2]int64]bool, len(pairs))
	for _, p := range pairs {
		set[pairKey(p[0], p[1])] = true
	}
	return set, nil
}

// pairKey normalizes a user pair so either order maps to the same key
func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}
