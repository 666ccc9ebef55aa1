package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"yamsoo/internal/database"
	"yamsoo/internal/models"
	"yamsoo/internal/relation"
	"yamsoo/internal/repository"
	"yamsoo/internal/validation"
)

var (
	ErrSelfRequest         = errors.New("cannot request a relationship with yourself")
	ErrUnknownRelationKind = errors.New("unknown relationship type")
	ErrUserNotFound        = errors.New("user not found")
	ErrAlreadyRelated      = errors.New("a relationship already exists between these users")
	ErrDuplicateRequest    = errors.New("a pending request already exists between these users")
	ErrRequestNotFound     = errors.New("relationship request not found")
	ErrRequestNotPending   = errors.New("relationship request is no longer pending")
	ErrNotAuthorized       = errors.New("not authorized to act on this request")
)

// TreeMember is one relative in a user's family tree view
type TreeMember struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	Inferred    bool   `json:"inferred"`
}

// TreeGroup collects a user's relatives of one category
type TreeGroup struct {
	Category string       `json:"category"`
	Members  []TreeMember `json:"members"`
}

// RelationshipService handles relationship requests, acceptance and
// the family tree views. Accepting a request writes both directed
// rows and runs inference in a single transaction.
type RelationshipService struct {
	db           *database.DB
	userRepo     *repository.UserRepository
	profileRepo  *repository.ProfileRepository
	relRepo      *repository.RelationshipRepository
	requestRepo  *repository.RequestRepository
	catalog      *relation.Catalog
	inference    *InferenceService
	emailService *EmailService
}

// NewRelationshipService creates a new relationship service
func NewRelationshipService(db *database.DB, userRepo *repository.UserRepository,
	profileRepo *repository.ProfileRepository, relRepo *repository.RelationshipRepository,
	requestRepo *repository.RequestRepository, catalog *relation.Catalog,
	inference *InferenceService, emailService *EmailService) *RelationshipService {
	return &RelationshipService{
		db:           db,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		relRepo:      relRepo,
		requestRepo:  requestRepo,
		catalog:      catalog,
		inference:    inference,
		emailService: emailService,
	}
}

// CreateRequest records that requester claims to hold kind toward the
// target user and notifies the target. The stored inverse is resolved
// from the target's gender at creation time.
func (s *RelationshipService) CreateRequest(ctx context.Context, requesterID, targetUserID int64, kind relation.Kind, message string) (*models.RelationshipRequest, error) {
	if requesterID == targetUserID {
		return nil, ErrSelfRequest
	}
	if !s.catalog.Contains(kind) {
		return nil, ErrUnknownRelationKind
	}
	if err := validation.ValidateMessage(message); err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	exists, err := s.relRepo.ExistsBetween(requesterID, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing relationship: %w", err)
	}
	if exists {
		return nil, ErrAlreadyRelated
	}

	for _, pair := range [][2]int64{{requesterID, targetUserID}, {targetUserID, requesterID}} {
		pending, err := s.requestRepo.HasPendingBetween(pair[0], pair[1])
		if err != nil {
			return nil, fmt.Errorf("failed to check pending request: %w", err)
		}
		if pending {
			return nil, ErrDuplicateRequest
		}
	}

	targetGender, err := s.profileRepo.GetGender(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target gender: %w", err)
	}

	req := &models.RelationshipRequest{
		RequesterID:  requesterID,
		TargetUserID: targetUserID,
		Kind:         kind,
		InverseKind:  relation.Inverse(kind, targetGender),
		Message:      message,
	}
	if err := s.requestRepo.Create(req); err != nil {
		return nil, err
	}

	if s.emailService != nil && s.emailService.IsEnabled() {
		requester, err := s.userRepo.GetUserByID(requesterID)
		if err == nil && requester != nil {
			kindName := s.catalog.DisplayName(kind, "en")
			if err := s.emailService.SendRelationshipRequestEmail(ctx, target.Email, target.Name, requester.Name, kindName); err != nil {
				log.Printf("Warning: failed to send request notification to %s: %v", target.Email, err)
			}
		}
	}

	return req, nil
}

// AcceptRequest confirms a pending request. Only the target user may
// accept. The forward edge, the mirror edge, the status change and
// all inferred relationships commit in one transaction.
func (s *RelationshipService) AcceptRequest(userID, requestID int64) error {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.TargetUserID != userID {
		return ErrNotAuthorized
	}
	if !req.IsPending() {
		return ErrRequestNotPending
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	relRepo := s.relRepo.WithTx(tx)
	requestRepo := s.requestRepo.WithTx(tx)

	exists, err := relRepo.ExistsBetween(req.RequesterID, req.TargetUserID)
	if err != nil {
		return fmt.Errorf("failed to check existing relationship: %w", err)
	}
	if exists {
		return ErrAlreadyRelated
	}

	if _, err := relRepo.Create(req.RequesterID, req.TargetUserID, req.Kind, false); err != nil {
		return err
	}
	if _, err := relRepo.Create(req.TargetUserID, req.RequesterID, req.InverseKind, false); err != nil {
		return err
	}
	if err := requestRepo.UpdateStatus(requestID, models.RequestStatusAccepted); err != nil {
		return err
	}

	s.inference.Run(relRepo, req.RequesterID, req.TargetUserID, req.Kind)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit acceptance: %w", err)
	}
	return nil
}

// RejectRequest declines a pending request. Only the target user may
// reject; the row is kept with a rejected status.
func (s *RelationshipService) RejectRequest(userID, requestID int64) error {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.TargetUserID != userID {
		return ErrNotAuthorized
	}
	if !req.IsPending() {
		return ErrRequestNotPending
	}
	return s.requestRepo.UpdateStatus(requestID, models.RequestStatusRejected)
}

// CancelRequest withdraws a pending request. Only the requester may
// cancel; the row is deleted so a fresh request can be sent later.
func (s *RelationshipService) CancelRequest(userID, requestID int64) error {
	req, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.RequesterID != userID {
		return ErrNotAuthorized
	}
	if !req.IsPending() {
		return ErrRequestNotPending
	}
	return s.requestRepo.Delete(requestID)
}

// ListReceivedRequests returns the pending requests addressed to a user
func (s *RelationshipService) ListReceivedRequests(userID int64) ([]models.RelationshipRequest, error) {
	return s.requestRepo.ListReceived(userID)
}

// ListSentRequests returns the pending requests a user has sent
func (s *RelationshipService) ListSentRequests(userID int64) ([]models.RelationshipRequest, error) {
	return s.requestRepo.ListSent(userID)
}

// ListRelationships returns all of a user's relationships with the
// related users' details.
func (s *RelationshipService) ListRelationships(userID int64) ([]models.RelationshipWithUser, error) {
	return s.relRepo.ListByUser(userID)
}

// FamilyTree groups a user's relatives by relationship category with
// localized display names, in catalog category order.
func (s *RelationshipService) FamilyTree(userID int64, locale string) ([]TreeGroup, error) {
	relationships, err := s.relRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	order := []relation.Category{
		relation.CategoryDirect,
		relation.CategorySibling,
		relation.CategoryMarriage,
		relation.CategoryExtended,
		relation.CategoryInLaw,
	}
	grouped := make(map[relation.Category][]TreeMember)
	for _, rel := range relationships {
		t, ok := s.catalog.Lookup(rel.Kind)
		if !ok {
			log.Printf("Warning: relationship %d has unknown kind %q", rel.ID, rel.Kind)
			continue
		}
		grouped[t.Category] = append(grouped[t.Category], TreeMember{
			UserID:      rel.RelatedUserID,
			Name:        rel.RelatedUserName,
			Kind:        string(rel.Kind),
			DisplayName: s.catalog.DisplayName(rel.Kind, locale),
			Inferred:    rel.CreatedAutomatically,
		})
	}

	var tree []TreeGroup
	for _, cat := range order {
		if members, ok := grouped[cat]; ok {
			tree = append(tree, TreeGroup{Category: string(cat), Members: members})
		}
	}
	return tree, nil
}

// SearchUsers finds potential relatives by name or email
func (s *RelationshipService) SearchUsers(q string, userID int64) ([]models.User, error) {
	if len(q) < 2 {
		return nil, nil
	}
	return s.userRepo.SearchUsers(q, userID, 20)
}
