package service

import (
	"fmt"
	"log"

	"yamsoo/internal/relation"
	"yamsoo/internal/repository"
)

// InferenceService derives indirect family relationships whenever a
// direct relationship is accepted. Each accepted edge triggers exactly
// one pass of rules keyed on the edge's category; there is no
// transitive closure, so chains build up request by request.
type InferenceService struct {
	profileRepo *repository.ProfileRepository
}

// NewInferenceService creates a new inference service
func NewInferenceService(profileRepo *repository.ProfileRepository) *InferenceService {
	return &InferenceService{profileRepo: profileRepo}
}

// Run applies the inference rules for a newly accepted edge where
// userID holds kind toward relatedUserID. The relationship repository
// must be bound to the transaction that created the edge so the
// inferred rows commit or roll back with it. Individual rule failures
// are logged and skipped; a single unresolvable relative never blocks
// the acceptance.
func (s *InferenceService) Run(rel *repository.RelationshipRepository, userID, relatedUserID int64, kind relation.Kind) {
	switch {
	case kind.IsParent():
		s.parentRules(rel, userID, relatedUserID)
	case kind.IsChild():
		s.parentRules(rel, relatedUserID, userID)
	case kind.IsSpouse():
		s.marriageRules(rel, userID, relatedUserID)
		s.marriageRules(rel, relatedUserID, userID)
	case kind.IsSibling():
		s.siblingRules(rel, userID, relatedUserID)
	}
}

// parentRules runs after parentID becomes a parent of childID:
// the parent's other children become the child's siblings, the
// parent's parents become grandparents, the child's children become
// the parent's grandchildren, and the child's spouses gain a
// parent-in-law.
func (s *InferenceService) parentRules(rel *repository.RelationshipRepository, parentID, childID int64) {
	children, err := rel.Children(parentID)
	if err != nil {
		log.Printf("inference: listing children of %d: %v", parentID, err)
	}
	for _, siblingID := range children {
		if siblingID == childID {
			continue
		}
		s.linkSiblings(rel, childID, siblingID)
	}

	grandparents, err := rel.Parents(parentID)
	if err != nil {
		log.Printf("inference: listing parents of %d: %v", parentID, err)
	}
	for _, gpID := range grandparents {
		s.linkGrandparent(rel, gpID, childID)
	}

	grandchildren, err := rel.Children(childID)
	if err != nil {
		log.Printf("inference: listing children of %d: %v", childID, err)
	}
	for _, gcID := range grandchildren {
		s.linkGrandparent(rel, parentID, gcID)
	}

	spouses, err := rel.Spouses(childID)
	if err != nil {
		log.Printf("inference: listing spouses of %d: %v", childID, err)
	}
	for _, spouseID := range spouses {
		s.linkParentInLaw(rel, parentID, spouseID)
	}
}

// marriageRules runs after spouseID marries partnerID, from the
// spouse's point of view: the partner's siblings and their spouses
// become siblings-in-law, and the partner's parents become
// parents-in-law.
func (s *InferenceService) marriageRules(rel *repository.RelationshipRepository, spouseID, partnerID int64) {
	siblings, err := rel.Siblings(partnerID)
	if err != nil {
		log.Printf("inference: listing siblings of %d: %v", partnerID, err)
	}
	for _, siblingID := range siblings {
		s.linkSiblingInLaw(rel, spouseID, siblingID)

		siblingSpouses, err := rel.Spouses(siblingID)
		if err != nil {
			log.Printf("inference: listing spouses of %d: %v", siblingID, err)
			continue
		}
		for _, ssID := range siblingSpouses {
			s.linkSiblingInLaw(rel, spouseID, ssID)
		}
	}

	parents, err := rel.Parents(partnerID)
	if err != nil {
		log.Printf("inference: listing parents of %d: %v", partnerID, err)
	}
	for _, parentID := range parents {
		s.linkParentInLaw(rel, parentID, spouseID)
	}
}

// siblingRules runs after userA and userB become siblings: each
// sibling's spouses become the other's siblings-in-law, and the two
// spouse sets link to each other the same way.
func (s *InferenceService) siblingRules(rel *repository.RelationshipRepository, userA, userB int64) {
	spousesA, err := rel.Spouses(userA)
	if err != nil {
		log.Printf("inference: listing spouses of %d: %v", userA, err)
	}
	spousesB, err := rel.Spouses(userB)
	if err != nil {
		log.Printf("inference: listing spouses of %d: %v", userB, err)
	}

	for _, spouseID := range spousesA {
		s.linkSiblingInLaw(rel, spouseID, userB)
	}
	for _, spouseID := range spousesB {
		s.linkSiblingInLaw(rel, spouseID, userA)
	}
	for _, saID := range spousesA {
		for _, sbID := range spousesB {
			s.linkSiblingInLaw(rel, saID, sbID)
		}
	}
}

// linkSiblings connects two users as brother/sister of each other
func (s *InferenceService) linkSiblings(rel *repository.RelationshipRepository, userA, userB int64) {
	s.linkMutual(rel, userA, userB, relation.SiblingFor, relation.SiblingFor)
}

// linkGrandparent connects a grandparent to a grandchild
func (s *InferenceService) linkGrandparent(rel *repository.RelationshipRepository, grandparentID, grandchildID int64) {
	s.linkMutual(rel, grandparentID, grandchildID, relation.GrandparentFor, relation.GrandchildFor)
}

// linkParentInLaw connects a parent-in-law to a child-in-law
func (s *InferenceService) linkParentInLaw(rel *repository.RelationshipRepository, parentInLawID, childInLawID int64) {
	s.linkMutual(rel, parentInLawID, childInLawID, relation.ParentInLawFor, relation.ChildInLawFor)
}

// linkSiblingInLaw connects two users as siblings-in-law of each other
func (s *InferenceService) linkSiblingInLaw(rel *repository.RelationshipRepository, userA, userB int64) {
	s.linkMutual(rel, userA, userB, relation.SiblingInLawFor, relation.SiblingInLawFor)
}

// linkMutual creates the forward and mirror rows for one inferred
// relationship, skipping the pair when any relationship already
// connects them in either direction.
func (s *InferenceService) linkMutual(rel *repository.RelationshipRepository, userA, userB int64,
	kindForA, kindForB func(relation.Gender) relation.Kind) {
	if userA == userB {
		return
	}
	if err := s.createMutual(rel, userA, userB, kindForA, kindForB); err != nil {
		log.Printf("inference: linking %d and %d: %v", userA, userB, err)
	}
}

func (s *InferenceService) createMutual(rel *repository.RelationshipRepository, userA, userB int64,
	kindForA, kindForB func(relation.Gender) relation.Kind) error {
	exists, err := rel.ExistsBetween(userA, userB)
	if err != nil {
		return fmt.Errorf("checking existing relationship: %w", err)
	}
	if exists {
		return nil
	}

	genderA, err := s.profileRepo.GetGender(userA)
	if err != nil {
		return fmt.Errorf("resolving gender of %d: %w", userA, err)
	}
	genderB, err := s.profileRepo.GetGender(userB)
	if err != nil {
		return fmt.Errorf("resolving gender of %d: %w", userB, err)
	}

	if _, err := rel.Create(userA, userB, kindForA(genderA), true); err != nil {
		return err
	}
	if _, err := rel.Create(userB, userA, kindForB(genderB), true); err != nil {
		return err
	}
	return nil
}
