package repository

import (
	"database/sql"
	"fmt"
	"time"

	"yamsoo/internal/database"
	"yamsoo/internal/models"
	"yamsoo/internal/relation"
)

// ParentEdge is one accepted parent->child link, used by the
// suggestion generator's full scan.
type ParentEdge struct {
	ParentID int64
	ChildID  int64
}

// RelationshipRepository handles database operations for accepted
// family relationships.
type RelationshipRepository struct {
	db database.DBTX
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *database.DB) *RelationshipRepository {
	return &RelationshipRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *RelationshipRepository) WithTx(tx *database.Tx) *RelationshipRepository {
	return &RelationshipRepository{db: tx}
}

// Create inserts one direction of a relationship. Callers are
// responsible for inserting the mirror row in the same transaction.
func (r *RelationshipRepository) Create(userID, relatedUserID int64, kind relation.Kind, automatic bool) (*models.FamilyRelationship, error) {
	query := `
		INSERT INTO family_relationships (user_id, related_user_id, relationship_type, status, created_automatically)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, relatedUserID, string(kind), models.RelationshipStatusAccepted, automatic)
	if err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}

	return &models.FamilyRelationship{
		ID:                   id,
		UserID:               userID,
		RelatedUserID:        relatedUserID,
		Kind:                 kind,
		Status:               models.RelationshipStatusAccepted,
		CreatedAutomatically: automatic,
		CreatedAt:            time.Now(),
	}, nil
}

// ExistsBetween reports whether any relationship connects the two
// users, in either direction. This is the no-duplicate guard used
// before creating any direct or inferred edge.
func (r *RelationshipRepository) ExistsBetween(userA, userB int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM family_relationships
		WHERE (user_id = ? AND related_user_id = ?) OR (user_id = ? AND related_user_id = ?)
	`
	var count int
	if err := r.db.QueryRow(query, userA, userB, userB, userA).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check relationship existence: %w", err)
	}
	return count > 0, nil
}

// GetKind returns the relation kind userID holds toward relatedUserID,
// or "" if no such row exists.
func (r *RelationshipRepository) GetKind(userID, relatedUserID int64) (relation.Kind, error) {
	query := "SELECT relationship_type FROM family_relationships WHERE user_id = ? AND related_user_id = ?"
	var kind string
	err := r.db.QueryRow(query, userID, relatedUserID).Scan(&kind)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get relationship kind: %w", err)
	}
	return relation.Kind(kind), nil
}

// ListByUser retrieves all relationships a user holds, with the
// related user's details for display.
func (r *RelationshipRepository) ListByUser(userID int64) ([]models.RelationshipWithUser, error) {
	query := `
		SELECT fr.id, fr.user_id, fr.related_user_id, fr.relationship_type, fr.status,
		       fr.created_automatically, fr.created_at, u.name, u.email
		FROM family_relationships fr
		INNER JOIN users u ON fr.related_user_id = u.id
		WHERE fr.user_id = ?
		ORDER BY fr.created_at ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	var out []models.RelationshipWithUser
	for rows.Next() {
		var rel models.RelationshipWithUser
		var kind string
		if err := rows.Scan(&rel.ID, &rel.UserID, &rel.RelatedUserID, &kind, &rel.Status,
			&rel.CreatedAutomatically, &rel.CreatedAt, &rel.RelatedUserName, &rel.RelatedUserEmail); err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		rel.Kind = relation.Kind(kind)
		out = append(out, rel)
	}
	return out, rows.Err()
}

// relatedUsersByKinds returns the related_user_id of rows where userID
// holds one of the given kinds.
func (r *RelationshipRepository) relatedUsersByKinds(userID int64, kinds ...relation.Kind) ([]int64, error) {
	if len(kinds) == 0 {
		return nil, nil
	}
	query := "SELECT related_user_id FROM family_relationships WHERE user_id = ? AND relationship_type IN ("
	args := []interface{}{userID}
	for i, k := range kinds {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args = append(args, string(k))
	}
	query += ")"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query related users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan related user: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Children returns the users toward whom userID holds a parent kind.
func (r *RelationshipRepository) Children(userID int64) ([]int64, error) {
	return r.relatedUsersByKinds(userID, relation.Father, relation.Mother)
}

// Parents returns the users who hold a parent kind toward userID.
func (r *RelationshipRepository) Parents(userID int64) ([]int64, error) {
	query := `
		SELECT user_id FROM family_relationships
		WHERE related_user_id = ? AND relationship_type IN (?, ?)
	`
	rows, err := r.db.Query(query, userID, string(relation.Father), string(relation.Mother))
	if err != nil {
		return nil, fmt.Errorf("failed to query parents: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan parent: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Spouses returns the users toward whom userID holds a marriage kind.
func (r *RelationshipRepository) Spouses(userID int64) ([]int64, error) {
	return r.relatedUsersByKinds(userID, relation.Husband, relation.Wife)
}

// Siblings returns the users toward whom userID holds a sibling kind.
func (r *RelationshipRepository) Siblings(userID int64) ([]int64, error) {
	return r.relatedUsersByKinds(userID, relation.Brother, relation.Sister)
}

// ListParentEdges returns every accepted parent->child link. The
// suggestion generator re-scans this set on each run.
func (r *RelationshipRepository) ListParentEdges() ([]ParentEdge, error) {
	query := `
		SELECT user_id, related_user_id FROM family_relationships
		WHERE relationship_type IN (?, ?) AND status = ?
		ORDER BY user_id, related_user_id
	`
	rows, err := r.db.Query(query, string(relation.Father), string(relation.Mother), models.RelationshipStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to query parent edges: %w", err)
	}
	defer rows.Close()

	var edges []ParentEdge
	for rows.Next() {
		var e ParentEdge
		if err := rows.Scan(&e.ParentID, &e.ChildID); err != nil {
			return nil, fmt.Errorf("failed to scan parent edge: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// ListAllPairs returns every (user_id, related_user_id) pair with an
// accepted relationship, for building the bidirectional existing-
// relations map in one query instead of per-pair lookups.
func (r *RelationshipRepository) ListAllPairs() ([][2]int64, error) {
	query := "SELECT user_id, related_user_id FROM family_relationships"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationship pairs: %w", err)
	}
	defer rows.Close()

	var pairs [][2]int64
	for rows.Next() {
		var a, b int64
		if err := rows.Scan(&a, &b); err != nil {
			return nil, fmt.Errorf("failed to scan relationship pair: %w", err)
		}
		pairs = append(pairs, [2]int64{a, b})
	}
	return pairs, rows.Err()
}
