package repository

import (
	"database/sql"
	"fmt"
	"time"

	"yamsoo/internal/database"
	"yamsoo/internal/models"
	"yamsoo/internal/relation"
)

// RequestRepository handles database operations for relationship requests
type RequestRepository struct {
	db database.DBTX
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *database.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *RequestRepository) WithTx(tx *database.Tx) *RequestRepository {
	return &RequestRepository{db: tx}
}

// Create persists a pending relationship request
func (r *RequestRepository) Create(req *models.RelationshipRequest) error {
	query := `
		INSERT INTO relationship_requests
			(requester_id, target_user_id, relationship_type, inverse_relationship_type, message, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		req.RequesterID, req.TargetUserID, string(req.Kind), string(req.InverseKind),
		req.Message, models.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.ID = id
	req.Status = models.RequestStatusPending
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	return nil
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(requestID int64) (*models.RelationshipRequest, error) {
	query := `
		SELECT id, requester_id, target_user_id, relationship_type, inverse_relationship_type,
		       message, status, created_at, updated_at
		FROM relationship_requests WHERE id = ?
	`
	req := &models.RelationshipRequest{}
	var kind, inverseKind string
	err := r.db.QueryRow(query, requestID).Scan(
		&req.ID, &req.RequesterID, &req.TargetUserID, &kind, &inverseKind,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	req.Kind = relation.Kind(kind)
	req.InverseKind = relation.Kind(inverseKind)
	return req, nil
}

// HasPendingBetween reports whether a pending request already exists
// from requester to target. At most one pending request per direction
// is enforced here, in the application layer.
func (r *RequestRepository) HasPendingBetween(requesterID, targetUserID int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM relationship_requests
		WHERE requester_id = ? AND target_user_id = ? AND status = ?
	`
	var count int
	if err := r.db.QueryRow(query, requesterID, targetUserID, models.RequestStatusPending).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check pending request: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus moves a request into a terminal state
func (r *RequestRepository) UpdateStatus(requestID int64, status string) error {
	query := "UPDATE relationship_requests SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, status, requestID); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return nil
}

// Delete removes a request row entirely (requester cancel)
func (r *RequestRepository) Delete(requestID int64) error {
	query := "DELETE FROM relationship_requests WHERE id = ?"
	if _, err := r.db.Exec(query, requestID); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}

// ListReceived retrieves pending requests addressed to a user
func (r *RequestRepository) ListReceived(userID int64) ([]models.RelationshipRequest, error) {
	query := `
		SELECT rr.id, rr.requester_id, rr.target_user_id, rr.relationship_type,
		       rr.inverse_relationship_type, rr.message, rr.status, rr.created_at, rr.updated_at,
		       u.name
		FROM relationship_requests rr
		INNER JOIN users u ON rr.requester_id = u.id
		WHERE rr.target_user_id = ? AND rr.status = ?
		ORDER BY rr.created_at DESC
	`
	return r.listRequests(query, userID, models.RequestStatusPending, true)
}

// ListSent retrieves pending requests a user has sent
func (r *RequestRepository) ListSent(userID int64) ([]models.RelationshipRequest, error) {
	query := `
		SELECT rr.id, rr.requester_id, rr.target_user_id, rr.relationship_type,
		       rr.inverse_relationship_type, rr.message, rr.status, rr.created_at, rr.updated_at,
		       u.name
		FROM relationship_requests rr
		INNER JOIN users u ON rr.target_user_id = u.id
		WHERE rr.requester_id = ? AND rr.status = ?
		ORDER BY rr.created_at DESC
	`
	return r.listRequests(query, userID, models.RequestStatusPending, false)
}

func (r *RequestRepository) listRequests(query string, userID int64, status string, received bool) ([]models.RelationshipRequest, error) {
	rows, err := r.db.Query(query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var requests []models.RelationshipRequest
	for rows.Next() {
		var req models.RelationshipRequest
		var kind, inverseKind, joinedName string
		if err := rows.Scan(&req.ID, &req.RequesterID, &req.TargetUserID, &kind, &inverseKind,
			&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt, &joinedName); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		req.Kind = relation.Kind(kind)
		req.InverseKind = relation.Kind(inverseKind)
		if received {
			req.RequesterName = joinedName
		} else {
			req.TargetName = joinedName
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
