package repository

import (
	"database/sql"
	"fmt"
	"time"

	"yamsoo/internal/database"
	"yamsoo/internal/models"
	"yamsoo/internal/relation"
)

// SuggestionRepository handles database operations for relationship
// suggestions.
type SuggestionRepository struct {
	db database.DBTX
}

// NewSuggestionRepository creates a new suggestion repository
func NewSuggestionRepository(db *database.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *SuggestionRepository) WithTx(tx *database.Tx) *SuggestionRepository {
	return &SuggestionRepository{db: tx}
}

// Create persists a pending suggestion
func (r *SuggestionRepository) Create(s *models.Suggestion) error {
	query := `
		INSERT INTO suggestions (user_id, suggested_user_id, relationship_type, reason, score, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		s.UserID, s.SuggestedUserID, string(s.Kind), s.Reason, s.Score, models.SuggestionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	s.ID = id
	s.Status = models.SuggestionStatusPending
	s.CreatedAt = time.Now()
	return nil
}

// GetByID retrieves a suggestion by ID
func (r *SuggestionRepository) GetByID(suggestionID int64) (*models.Suggestion, error) {
	query := `
		SELECT id, user_id, suggested_user_id, relationship_type, reason, score, status, created_at
		FROM suggestions WHERE id = ?
	`
	s := &models.Suggestion{}
	var kind string
	err := r.db.QueryRow(query, suggestionID).Scan(
		&s.ID, &s.UserID, &s.SuggestedUserID, &kind, &s.Reason, &s.Score, &s.Status, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	s.Kind = relation.Kind(kind)
	return s, nil
}

// ListPendingByUser retrieves a user's pending suggestions with the
// suggested user's name for display.
func (r *SuggestionRepository) ListPendingByUser(userID int64) ([]models.Suggestion, error) {
	query := `
		SELECT s.id, s.user_id, s.suggested_user_id, s.relationship_type, s.reason, s.score,
		       s.status, s.created_at, u.name
		FROM suggestions s
		INNER JOIN users u ON s.suggested_user_id = u.id
		WHERE s.user_id = ? AND s.status = ?
		ORDER BY s.score DESC, s.created_at DESC
	`
	rows, err := r.db.Query(query, userID, models.SuggestionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var s models.Suggestion
		var kind string
		if err := rows.Scan(&s.ID, &s.UserID, &s.SuggestedUserID, &kind, &s.Reason, &s.Score,
			&s.Status, &s.CreatedAt, &s.SuggestedUserName); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		s.Kind = relation.Kind(kind)
		suggestions = append(suggestions, s)
	}
	return suggestions, rows.Err()
}

// UpdateStatus moves a suggestion into a terminal state
func (r *SuggestionRepository) UpdateStatus(suggestionID int64, status string) error {
	query := "UPDATE suggestions SET status = ? WHERE id = ?"
	if _, err := r.db.Exec(query, status, suggestionID); err != nil {
		return fmt.Errorf("failed to update suggestion status: %w", err)
	}
	return nil
}

// HasPendingBetween reports whether a pending suggestion already links
// the two users, in either direction.
func (r *SuggestionRepository) HasPendingBetween(userA, userB int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM suggestions
		WHERE status = ?
		  AND ((user_id = ? AND suggested_user_id = ?) OR (user_id = ? AND suggested_user_id = ?))
	`
	var count int
	if err := r.db.QueryRow(query, models.SuggestionStatusPending, userA, userB, userB, userA).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check pending suggestion: %w", err)
	}
	return count > 0, nil
}

// ListAllPendingPairs returns every (user_id, suggested_user_id) pair
// with a pending suggestion, for the generator's duplicate map.
func (r *SuggestionRepository) ListAllPendingPairs() ([][2]int64, error) {
	query := "SELECT user_id, suggested_user_id FROM suggestions WHERE status = ?"
	rows, err := r.db.Query(query, models.SuggestionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestion pairs: %w", err)
	}
	defer rows.Close()

	var pairs [][2]int64
	for rows.Next() {
		var a, b int64
		if err := rows.Scan(&a, &b); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion pair: %w", err)
		}
		pairs = append(pairs, [2]int64{a, b})
	}
	return pairs, rows.Err()
}
