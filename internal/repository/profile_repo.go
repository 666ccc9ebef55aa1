package repository

import (
	"database/sql"
	"fmt"

	"yamsoo/internal/database"
	"yamsoo/internal/models"
	"yamsoo/internal/relation"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct {
	db database.DBTX
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *ProfileRepository) WithTx(tx *database.Tx) *ProfileRepository {
	return &ProfileRepository{db: tx}
}

// UpsertProfile creates or updates a user's profile
func (r *ProfileRepository) UpsertProfile(p *models.Profile) error {
	existing, err := r.GetProfileByUserID(p.UserID)
	if err != nil {
		return err
	}

	if existing == nil {
		query := `
			INSERT INTO profiles (user_id, gender, birth_date, bio, avatar_url)
			VALUES (?, ?, ?, ?, ?)
		`
		id, err := r.db.ExecReturningID(query, p.UserID, p.Gender, p.BirthDate, p.Bio, p.AvatarURL)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		p.ID = id
		return nil
	}

	query := `
		UPDATE profiles
		SET gender = ?, birth_date = ?, bio = ?, avatar_url = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?
	`
	if _, err := r.db.Exec(query, p.Gender, p.BirthDate, p.Bio, p.AvatarURL, p.UserID); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	p.ID = existing.ID
	return nil
}

// GetProfileByUserID retrieves a profile by the owning user's ID
func (r *ProfileRepository) GetProfileByUserID(userID int64) (*models.Profile, error) {
	query := `
		SELECT id, user_id, gender, birth_date, bio, avatar_url, created_at, updated_at
		FROM profiles WHERE user_id = ?
	`
	profile := &models.Profile{}
	err := r.db.QueryRow(query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Gender, &profile.BirthDate,
		&profile.Bio, &profile.AvatarURL, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetGender returns the user's gender for inverse resolution. A
// missing profile reads as Unspecified, never an error, so the
// resolver can always fall back to a valid kind.
func (r *ProfileRepository) GetGender(userID int64) (relation.Gender, error) {
	query := "SELECT gender FROM profiles WHERE user_id = ?"
	var gender string
	err := r.db.QueryRow(query, userID).Scan(&gender)
	if err == sql.ErrNoRows {
		return relation.Unspecified, nil
	}
	if err != nil {
		return relation.Unspecified, fmt.Errorf("failed to get gender: %w", err)
	}
	return relation.ParseGender(gender), nil
}
