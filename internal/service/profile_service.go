package service

import (
	"fmt"
	"time"

	"yamsoo/internal/models"
	"yamsoo/internal/repository"
	"yamsoo/internal/validation"
)

// ProfileService handles profile reads and updates
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns a user's profile, or an empty profile if none
// has been saved yet.
func (s *ProfileService) GetProfile(userID int64) (*models.Profile, error) {
	profile, err := s.profileRepo.GetProfileByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &models.Profile{UserID: userID, Gender: "unspecified"}, nil
	}
	return profile, nil
}

// UpdateProfile validates and saves a user's profile. Gender changes
// affect how future relationships are gendered; existing rows keep
// the kinds they were created with.
func (s *ProfileService) UpdateProfile(userID int64, gender, birthDate, bio, avatarURL string) (*models.Profile, error) {
	if err := validation.ValidateGender(gender); err != nil {
		return nil, err
	}
	if err := validation.ValidateBio(bio); err != nil {
		return nil, err
	}

	var parsedBirthDate *time.Time
	if birthDate != "" {
		d, err := time.Parse("2006-01-02", birthDate)
		if err != nil {
			return nil, validation.ValidationError{Field: "birth_date", Message: "birth date must be YYYY-MM-DD"}
		}
		parsedBirthDate = &d
	}

	profile := &models.Profile{
		UserID:    userID,
		Gender:    gender,
		BirthDate: parsedBirthDate,
		Bio:       bio,
		AvatarURL: avatarURL,
	}
	if err := s.profileRepo.UpsertProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
