package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"yamsoo/internal/models"
	"yamsoo/internal/service"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type profileResponse struct {
	UserID    int64  `json:"user_id"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type updateProfileRequest struct {
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

func toProfileResponse(p *models.Profile) profileResponse {
	resp := profileResponse{
		UserID:    p.UserID,
		Gender:    p.Gender,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
	}
	if p.BirthDate != nil {
		resp.BirthDate = p.BirthDate.Format(time.DateOnly)
	}
	return resp
}

// Get returns the authenticated user's profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	profile, err := h.profileService.GetProfile(user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toProfileResponse(profile))
}

// Update saves the authenticated user's profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(user.ID, req.Gender, req.BirthDate, req.Bio, req.AvatarURL)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toProfileResponse(profile))
}
