package handlers

import (
	"net/http"

	"yamsoo/internal/service"
)

// SuggestionHandler handles suggestion HTTP endpoints
type SuggestionHandler struct {
	suggestionService *service.SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

// List returns the user's pending suggestions
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	suggestions, err := h.suggestionService.ListSuggestions(user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, suggestions)
}

// Accept turns a suggestion into a relationship request
func (h *SuggestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	suggestionID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid suggestion id")
		return
	}

	req, err := h.suggestionService.AcceptSuggestion(r.Context(), user.ID, suggestionID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, req)
}

// Reject dismisses a suggestion
func (h *SuggestionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	suggestionID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid suggestion id")
		return
	}

	if err := h.suggestionService.RejectSuggestion(user.ID, suggestionID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// Generate runs the suggestion generator. Admin only; the suggest CLI
// covers scheduled runs.
func (h *SuggestionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	created, err := h.suggestionService.GenerateSiblingSuggestions()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]int{"created": created})
}
