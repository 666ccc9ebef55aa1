package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"yamsoo/internal/service"
	"yamsoo/internal/validation"
)

// respondWithJSON writes a JSON response with the given status
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// respondWithError writes a JSON error body
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

// respondWithServiceError maps service errors onto HTTP statuses.
// Unmapped errors are logged and reported as a generic 500 so
// internal details never leak to clients.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var validationErr validation.ValidationError
	if errors.As(err, &validationErr) {
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrSelfRequest),
		errors.Is(err, service.ErrUnknownRelationKind):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotAuthorized):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRequestNotFound),
		errors.Is(err, service.ErrSuggestionNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyRelated),
		errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrRequestNotPending),
		errors.Is(err, service.ErrSuggestionNotPending):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("Internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
