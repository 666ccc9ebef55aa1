package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"yamsoo/internal/relation"
	"yamsoo/internal/service"
)

// RelationshipHandler handles relationship and request HTTP endpoints
type RelationshipHandler struct {
	relationshipService *service.RelationshipService
	defaultLocale       string
}

// NewRelationshipHandler creates a new relationship handler
func NewRelationshipHandler(relationshipService *service.RelationshipService, defaultLocale string) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipService: relationshipService,
		defaultLocale:       defaultLocale,
	}
}

type createRequestBody struct {
	TargetUserID int64  `json:"target_user_id"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
}

// CreateRequest sends a relationship request to another user
func (h *RelationshipHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.relationshipService.CreateRequest(r.Context(), user.ID, body.TargetUserID, relation.Kind(body.Kind), body.Message)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, req)
}

// AcceptRequest accepts a pending request addressed to the user
func (h *RelationshipHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	requestID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.relationshipService.AcceptRequest(user.ID, requestID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "accepted"})
}

// RejectRequest declines a pending request addressed to the user
func (h *RelationshipHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	requestID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.relationshipService.RejectRequest(user.ID, requestID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

// CancelRequest withdraws a pending request the user sent
func (h *RelationshipHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	requestID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.relationshipService.CancelRequest(user.ID, requestID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// ListReceivedRequests returns pending requests addressed to the user
func (h *RelationshipHandler) ListReceivedRequests(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	requests, err := h.relationshipService.ListReceivedRequests(user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

// ListSentRequests returns pending requests the user has sent
func (h *RelationshipHandler) ListSentRequests(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	requests, err := h.relationshipService.ListSentRequests(user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

// ListRelationships returns the user's relationships
func (h *RelationshipHandler) ListRelationships(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	relationships, err := h.relationshipService.ListRelationships(user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, relationships)
}

// FamilyTree returns the user's relatives grouped by category
func (h *RelationshipHandler) FamilyTree(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.defaultLocale
	}

	tree, err := h.relationshipService.FamilyTree(user.ID, locale)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tree)
}

// SearchUsers finds users to send relationship requests to
func (h *RelationshipHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	q := r.URL.Query().Get("q")

	users, err := h.relationshipService.SearchUsers(q, user.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	results := make([]userResponse, 0, len(users))
	for i := range users {
		results = append(results, toUserResponse(&users[i]))
	}
	respondWithJSON(w, http.StatusOK, results)
}

// pathID parses a numeric path parameter
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}
