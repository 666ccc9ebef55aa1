package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"yamsoo/internal/service"
	"yamsoo/internal/validation"
)

func TestRespondWithErrorWritesJSONBody(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondWithError(recorder, http.StatusTeapot, "teapot")

	if recorder.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", recorder.Code)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "teapot" {
		t.Errorf("error field = %q, want teapot", body["error"])
	}
}

func TestRespondWithServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "self request", err: service.ErrSelfRequest, status: http.StatusBadRequest},
		{name: "unknown kind", err: service.ErrUnknownRelationKind, status: http.StatusBadRequest},
		{name: "validation error", err: validation.ValidationError{Field: "email", Message: "required"}, status: http.StatusBadRequest},
		{name: "bad credentials", err: service.ErrInvalidCredentials, status: http.StatusUnauthorized},
		{name: "not authorized", err: service.ErrNotAuthorized, status: http.StatusForbidden},
		{name: "user missing", err: service.ErrUserNotFound, status: http.StatusNotFound},
		{name: "request missing", err: service.ErrRequestNotFound, status: http.StatusNotFound},
		{name: "already related", err: service.ErrAlreadyRelated, status: http.StatusConflict},
		{name: "duplicate request", err: service.ErrDuplicateRequest, status: http.StatusConflict},
		{name: "not pending", err: service.ErrRequestNotPending, status: http.StatusConflict},
		{name: "email taken", err: service.ErrEmailTaken, status: http.StatusConflict},
		{name: "wrapped sentinel", err: errors.Join(errors.New("context"), service.ErrNotAuthorized), status: http.StatusForbidden},
		{name: "unknown error", err: errors.New("database exploded"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respondWithServiceError(recorder, tt.err)
			if recorder.Code != tt.status {
				t.Errorf("status = %d, want %d", recorder.Code, tt.status)
			}
		})
	}
}

func TestUnknownErrorDoesNotLeakDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	respondWithServiceError(recorder, errors.New("pq: connection refused at 10.0.0.5"))

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Errorf("internal details leaked to client: %q", body["error"])
	}
}
