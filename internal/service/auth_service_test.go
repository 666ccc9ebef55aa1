package service

import (
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.authSvc.Register("amina@example.com", "password123", "Amina", "female")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "password123" {
		t.Error("password stored in plain text")
	}

	gender, err := env.profiles.GetGender(user.ID)
	if err != nil {
		t.Fatalf("GetGender failed: %v", err)
	}
	if string(gender) != "female" {
		t.Errorf("profile gender = %s, want female", gender)
	}

	if _, err := env.authSvc.Register("amina@example.com", "password123", "Amina", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}

	session, loggedIn, err := env.authSvc.Login("amina@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("logged in user = %d, want %d", loggedIn.ID, user.ID)
	}

	validated, err := env.authSvc.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if validated.ID != user.ID {
		t.Errorf("validated user = %d, want %d", validated.ID, user.ID)
	}

	if _, _, err := env.authSvc.Login("amina@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := env.authSvc.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}

	if err := env.authSvc.Logout(session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := env.authSvc.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("validate after logout: got %v, want ErrSessionNotFound", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		email    string
		password string
		userName string
		gender   string
	}{
		{name: "bad email", email: "not-an-email", password: "password123", userName: "Amina", gender: ""},
		{name: "short password", email: "a@example.com", password: "short", userName: "Amina", gender: ""},
		{name: "short name", email: "a@example.com", password: "password123", userName: "A", gender: ""},
		{name: "bad gender", email: "a@example.com", password: "password123", userName: "Amina", gender: "robot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := env.authSvc.Register(tt.email, tt.password, tt.userName, tt.gender); err == nil {
				t.Error("Register should have failed")
			}
		})
	}
}

func TestOAuthLoginCreatesAndLinksUsers(t *testing.T) {
	env := newTestEnv(t)

	// First OAuth login creates the account
	session, user, err := env.authSvc.OAuthLogin("google", "sub-123", "omar@example.com", "Omar")
	if err != nil {
		t.Fatalf("OAuthLogin failed: %v", err)
	}
	if session == nil || user == nil {
		t.Fatal("expected session and user")
	}

	// Second login with the same subject reuses the account
	_, again, err := env.authSvc.OAuthLogin("google", "sub-123", "omar@example.com", "Omar")
	if err != nil {
		t.Fatalf("repeat OAuthLogin failed: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("repeat login user = %d, want %d", again.ID, user.ID)
	}

	// A password account with the same email gets linked, not duplicated
	registered, err := env.authSvc.Register("sara@example.com", "password123", "Sara", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, linked, err := env.authSvc.OAuthLogin("google", "sub-456", "sara@example.com", "Sara")
	if err != nil {
		t.Fatalf("OAuthLogin for existing email failed: %v", err)
	}
	if linked.ID != registered.ID {
		t.Errorf("linked user = %d, want %d", linked.ID, registered.ID)
	}

	// An account already bound to another provider is refused
	if _, _, err := env.authSvc.OAuthLogin("facebook", "fb-789", "sara@example.com", "Sara"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("cross-provider login: got %v, want ErrEmailTaken", err)
	}
}
