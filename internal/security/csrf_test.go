package security

import "testing"

func TestCSRFGenerator(t *testing.T) {
	g := NewCSRFGenerator("test-secret")

	token, err := g.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	tests := []struct {
		name      string
		sessionID string
		token     string
		want      bool
	}{
		{name: "valid token", sessionID: "session-1", token: token, want: true},
		{name: "wrong session", sessionID: "session-2", token: token, want: false},
		{name: "tampered token", sessionID: "session-1", token: token + "0", want: false},
		{name: "empty token", sessionID: "session-1", token: "", want: false},
		{name: "empty session", sessionID: "", token: token, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ValidateToken(tt.sessionID, tt.token); got != tt.want {
				t.Errorf("ValidateToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCSRFGeneratorEmptySession(t *testing.T) {
	g := NewCSRFGenerator("test-secret")
	if _, err := g.GenerateToken(""); err == nil {
		t.Error("GenerateToken(\"\") should return an error")
	}
}

func TestCSRFGeneratorDifferentSecrets(t *testing.T) {
	g1 := NewCSRFGenerator("secret-1")
	g2 := NewCSRFGenerator("secret-2")

	token, err := g1.GenerateToken("session-1")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if g2.ValidateToken("session-1", token) {
		t.Error("token from one secret validated under another")
	}
}
