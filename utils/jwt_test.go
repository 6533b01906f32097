package utils

import (
	"testing"
	"time"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("u1", "ana@example.com", "client", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	userID, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken returned error: %v", err)
	}
	if userID != "u1" {
		t.Errorf("userID = %q, want %q", userID, "u1")
	}
	if role != "client" {
		t.Errorf("role = %q, want %q", role, "client")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "ana@example.com", "client", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("u1", "ana@example.com", "client", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, _, err := ExtractClaimsFromToken(token + "x"); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestHashTokenIsStable(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Error("same input hashed differently")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different inputs collided")
	}
	if got := len(HashToken("abc")); got != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", got)
	}
}
