package utils

import (
	"testing"
	"time"
)

func TestHashPassword(t *testing.T) {
	password := "secret-pass"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash == password {
		t.Errorf("Expected hash to differ from plaintext")
	}

	if !CheckPassword(password, hash) {
		t.Errorf("Expected password check to pass")
	}

	if CheckPassword("wrongpassword", hash) {
		t.Errorf("Expected password check to fail")
	}
}

func TestJWT(t *testing.T) {
	secret := "supersecret"
	handle := "coach_mike"
	role := "coach"

	token, err := GenerateToken(handle, role, secret, time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if claims.Handle != handle {
		t.Errorf("Expected Handle %s, got %s", handle, claims.Handle)
	}

	if claims.Role != role {
		t.Errorf("Expected Role %s, got %s", role, claims.Role)
	}

	_, err = ValidateToken(token, "wrongsecret")
	if err == nil {
		t.Errorf("Expected error with wrong secret")
	}

	_, err = ValidateToken("not-a-token", secret)
	if err == nil {
		t.Errorf("Expected error for malformed token")
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	secret := "supersecret"

	token, err := GenerateToken("client_ana", "client", secret, -time.Minute)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The signature is valid; only the expiry has passed.
	if _, err := ValidateToken(token, secret); err == nil {
		t.Errorf("Expected expired token to be rejected")
	}
}
