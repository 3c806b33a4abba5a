package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "issuer-for-test")

	manager, err := NewJWTManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewJWTManagerFromEnvUsesDefaultIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "medblog" {
		t.Fatalf("expected default issuer medblog, got %q", manager.issuer)
	}
	if manager.ttl != time.Hour {
		t.Fatalf("expected default ttl 1h, got %s", manager.ttl)
	}
}

func TestJWTManagerSignAndParseRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "test-issuer")

	manager, err := NewJWTManagerFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.Sign("64f1c0ffee0000000000aaaa", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	userID, email, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if userID != "64f1c0ffee0000000000aaaa" {
		t.Fatalf("expected userId 64f1c0ffee0000000000aaaa, got %q", userID)
	}
	if email != "user@example.com" {
		t.Fatalf("expected email user@example.com, got %q", email)
	}
}

func TestJWTManagerParseRejectsInvalidSignature(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    time.Hour,
	}

	forgedClaims := jwt.MapClaims{
		"userId": "64f1c0ffee0000000000aaaa",
		"email":  "user@example.com",
		"iss":    "issuer",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims)
	tokenString, err := forgedToken.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("unexpected error signing forged token: %v", err)
	}

	if _, _, err := manager.Parse(tokenString); err == nil {
		t.Fatalf("expected parse error for forged signature")
	}
}

func TestJWTManagerParseRejectsExpiredToken(t *testing.T) {
	manager := &JWTManager{
		secret: []byte("service-secret"),
		issuer: "issuer",
		ttl:    -time.Minute,
	}

	token, err := manager.Sign("64f1c0ffee0000000000aaaa", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	_, _, err = manager.Parse(token)
	if err == nil {
		t.Fatalf("expected parse error for expired token")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got: %v", err)
	}
}
