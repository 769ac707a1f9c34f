package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", 24*time.Hour)

	token, err := manager.Issue(42, "maria", "primary")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}

	if claims.UserID != "42" {
		t.Fatalf("expected user_id %q, got %q", "42", claims.UserID)
	}
	if claims.Username != "maria" {
		t.Fatalf("expected username maria, got %q", claims.Username)
	}
	if claims.UserType != "primary" {
		t.Fatalf("expected user_type primary, got %q", claims.UserType)
	}

	subjectID, err := claims.SubjectID()
	if err != nil {
		t.Fatalf("subject id: %v", err)
	}
	if subjectID != 42 {
		t.Fatalf("expected subject id 42, got %d", subjectID)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", -time.Hour)

	token, err := manager.Issue(1, "maria", "primary")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := manager.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("secret-one", 24*time.Hour)
	verifier := NewTokenManager("secret-two", 24*time.Hour)

	token, err := issuer.Issue(1, "maria", "primary")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	manager := NewTokenManager("test-secret", 24*time.Hour)

	token, err := manager.Issue(1, "maria", "primary")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := manager.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}

	if _, err := manager.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3nha-forte")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if !CheckPassword(hash, "s3nha-forte") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "outra-senha") {
		t.Fatal("expected wrong password to fail")
	}
}
