package services

import (
	"testing"
	"time"

	"beautytime/internal/common"

	"github.com/rs/zerolog"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	auth := NewAuthService("super-secret", time.Hour, zerolog.Nop())

	tok, err := auth.GenerateToken("admin-123")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := auth.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.AdminID != "admin-123" {
		t.Fatalf("admin id mismatch: got %q want %q", claims.AdminID, "admin-123")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	auth := NewAuthService("secret", -1*time.Second, zerolog.Nop())

	tok, err := auth.GenerateToken("a1")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := auth.ValidateToken(tok); err != common.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewAuthService("right-secret", time.Hour, zerolog.Nop())
	verifier := NewAuthService("wrong-secret", time.Hour, zerolog.Nop())

	tok, err := issuer.GenerateToken("a2")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := verifier.ValidateToken(tok); err != common.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Parallel()

	auth := NewAuthService("secret", time.Hour, zerolog.Nop())

	if _, err := auth.ValidateToken("not.a.token"); err != common.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}
