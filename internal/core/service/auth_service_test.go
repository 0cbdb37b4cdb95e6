package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/infrastructure/memory"
)

func newAuthFixture(t *testing.T) (*memory.Store, *AuthService) {
	t.Helper()
	store := memory.NewStore()
	return store, NewAuthService(store.Users(), store.Sessions(), zerolog.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	token, user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsVip || user.IsAdmin {
		t.Fatalf("new users must not hold entitlements: %+v", user)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "", "a@example.com", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty username, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "not-an-email", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad email, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "b@example.com", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for empty password, got %v", err)
	}
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	_, svc := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "other@example.com", "pass"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected username taken, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "robert", "bob@example.com", "pass"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	store, svc := newAuthFixture(t)

	if _, _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user == nil || user.Username != "carol" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}

	userID, err := store.Sessions().Resolve(context.Background(), token)
	if err != nil || userID != user.ID {
		t.Fatalf("session does not resolve to user: id=%d err=%v", userID, err)
	}

	if _, _, err := svc.Login(context.Background(), "carol", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	store, svc := newAuthFixture(t)

	token, _, err := svc.Register(context.Background(), "dave", "dave@example.com", "pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := store.Sessions().Resolve(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected destroyed session, got %v", err)
	}

	// Logging out an unknown token is a no-op.
	if err := svc.Logout(context.Background(), "missing"); err != nil {
		t.Fatalf("logout of unknown token: %v", err)
	}
}
