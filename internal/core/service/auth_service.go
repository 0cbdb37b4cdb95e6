package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/monsterwith/monstermedia/internal/core/domain"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// AuthService implements registration, login, and logout over server-side
// sessions. Tokens are opaque; all role flags live in the user directory.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return "", nil, domain.NewValidationError("username", "is required")
	}
	if password == "" {
		return "", nil, domain.NewValidationError("password", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, domain.NewValidationError("email", "must be a valid email")
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

func (s *AuthService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
