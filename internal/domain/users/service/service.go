package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/users/repository"
	"github.com/IT-Nick/quizbot/internal/infra/authtoken"
)

var (
	ErrNotLoggedIn  = errors.New("user is not logged in")
	ErrTokenExpired = errors.New("access token expired")
	ErrMissingField = errors.New("required field is empty")
	ErrInvalidEmail = errors.New("invalid email")
)

// Authenticator - часть API, отвечающая за вход и регистрацию
type Authenticator interface {
	Login(ctx context.Context, username, password string) (model.Credentials, error)
	Register(ctx context.Context, username, email, password string) (model.Credentials, error)
}

// UserService связывает пользователя Telegram с токенами API
type UserService struct {
	store repository.CredentialStore
	auth  Authenticator
	now   func() time.Time
}

// NewUserService создает новый экземпляр UserService
func NewUserService(store repository.CredentialStore, auth Authenticator) *UserService {
	return &UserService{store: store, auth: auth, now: time.Now}
}

// Login входит в API и сохраняет токены за пользователем Telegram
func (s *UserService) Login(ctx context.Context, telegramID int64, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingField
	}

	creds, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}
	return s.save(ctx, telegramID, creds)
}

// Register регистрирует пользователя в API и сохраняет выданные токены
func (s *UserService) Register(ctx context.Context, telegramID int64, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return ErrMissingField
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w %q", ErrInvalidEmail, email)
	}

	creds, err := s.auth.Register(ctx, username, email, password)
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	return s.save(ctx, telegramID, creds)
}

func (s *UserService) save(ctx context.Context, telegramID int64, creds model.Credentials) error {
	if info, err := authtoken.Inspect(creds.Access); err == nil {
		creds.ExpiresAt = info.ExpiresAt
	} else {
		log.Printf("access token for user %d is not a JWT, expiry unknown: %v", telegramID, err)
	}

	if err := s.store.Set(ctx, telegramID, creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// Token возвращает действующий access-токен пользователя
func (s *UserService) Token(ctx context.Context, telegramID int64) (string, error) {
	creds, err := s.store.Get(ctx, telegramID)
	if err != nil {
		return "", fmt.Errorf("failed to get credentials: %w", err)
	}
	if creds == nil || creds.Access == "" {
		return "", ErrNotLoggedIn
	}

	if (authtoken.Info{ExpiresAt: creds.ExpiresAt}).Expired(s.now()) {
		if err := s.store.Delete(ctx, telegramID); err != nil {
			log.Printf("failed to drop expired credentials for user %d: %v", telegramID, err)
		}
		return "", ErrTokenExpired
	}
	return creds.Access, nil
}

// Username возвращает имя, под которым пользователь вошел
func (s *UserService) Username(ctx context.Context, telegramID int64) (string, error) {
	creds, err := s.store.Get(ctx, telegramID)
	if err != nil {
		return "", fmt.Errorf("failed to get credentials: %w", err)
	}
	if creds == nil {
		return "", ErrNotLoggedIn
	}
	return creds.Username, nil
}

// Logout забывает токены пользователя
func (s *UserService) Logout(ctx context.Context, telegramID int64) error {
	if err := s.store.Delete(ctx, telegramID); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
