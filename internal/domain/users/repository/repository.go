package repository

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// CredentialStore хранит токены API, привязанные к пользователю Telegram.
// Get возвращает nil без ошибки, если пользователь не входил.
type CredentialStore interface {
	Get(ctx context.Context, telegramID int64) (*model.Credentials, error)
	Set(ctx context.Context, telegramID int64, creds model.Credentials) error
	Delete(ctx context.Context, telegramID int64) error
}
