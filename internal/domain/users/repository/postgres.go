package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore хранит учетные данные в таблице credentials
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore создает новый экземпляр PostgresStore
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get возвращает учетные данные пользователя или nil
func (r *PostgresStore) Get(ctx context.Context, telegramID int64) (*model.Credentials, error) {
	var creds model.Credentials
	var expiresAt *time.Time
	err := r.db.QueryRow(ctx, `
                SELECT username, access_token, refresh_token, expires_at
                FROM credentials
                WHERE telegram_id = $1
        `, telegramID).Scan(&creds.Username, &creds.Access, &creds.Refresh, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	if expiresAt != nil {
		creds.ExpiresAt = *expiresAt
	}
	return &creds, nil
}

// Set сохраняет или заменяет учетные данные пользователя
func (r *PostgresStore) Set(ctx context.Context, telegramID int64, creds model.Credentials) error {
	var expiresAt *time.Time
	if !creds.ExpiresAt.IsZero() {
		expiresAt = &creds.ExpiresAt
	}
	_, err := r.db.Exec(ctx, `
                INSERT INTO credentials (telegram_id, username, access_token, refresh_token, expires_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
                ON CONFLICT (telegram_id) DO UPDATE
                SET username = EXCLUDED.username,
                    access_token = EXCLUDED.access_token,
                    refresh_token = EXCLUDED.refresh_token,
                    expires_at = EXCLUDED.expires_at,
                    updated_at = CURRENT_TIMESTAMP
        `, telegramID, creds.Username, creds.Access, creds.Refresh, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// Delete удаляет учетные данные пользователя
func (r *PostgresStore) Delete(ctx context.Context, telegramID int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM credentials WHERE telegram_id = $1", telegramID); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

// CredentialsSchema создает таблицу credentials, если ее нет
const CredentialsSchema = `
CREATE TABLE IF NOT EXISTS credentials (
    telegram_id   BIGINT PRIMARY KEY,
    username      TEXT        NOT NULL,
    access_token  TEXT        NOT NULL,
    refresh_token TEXT        NOT NULL DEFAULT '',
    expires_at    TIMESTAMPTZ,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
