package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMessageNotFound в таблице нет текста для ключа
var ErrMessageNotFound = errors.New("message not found")

// MessagesSchema таблица переопределяемых текстов бота
const MessagesSchema = `
CREATE TABLE IF NOT EXISTS messages (
	message_key  TEXT PRIMARY KEY,
	message_text TEXT NOT NULL
)`

// MessageRepository реализация интерфейса для работы с сообщениями
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository создает новый экземпляр MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *MessageRepository) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	var messageText string
	err := r.db.QueryRow(ctx, "SELECT message_text FROM messages WHERE message_key=$1", messageKey).
		Scan(&messageText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrMessageNotFound, messageKey)
		}
		return "", fmt.Errorf("failed to get message: %w", err)
	}
	return messageText, nil
}

// SetMessage сохраняет текст сообщения, заменяя существующий
func (r *MessageRepository) SetMessage(ctx context.Context, messageKey, messageText string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (message_key, message_text) VALUES ($1, $2)
		ON CONFLICT (message_key) DO UPDATE SET message_text = EXCLUDED.message_text`,
		messageKey, messageText)
	if err != nil {
		return fmt.Errorf("failed to set message %s: %w", messageKey, err)
	}
	return nil
}
