package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/IT-Nick/quizbot/internal/domain/messages/repository"
	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Repository источник переопределенных текстов
type Repository interface {
	GetMessageByKey(ctx context.Context, messageKey string) (string, error)
}

// MessageService содержит логику для работы с сообщениями
type MessageService struct {
	messageRepo Repository
}

// NewMessageService создает новый экземпляр MessageService.
// Без репозитория используются встроенные тексты.
func NewMessageService(messageRepo Repository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// GetMessageByKey возвращает сообщение по ключу: из базы, иначе встроенное
func (s *MessageService) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	if s.messageRepo != nil {
		message, err := s.messageRepo.GetMessageByKey(ctx, messageKey)
		if err == nil {
			return message, nil
		}
		if !errors.Is(err, repository.ErrMessageNotFound) {
			log.Printf("Failed to get message %s from db, using default: %v", messageKey, err)
		}
	}

	message, ok := defaultMessages[messageKey]
	if !ok {
		return "", fmt.Errorf("message with key %s not found", messageKey)
	}
	return message, nil
}

// Text возвращает сообщение по ключу, подставляя args. Неизвестный ключ
// возвращается как есть.
func (s *MessageService) Text(ctx context.Context, messageKey string, args ...any) string {
	message, err := s.GetMessageByKey(ctx, messageKey)
	if err != nil {
		log.Printf("%v", err)
		return messageKey
	}
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

// GetButtons возвращает мапу с текстами кнопок навигации
func (s *MessageService) GetButtons(ctx context.Context) (map[string]string, error) {
	buttons := make(map[string]string)

	for _, key := range []string{model.PrevButtonTextKey, model.NextButtonTextKey, model.SubmitButtonTextKey, model.ResultsButtonTextKey} {
		text, err := s.GetMessageByKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to get button text for key %s: %w", key, err)
		}
		buttons[key] = text
	}

	return buttons, nil
}
