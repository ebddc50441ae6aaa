package submit_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// SubmitHandler обрабатывает кнопку повторной отправки ответов
type SubmitHandler struct {
	userService    *usersService.UserService
	attemptService *attemptsService.AttemptService
	messageService *messageService.MessageService
}

// NewSubmitHandler возвращает структуру обработчика
func NewSubmitHandler(
	userService *usersService.UserService,
	attemptService *attemptsService.AttemptService,
	messageService *messageService.MessageService,
) *SubmitHandler {
	return &SubmitHandler{
		userService:    userService,
		attemptService: attemptService,
		messageService: messageService,
	}
}

// Handle повторяет отправку. Пока предыдущая отправка не завершилась,
// пользователь получает уведомление, второй запрос в API не уходит.
func (h *SubmitHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	token, err := h.userService.Token(ctx, c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	out, err := h.attemptService.Submit(ctx, c.Sender().ID, token)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return reply.Outcome(ctx, c, h.messageService, out)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *SubmitHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
