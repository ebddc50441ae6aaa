package logout_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// LogoutHandler структура для обработки команды /logout
type LogoutHandler struct {
	userService    *usersService.UserService
	attemptService *attemptsService.AttemptService
	messageService *messageService.MessageService
}

// NewLogoutHandler возвращает структуру обработчика
func NewLogoutHandler(
	userService *usersService.UserService,
	attemptService *attemptsService.AttemptService,
	messageService *messageService.MessageService,
) *LogoutHandler {
	return &LogoutHandler{
		userService:    userService,
		attemptService: attemptService,
		messageService: messageService,
	}
}

// Handle удаляет токены пользователя и его незавершенную попытку
func (h *LogoutHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	telegramID := c.Sender().ID

	if err := h.userService.Logout(ctx, telegramID); err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}
	h.attemptService.Discard(telegramID)

	return c.Send(h.messageService.Text(ctx, model.LogoutKey))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *LogoutHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
