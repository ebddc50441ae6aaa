package login_handler

import (
	"context"
	"errors"
	"log"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"github.com/IT-Nick/quizbot/internal/infra/api"
	"gopkg.in/telebot.v4"
)

// LoginHandler структура для обработки команды /login <логин> <пароль>
type LoginHandler struct {
	userService    *usersService.UserService
	messageService *messageService.MessageService
}

// NewLoginHandler возвращает структуру обработчика
func NewLoginHandler(userService *usersService.UserService, messageService *messageService.MessageService) *LoginHandler {
	return &LoginHandler{
		userService:    userService,
		messageService: messageService,
	}
}

// Handle входит в API и сохраняет токены пользователя
func (h *LoginHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) != 2 {
		return c.Send(h.messageService.Text(ctx, model.LoginUsageKey))
	}

	// Сообщение содержит пароль
	if err := c.Delete(); err != nil {
		log.Printf("Failed to delete login message of user %d: %v", c.Sender().ID, err)
	}

	username, password := args[0], args[1]
	if err := h.userService.Login(ctx, c.Sender().ID, username, password); err != nil {
		if api.IsUnauthorized(err) {
			return c.Send(h.messageService.Text(ctx, model.LoginFailedKey))
		}
		if errors.Is(err, usersService.ErrMissingField) {
			return c.Send(h.messageService.Text(ctx, model.LoginUsageKey))
		}
		return reply.Error(ctx, c, h.messageService, err)
	}

	return c.Send(h.messageService.Text(ctx, model.LoginSuccessKey, username))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *LoginHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
