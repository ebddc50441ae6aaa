package register_handler

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

// RegisterHandler структура для обработки команды /register <логин> <email> <пароль>
type RegisterHandler struct {
	userService    *usersService.UserService
	messageService *messageService.MessageService
}

// NewRegisterHandler возвращает структуру обработчика
func NewRegisterHandler(userService *usersService.UserService, messageService *messageService.MessageService) *RegisterHandler {
	return &RegisterHandler{
		userService:    userService,
		messageService: messageService,
	}
}

// Handle регистрирует пользователя в API и сразу выполняет вход
func (h *RegisterHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) != 3 {
		return c.Send(h.messageService.Text(ctx, model.RegisterUsageKey))
	}

	if err := c.Delete(); err != nil {
		log.Printf("Failed to delete register message of user %d: %v", c.Sender().ID, err)
	}

	username, email, password := args[0], args[1], args[2]
	err := h.userService.Register(ctx, c.Sender().ID, username, email, password)
	if err != nil {
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			return c.Send(ve.Message)
		}
		if errors.Is(err, usersService.ErrInvalidEmail) || errors.Is(err, usersService.ErrMissingField) {
			return c.Send(h.messageService.Text(ctx, model.RegisterUsageKey))
		}
		return reply.Error(ctx, c, h.messageService, err)
	}

	return c.Send(h.messageService.Text(ctx, model.RegisterSuccessKey, username))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *RegisterHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
