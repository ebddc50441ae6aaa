package start_handler

import (
	"context"
	"errors"
	"log"

	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// StartHandler структура для обработки команды /start
type StartHandler struct {
	userService    *usersService.UserService
	messageService *messageService.MessageService
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(userService *usersService.UserService, messageService *messageService.MessageService) *StartHandler {
	return &StartHandler{
		userService:    userService,
		messageService: messageService,
	}
}

// Handle отправляет приветствие со списком команд. Вошедшему пользователю
// напоминает, под каким логином он работает.
func (h *StartHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	welcomeMessage := h.messageService.Text(ctx, model.WelcomeMessageKey)

	username, err := h.userService.Username(ctx, c.Sender().ID)
	switch {
	case err == nil:
		welcomeMessage += "\n\n" + h.messageService.Text(ctx, model.LoginSuccessKey, username)
	case !errors.Is(err, usersService.ErrNotLoggedIn):
		log.Printf("Failed to get username of user %d: %v", c.Sender().ID, err)
	}

	return c.Send(welcomeMessage)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
