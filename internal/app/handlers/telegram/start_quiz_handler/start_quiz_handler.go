package start_quiz_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// StartQuizHandler обрабатывает нажатие на квиз в списке: начинает попытку
type StartQuizHandler struct {
	userService    *usersService.UserService
	attemptService *attemptsService.AttemptService
	messageService *messageService.MessageService
}

// NewStartQuizHandler возвращает структуру обработчика
func NewStartQuizHandler(
	userService *usersService.UserService,
	attemptService *attemptsService.AttemptService,
	messageService *messageService.MessageService,
) *StartQuizHandler {
	return &StartQuizHandler{
		userService:    userService,
		attemptService: attemptService,
		messageService: messageService,
	}
}

// Handle загружает вопросы и показывает первый
func (h *StartQuizHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	quizID, err := view.ParseInt(c.Callback().Data)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	token, err := h.userService.Token(ctx, c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	attempt, err := h.attemptService.Start(ctx, c.Sender().ID, token, quizID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return reply.Question(ctx, c, h.messageService, attempt, false)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartQuizHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
