package answer_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// AnswerHandler обрабатывает выбор варианта ответа "<id вопроса>|<вариант>"
type AnswerHandler struct {
	userService    *usersService.UserService
	attemptService *attemptsService.AttemptService
	messageService *messageService.MessageService
}

// NewAnswerHandler возвращает структуру обработчика
func NewAnswerHandler(
	userService *usersService.UserService,
	attemptService *attemptsService.AttemptService,
	messageService *messageService.MessageService,
) *AnswerHandler {
	return &AnswerHandler{
		userService:    userService,
		attemptService: attemptService,
		messageService: messageService,
	}
}

// Handle записывает ответ и показывает следующий вопрос. Ответ на последний
// вопрос отправляет попытку.
func (h *AnswerHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	questionID, option, err := view.ParseAnswer(c.Callback().Data)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	token, err := h.userService.Token(ctx, c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	out, err := h.attemptService.Answer(ctx, c.Sender().ID, token, questionID, option)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return reply.Outcome(ctx, c, h.messageService, out)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *AnswerHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
