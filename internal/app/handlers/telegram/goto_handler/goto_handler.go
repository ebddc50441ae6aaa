package goto_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"gopkg.in/telebot.v4"
)

// GoToHandler обрабатывает кнопки навигации "Назад"/"Вперед"
type GoToHandler struct {
	attemptService *attemptsService.AttemptService
	messageService *messageService.MessageService
}

// NewGoToHandler возвращает структуру обработчика
func NewGoToHandler(
	attemptService *attemptsService.AttemptService,
	messageService *messageService.MessageService,
) *GoToHandler {
	return &GoToHandler{
		attemptService: attemptService,
		messageService: messageService,
	}
}

// Handle переходит к вопросу по индексу из кнопки
func (h *GoToHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	index, err := view.ParseInt(c.Callback().Data)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	out, err := h.attemptService.GoTo(c.Sender().ID, index)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	if err := c.Respond(); err != nil {
		return err
	}
	return reply.Question(ctx, c, h.messageService, out.Attempt, true)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *GoToHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
