package progress_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"gopkg.in/telebot.v4"
)

// ProgressHandler структура для обработки команды /progress
type ProgressHandler struct {
	attemptService *attemptsService.AttemptService
	messageService *messageService.MessageService
}

// NewProgressHandler возвращает структуру обработчика
func NewProgressHandler(
	attemptService *attemptsService.AttemptService,
	messageService *messageService.MessageService,
) *ProgressHandler {
	return &ProgressHandler{
		attemptService: attemptService,
		messageService: messageService,
	}
}

// Handle заново показывает текущий вопрос активной попытки. Если отправка
// не удалась, предлагает повторить ее.
func (h *ProgressHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	attempt, err := h.attemptService.Current(c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	switch attempt.Session.Status() {
	case session.StatusSubmitFailed:
		buttons, err := h.messageService.GetButtons(ctx)
		if err != nil {
			return reply.Error(ctx, c, h.messageService, err)
		}
		return c.Send(h.messageService.Text(ctx, model.SubmitFailedKey), view.RetryMarkup(buttons))
	case session.StatusSubmitting:
		return c.Send(h.messageService.Text(ctx, model.SubmitInFlightKey))
	}

	return reply.Question(ctx, c, h.messageService, attempt, false)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ProgressHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
