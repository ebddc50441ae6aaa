package results_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"gopkg.in/telebot.v4"
)

// ResultsHandler показывает разбор результата: команда /results <id квиза> и кнопка после отправки
type ResultsHandler struct {
	userService    *usersService.UserService
	quizService    *quizzesService.QuizService
	messageService *messageService.MessageService
}

// NewResultsHandler возвращает структуру обработчика
func NewResultsHandler(
	userService *usersService.UserService,
	quizService *quizzesService.QuizService,
	messageService *messageService.MessageService,
) *ResultsHandler {
	return &ResultsHandler{
		userService:    userService,
		quizService:    quizService,
		messageService: messageService,
	}
}

// Handle загружает результат по квизу и отправляет разбор ответов
func (h *ResultsHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) != 1 {
		return c.Send(h.messageService.Text(ctx, model.ResultsUsageKey))
	}
	quizID, err := view.ParseInt(args[0])
	if err != nil {
		return c.Send(h.messageService.Text(ctx, model.ResultsUsageKey))
	}

	token, err := h.userService.Token(ctx, c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	review, err := h.quizService.ResultReview(ctx, token, quizID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			return err
		}
	}
	return c.Send(view.Review(review), telebot.ModeHTML)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ResultsHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
