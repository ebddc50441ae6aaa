package quizzes_handler

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

// QuizzesHandler структура для обработки команды /quizzes
type QuizzesHandler struct {
	userService    *usersService.UserService
	quizService    *quizzesService.QuizService
	messageService *messageService.MessageService
}

// NewQuizzesHandler возвращает структуру обработчика
func NewQuizzesHandler(
	userService *usersService.UserService,
	quizService *quizzesService.QuizService,
	messageService *messageService.MessageService,
) *QuizzesHandler {
	return &QuizzesHandler{
		userService:    userService,
		quizService:    quizService,
		messageService: messageService,
	}
}

// Handle показывает квизы пользователя кнопками для старта попытки
func (h *QuizzesHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	token, err := h.userService.Token(ctx, c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	quizzes, err := h.quizService.List(ctx, token)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}
	if len(quizzes) == 0 {
		return c.Send(h.messageService.Text(ctx, model.NoQuizzesKey))
	}

	return c.Send(h.messageService.Text(ctx, model.QuizListKey), view.QuizList(quizzes))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *QuizzesHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
