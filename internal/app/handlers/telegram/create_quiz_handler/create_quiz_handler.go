package create_quiz_handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/reply"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"github.com/IT-Nick/quizbot/internal/infra/api"
	"gopkg.in/telebot.v4"
)

// CreateQuizHandler структура для обработки команды /create <тема> <кол-во> <сложность>
type CreateQuizHandler struct {
	userService    *usersService.UserService
	quizService    *quizzesService.QuizService
	messageService *messageService.MessageService
}

// NewCreateQuizHandler возвращает структуру обработчика
func NewCreateQuizHandler(
	userService *usersService.UserService,
	quizService *quizzesService.QuizService,
	messageService *messageService.MessageService,
) *CreateQuizHandler {
	return &CreateQuizHandler{
		userService:    userService,
		quizService:    quizService,
		messageService: messageService,
	}
}

// ParseArgs разбирает аргументы команды. Тема может состоять из нескольких слов,
// последние два аргумента - количество вопросов и сложность.
func ParseArgs(args []string) (topic string, numQuestions int, difficulty string, ok bool) {
	if len(args) < 3 {
		return "", 0, "", false
	}
	n, err := strconv.Atoi(args[len(args)-2])
	if err != nil {
		return "", 0, "", false
	}
	return strings.Join(args[:len(args)-2], " "), n, args[len(args)-1], true
}

// Handle просит API сгенерировать квиз и предлагает сразу его пройти
func (h *CreateQuizHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	topic, n, difficulty, ok := ParseArgs(c.Args())
	if !ok {
		return c.Send(h.messageService.Text(ctx, model.CreateUsageKey))
	}

	token, err := h.userService.Token(ctx, c.Sender().ID)
	if err != nil {
		return reply.Error(ctx, c, h.messageService, err)
	}

	quiz, err := h.quizService.Create(ctx, token, topic, n, difficulty)
	if err != nil {
		switch {
		case errors.Is(err, quizzesService.ErrEmptyTopic),
			errors.Is(err, quizzesService.ErrInvalidQuestionCount),
			errors.Is(err, quizzesService.ErrInvalidDifficulty):
			return c.Send(h.messageService.Text(ctx, model.CreateUsageKey))
		}
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			return c.Send(ve.Message)
		}
		return reply.Error(ctx, c, h.messageService, err)
	}

	return c.Send(
		h.messageService.Text(ctx, model.QuizCreatedKey, quiz.Topic, quiz.NumQuestions),
		view.QuizList([]model.Quiz{quiz}),
	)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *CreateQuizHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
