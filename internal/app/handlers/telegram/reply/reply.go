// Package reply общие ответы обработчиков: ошибки, вопрос попытки, итог отправки
package reply

import (
	"context"
	"errors"
	"log"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"github.com/IT-Nick/quizbot/internal/infra/api"
	"gopkg.in/telebot.v4"
)

// ErrorKey ключ сообщения для ошибки сервиса
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, usersService.ErrNotLoggedIn):
		return model.NotLoggedInKey
	case errors.Is(err, usersService.ErrTokenExpired), api.IsUnauthorized(err):
		return model.TokenExpiredKey
	case errors.Is(err, usersService.ErrMissingField):
		return model.LoginUsageKey
	case errors.Is(err, attemptsService.ErrNoActiveAttempt):
		return model.NoActiveAttemptKey
	case errors.Is(err, session.ErrEmptyQuiz):
		return model.QuizUnavailableKey
	case errors.Is(err, session.ErrInvalidQuestion), errors.Is(err, session.ErrIndexOutOfRange),
		errors.Is(err, session.ErrInvalidOption), errors.Is(err, view.ErrBadCallback):
		return model.WrongQuestionKey
	case errors.Is(err, session.ErrSubmissionInFlight):
		return model.SubmitInFlightKey
	case errors.Is(err, session.ErrSubmitFailed):
		return model.SubmitRetryRequiredKey
	case errors.Is(err, session.ErrSessionClosed):
		return model.SessionClosedKey
	case errors.Is(err, quizzesService.ErrResultNotFound):
		return model.ResultNotFoundKey
	case api.IsNotFound(err):
		return model.QuizNotFoundKey
	}
	return model.ServiceUnavailableKey
}

// Error сообщает пользователю об ошибке: всплывающим ответом на кнопку или сообщением
func Error(ctx context.Context, c telebot.Context, messages *messageService.MessageService, err error) error {
	key := ErrorKey(err)
	if key == model.ServiceUnavailableKey {
		log.Printf("User %d: %v", c.Sender().ID, err)
	}
	text := messages.Text(ctx, key)

	if c.Callback() != nil {
		return c.Respond(&telebot.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// Question показывает текущий вопрос попытки. edit - заменить сообщение с кнопкой.
func Question(ctx context.Context, c telebot.Context, messages *messageService.MessageService, attempt *attemptsService.Attempt, edit bool) error {
	buttons, err := messages.GetButtons(ctx)
	if err != nil {
		return Error(ctx, c, messages, err)
	}

	text, markup := view.Question(attempt.Session.Snapshot(), buttons)
	if edit {
		return c.Edit(text, markup, telebot.ModeHTML)
	}
	return c.Send(text, markup, telebot.ModeHTML)
}

// Outcome показывает результат действия над попыткой: следующий вопрос,
// подтверждение отправки или предложение повторить ее
func Outcome(ctx context.Context, c telebot.Context, messages *messageService.MessageService, out attemptsService.Outcome) error {
	switch {
	case out.Submitted:
		buttons, err := messages.GetButtons(ctx)
		if err != nil {
			return Error(ctx, c, messages, err)
		}
		return c.Edit(messages.Text(ctx, model.SubmitSuccessKey), view.ResultsMarkup(out.Attempt.QuizID, buttons))
	case out.SubmitErr != nil:
		buttons, err := messages.GetButtons(ctx)
		if err != nil {
			return Error(ctx, c, messages, err)
		}
		text := messages.Text(ctx, model.SubmitFailedKey)
		if key := ErrorKey(out.SubmitErr); key == model.TokenExpiredKey {
			text += "\n" + messages.Text(ctx, key)
		}
		return c.Edit(text, view.RetryMarkup(buttons))
	}
	return Question(ctx, c, messages, out.Attempt, true)
}
