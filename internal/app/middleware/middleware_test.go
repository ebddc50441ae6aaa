package middleware

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func newContext(t *testing.T, u telebot.Update) telebot.Context {
	t.Helper()
	bot, err := telebot.NewBot(telebot.Settings{Offline: true})
	require.NoError(t, err)
	return bot.NewContext(u)
}

func messageUpdate(text string) telebot.Update {
	return telebot.Update{
		ID: 1,
		Message: &telebot.Message{
			Text:   text,
			Sender: &telebot.User{ID: 42, FirstName: "Ann"},
			Chat:   &telebot.Chat{ID: 42},
		},
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	called := false
	h := Logger(log.New(&buf, "", 0))(func(c telebot.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(newContext(t, messageUpdate("/quizzes"))))
	require.True(t, called)
	require.Contains(t, buf.String(), `"text": "/quizzes"`)
}

func TestRecover(t *testing.T) {
	var got error
	h := Recover(func(err error, c telebot.Context) { got = err })(func(c telebot.Context) error {
		panic("boom")
	})

	err := h(newContext(t, messageUpdate("/start")))
	require.EqualError(t, err, "boom")
	require.EqualError(t, got, "boom")
}

func TestRecover_PassesErrors(t *testing.T) {
	want := errors.New("handler failed")
	h := Recover()(func(c telebot.Context) error { return want })
	require.ErrorIs(t, h(newContext(t, messageUpdate("/start"))), want)
}

type staticSource []model.Question

func (s staticSource) Questions(context.Context, string, int) ([]model.Question, error) {
	return s, nil
}

func TestDebugMessage(t *testing.T) {
	attempts := attemptsService.NewAttemptService(staticSource{{ID: 1}, {ID: 2}}, func(string, int) session.Sink {
		return session.SinkFunc(func(context.Context, model.Answers) error { return nil })
	})
	c := newContext(t, messageUpdate("/progress"))

	msg := debugMessage(c, attempts)
	require.Equal(t, "DEBUG: User: Ann (ID: 42), Attempt: none, Action: Message: /progress", msg)

	attempt, err := attempts.Start(context.Background(), 42, "tok", 3)
	require.NoError(t, err)

	msg = debugMessage(c, attempts)
	require.Contains(t, msg, attempt.ID.String())
	require.Contains(t, msg, "quiz=3 status=active question=1/2 answered=0")
}
