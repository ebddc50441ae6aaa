package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/messages/repository"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/stretchr/testify/require"
)

type mapRepo struct {
	texts map[string]string
	err   error
}

func (r mapRepo) GetMessageByKey(_ context.Context, key string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if text, ok := r.texts[key]; ok {
		return text, nil
	}
	return "", fmt.Errorf("%w: %s", repository.ErrMessageNotFound, key)
}

func TestGetMessageByKey_Override(t *testing.T) {
	svc := NewMessageService(mapRepo{texts: map[string]string{model.LogoutKey: "Пока!"}})

	text, err := svc.GetMessageByKey(context.Background(), model.LogoutKey)
	require.NoError(t, err)
	require.Equal(t, "Пока!", text)

	text, err = svc.GetMessageByKey(context.Background(), model.NotLoggedInKey)
	require.NoError(t, err)
	require.Equal(t, defaultMessages[model.NotLoggedInKey], text)
}

func TestGetMessageByKey_DatabaseErrorFallsBack(t *testing.T) {
	svc := NewMessageService(mapRepo{err: errors.New("connection refused")})

	text, err := svc.GetMessageByKey(context.Background(), model.LogoutKey)
	require.NoError(t, err)
	require.Equal(t, defaultMessages[model.LogoutKey], text)
}

func TestGetMessageByKey_Unknown(t *testing.T) {
	svc := NewMessageService(nil)
	_, err := svc.GetMessageByKey(context.Background(), "nope")
	require.Error(t, err)
	require.Equal(t, "nope", svc.Text(context.Background(), "nope"))
}

func TestText_Format(t *testing.T) {
	svc := NewMessageService(nil)
	require.Equal(t, "Вы вошли как alice.", svc.Text(context.Background(), model.LoginSuccessKey, "alice"))
}

func TestGetButtons(t *testing.T) {
	svc := NewMessageService(nil)
	buttons, err := svc.GetButtons(context.Background())
	require.NoError(t, err)
	require.Len(t, buttons, 4)
	require.Equal(t, "⬅️ Назад", buttons[model.PrevButtonTextKey])
}

func TestDefaultsCoverAllKeys(t *testing.T) {
	for _, key := range []string{
		model.WelcomeMessageKey, model.QuizUnavailableKey, model.SubmitFailedKey,
		model.SubmitInFlightKey, model.SessionClosedKey, model.ServiceUnavailableKey,
	} {
		require.NotEmpty(t, defaultMessages[key], key)
	}
}
