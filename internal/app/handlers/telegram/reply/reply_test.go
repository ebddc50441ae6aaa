package reply

import (
	"errors"
	"fmt"
	"testing"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view"
	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizzesService "github.com/IT-Nick/quizbot/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	usersService "github.com/IT-Nick/quizbot/internal/domain/users/service"
	"github.com/IT-Nick/quizbot/internal/infra/api"
	"github.com/stretchr/testify/require"
)

func TestErrorKey(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{usersService.ErrNotLoggedIn, model.NotLoggedInKey},
		{fmt.Errorf("wrap: %w", usersService.ErrTokenExpired), model.TokenExpiredKey},
		{&api.UnauthorizedError{StatusCode: 401}, model.TokenExpiredKey},
		{usersService.ErrMissingField, model.LoginUsageKey},
		{attemptsService.ErrNoActiveAttempt, model.NoActiveAttemptKey},
		{fmt.Errorf("quiz 3: %w", session.ErrEmptyQuiz), model.QuizUnavailableKey},
		{session.ErrInvalidQuestion, model.WrongQuestionKey},
		{view.ErrBadCallback, model.WrongQuestionKey},
		{session.ErrSubmissionInFlight, model.SubmitInFlightKey},
		{session.ErrSubmitFailed, model.SubmitRetryRequiredKey},
		{session.ErrSessionClosed, model.SessionClosedKey},
		{quizzesService.ErrResultNotFound, model.ResultNotFoundKey},
		{fmt.Errorf("failed to load quiz 3: %w", &api.NotFoundError{Resource: "quiz 3"}), model.QuizNotFoundKey},
		{&api.NetworkError{Err: errors.New("refused")}, model.ServiceUnavailableKey},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ErrorKey(tt.err), tt.err.Error())
	}
}
