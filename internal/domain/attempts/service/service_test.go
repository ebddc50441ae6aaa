package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	questions []model.Question
	err       error
	gotToken  string
}

func (f *fakeSource) Questions(_ context.Context, token string, _ int) ([]model.Question, error) {
	f.gotToken = token
	return f.questions, f.err
}

type submission struct {
	token   string
	quizID  int
	answers model.Answers
}

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []submission
	errs  []error
	// block, если задан, задерживает отправку до закрытия
	block   chan struct{}
	started chan struct{}
}

func (f *fakeSubmitter) factory(token string, quizID int) session.Sink {
	return session.SinkFunc(func(ctx context.Context, answers model.Answers) error {
		return f.submit(ctx, token, quizID, answers)
	})
}

func (f *fakeSubmitter) submit(_ context.Context, token string, quizID int, answers model.Answers) error {
	f.mu.Lock()
	f.calls = append(f.calls, submission{token: token, quizID: quizID, answers: answers})
	var err error
	if len(f.errs) > 0 {
		err, f.errs = f.errs[0], f.errs[1:]
	}
	f.mu.Unlock()

	if f.block != nil {
		close(f.started)
		<-f.block
	}
	return err
}

func (f *fakeSubmitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func threeQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Text: "q1", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d"},
		{ID: 2, Text: "q2", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d"},
		{ID: 3, Text: "q3", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d"},
	}
}

func TestStart(t *testing.T) {
	src := &fakeSource{questions: threeQuestions()}
	svc := NewAttemptService(src, (&fakeSubmitter{}).factory)

	attempt, err := svc.Start(context.Background(), 10, "tok", 5)
	require.NoError(t, err)
	require.Equal(t, "tok", src.gotToken)
	require.Equal(t, 5, attempt.QuizID)
	require.Equal(t, session.StatusActive, attempt.Session.Status())

	cur, err := svc.Current(10)
	require.NoError(t, err)
	require.Same(t, attempt, cur)

	got, ok := svc.Get(attempt.ID)
	require.True(t, ok)
	require.Same(t, attempt, got)
}

func TestStart_EmptyQuiz(t *testing.T) {
	svc := NewAttemptService(&fakeSource{}, (&fakeSubmitter{}).factory)

	_, err := svc.Start(context.Background(), 10, "tok", 5)
	require.ErrorIs(t, err, session.ErrEmptyQuiz)

	_, err = svc.Current(10)
	require.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestStart_SourceError(t *testing.T) {
	srcErr := errors.New("quiz 5 not found")
	svc := NewAttemptService(&fakeSource{err: srcErr}, (&fakeSubmitter{}).factory)

	_, err := svc.Start(context.Background(), 10, "tok", 5)
	require.ErrorIs(t, err, srcErr)
}

func TestStart_ReplacesPreviousAttempt(t *testing.T) {
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, (&fakeSubmitter{}).factory)

	first, err := svc.Start(context.Background(), 10, "tok", 1)
	require.NoError(t, err)
	second, err := svc.Start(context.Background(), 10, "tok", 2)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Len(t, svc.Active(), 1)
}

// Сценарий: ответы A, C, B уходят в API одним запросом, попытка закрывается
func TestAnswer_FullAttempt(t *testing.T) {
	sub := &fakeSubmitter{}
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, sub.factory)
	ctx := context.Background()

	_, err := svc.Start(ctx, 10, "tok", 5)
	require.NoError(t, err)

	out, err := svc.Answer(ctx, 10, "tok", 1, model.OptionA)
	require.NoError(t, err)
	require.Equal(t, 1, out.Progress.CurrentIndex)
	require.False(t, out.Submitted)

	out, err = svc.Answer(ctx, 10, "tok", 2, model.OptionC)
	require.NoError(t, err)
	require.Equal(t, 2, out.Progress.CurrentIndex)

	out, err = svc.Answer(ctx, 10, "tok", 3, model.OptionB)
	require.NoError(t, err)
	require.True(t, out.Submitted)
	require.NoError(t, out.SubmitErr)
	require.Equal(t, session.StatusSubmitted, out.Progress.Status)

	require.Equal(t, []submission{{
		token:   "tok",
		quizID:  5,
		answers: model.Answers{1: model.OptionA, 2: model.OptionC, 3: model.OptionB},
	}}, sub.calls)

	_, err = svc.Current(10)
	require.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestAnswer_WrongQuestion(t *testing.T) {
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, (&fakeSubmitter{}).factory)
	ctx := context.Background()
	_, err := svc.Start(ctx, 10, "tok", 5)
	require.NoError(t, err)

	out, err := svc.Answer(ctx, 10, "tok", 3, model.OptionA)
	require.ErrorIs(t, err, session.ErrInvalidQuestion)
	require.Equal(t, 0, out.Progress.CurrentIndex)
	require.Equal(t, 0, out.Progress.AnsweredCount)
}

func TestAnswer_NoAttempt(t *testing.T) {
	svc := NewAttemptService(&fakeSource{}, (&fakeSubmitter{}).factory)
	_, err := svc.Answer(context.Background(), 10, "tok", 1, model.OptionA)
	require.ErrorIs(t, err, ErrNoActiveAttempt)
}

func TestSubmit_FailureThenRetry(t *testing.T) {
	apiErr := errors.New("502 bad gateway")
	sub := &fakeSubmitter{errs: []error{apiErr}}
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()[:1]}, sub.factory)
	ctx := context.Background()
	_, err := svc.Start(ctx, 10, "tok", 5)
	require.NoError(t, err)

	out, err := svc.Answer(ctx, 10, "tok", 1, model.OptionD)
	require.NoError(t, err)
	require.False(t, out.Submitted)
	require.ErrorIs(t, out.SubmitErr, apiErr)
	require.Equal(t, session.StatusSubmitFailed, out.Progress.Status)

	attempt, err := svc.Current(10)
	require.NoError(t, err, "после ошибки попытка остается для повтора")
	require.Equal(t, model.Answers{1: model.OptionD}, attempt.Session.Answers())

	out, err = svc.Submit(ctx, 10, "tok")
	require.NoError(t, err)
	require.True(t, out.Submitted)
	require.Equal(t, 2, sub.count())
	require.Equal(t, sub.calls[0].answers, sub.calls[1].answers)
}

// Сценарий: токен истек при отправке, пользователь вошел заново и повторил
func TestSubmit_RetryUsesFreshToken(t *testing.T) {
	unauthorized := errors.New("unauthorized (status 401)")
	sub := &fakeSubmitter{errs: []error{unauthorized}}
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()[:1]}, sub.factory)
	ctx := context.Background()
	_, err := svc.Start(ctx, 10, "old", 5)
	require.NoError(t, err)

	out, err := svc.Answer(ctx, 10, "old", 1, model.OptionB)
	require.NoError(t, err)
	require.ErrorIs(t, out.SubmitErr, unauthorized)
	require.Equal(t, session.StatusSubmitFailed, out.Progress.Status)

	out, err = svc.Submit(ctx, 10, "new")
	require.NoError(t, err)
	require.True(t, out.Submitted)

	require.Len(t, sub.calls, 2)
	require.Equal(t, "old", sub.calls[0].token)
	require.Equal(t, "new", sub.calls[1].token)
	require.Equal(t, model.Answers{1: model.OptionB}, sub.calls[1].answers)
}

func TestSubmit_ConcurrentTapsPostOnce(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{}), started: make(chan struct{})}
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, sub.factory)
	ctx := context.Background()
	_, err := svc.Start(ctx, 10, "tok", 5)
	require.NoError(t, err)
	_, err = svc.Answer(ctx, 10, "tok", 1, model.OptionA)
	require.NoError(t, err)

	type result struct {
		out Outcome
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := svc.Submit(ctx, 10, "tok")
		done <- result{out: out, err: err}
	}()

	<-sub.started
	_, err = svc.Submit(ctx, 10, "tok")
	require.ErrorIs(t, err, session.ErrSubmissionInFlight)

	close(sub.block)
	res := <-done
	require.NoError(t, res.err)
	require.True(t, res.out.Submitted)
	require.Equal(t, 1, sub.count())
}

func TestGoTo(t *testing.T) {
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, (&fakeSubmitter{}).factory)
	ctx := context.Background()
	_, err := svc.Start(ctx, 10, "tok", 5)
	require.NoError(t, err)
	_, err = svc.Answer(ctx, 10, "tok", 1, model.OptionA)
	require.NoError(t, err)

	out, err := svc.GoTo(10, 0)
	require.NoError(t, err)
	require.Equal(t, 0, out.Progress.CurrentIndex)
	require.Equal(t, 1, out.Progress.AnsweredCount)

	_, err = svc.GoTo(10, 5)
	require.ErrorIs(t, err, session.ErrIndexOutOfRange)
}

func TestDiscard(t *testing.T) {
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, (&fakeSubmitter{}).factory)
	_, err := svc.Start(context.Background(), 10, "tok", 5)
	require.NoError(t, err)

	svc.Discard(10)
	require.Empty(t, svc.Active())
}

func TestDiscardIdle(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewAttemptService(&fakeSource{questions: threeQuestions()}, (&fakeSubmitter{}).factory)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	idle, err := svc.Start(ctx, 1, "tok", 5)
	require.NoError(t, err)
	_, err = svc.Start(ctx, 2, "tok", 5)
	require.NoError(t, err)

	now = now.Add(90 * time.Minute)
	_, err = svc.Answer(ctx, 2, "tok", 1, model.OptionA)
	require.NoError(t, err)

	now = now.Add(40 * time.Minute)
	discarded := svc.DiscardIdle(time.Hour)
	require.Len(t, discarded, 1)
	require.Same(t, idle, discarded[0])

	_, err = svc.Current(1)
	require.ErrorIs(t, err, ErrNoActiveAttempt)
	_, err = svc.Current(2)
	require.NoError(t, err)
}
