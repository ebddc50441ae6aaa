package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"github.com/google/uuid"
)

// ErrNoActiveAttempt у пользователя нет начатой попытки
var ErrNoActiveAttempt = errors.New("no active attempt")

// QuestionSource загружает вопросы квиза
type QuestionSource interface {
	Questions(ctx context.Context, token string, quizID int) ([]model.Question, error)
}

// SinkFactory создает получателя ответов для попытки пользователя на квизе
type SinkFactory func(token string, quizID int) session.Sink

// Attempt попытка прохождения, принадлежащая пользователю Telegram
type Attempt struct {
	ID         uuid.UUID
	TelegramID int64
	QuizID     int
	StartedAt  time.Time
	Session    *session.QuizSession

	lastActive atomic.Int64
}

// LastActive время последнего действия пользователя в попытке
func (a *Attempt) LastActive() time.Time {
	return time.Unix(0, a.lastActive.Load())
}

func (a *Attempt) touch(now time.Time) {
	a.lastActive.Store(now.UnixNano())
}

// Outcome результат действия над попыткой
type Outcome struct {
	Attempt  *Attempt
	Progress session.Progress
	// Submitted - ответы приняты API, попытка закрыта
	Submitted bool
	// SubmitErr - ошибка API при отправке, попытку можно отправить повторно
	SubmitErr error
}

// AttemptService держит по одной попытке на пользователя и доводит их до отправки
type AttemptService struct {
	source  QuestionSource
	newSink SinkFactory

	mu       sync.RWMutex
	attempts map[int64]*Attempt
	now      func() time.Time
}

// NewAttemptService создает новый экземпляр AttemptService
func NewAttemptService(source QuestionSource, newSink SinkFactory) *AttemptService {
	return &AttemptService{
		source:   source,
		newSink:  newSink,
		attempts: make(map[int64]*Attempt),
		now:      time.Now,
	}
}

// Start загружает квиз и начинает новую попытку. Незавершенная предыдущая
// попытка пользователя отбрасывается.
func (s *AttemptService) Start(ctx context.Context, telegramID int64, token string, quizID int) (*Attempt, error) {
	questions, err := s.source.Questions(ctx, token, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz %d: %w", quizID, err)
	}

	sess, err := session.New(questions)
	if err != nil {
		return nil, fmt.Errorf("quiz %d: %w", quizID, err)
	}

	attempt := &Attempt{
		ID:         uuid.New(),
		TelegramID: telegramID,
		QuizID:     quizID,
		StartedAt:  s.now(),
		Session:    sess,
	}
	attempt.touch(attempt.StartedAt)

	s.mu.Lock()
	if prev, ok := s.attempts[telegramID]; ok {
		log.Printf("Attempt %s of user %d on quiz %d abandoned", prev.ID, telegramID, prev.QuizID)
	}
	s.attempts[telegramID] = attempt
	s.mu.Unlock()

	log.Printf("Attempt %s started: user %d, quiz %d, %d questions", attempt.ID, telegramID, quizID, len(questions))
	return attempt, nil
}

// Current возвращает активную попытку пользователя
func (s *AttemptService) Current(telegramID int64) (*Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attempt, ok := s.attempts[telegramID]
	if !ok {
		return nil, ErrNoActiveAttempt
	}
	return attempt, nil
}

// Get ищет попытку по идентификатору
func (s *AttemptService) Get(id uuid.UUID) (*Attempt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attempts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// Active возвращает все попытки, отсортированные по времени начала
func (s *AttemptService) Active() []*Attempt {
	s.mu.RLock()
	out := make([]*Attempt, 0, len(s.attempts))
	for _, a := range s.attempts {
		out = append(out, a)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out
}

// Answer записывает ответ на текущий вопрос. Если это был последний вопрос,
// сразу отправляет ответы с токеном token.
func (s *AttemptService) Answer(ctx context.Context, telegramID int64, token string, questionID int, option model.Option) (Outcome, error) {
	attempt, err := s.Current(telegramID)
	if err != nil {
		return Outcome{}, err
	}
	attempt.touch(s.now())

	progress, err := attempt.Session.SelectOption(questionID, option)
	if err != nil {
		return Outcome{Attempt: attempt, Progress: progress}, err
	}
	if progress.Status != session.StatusSubmitting {
		return Outcome{Attempt: attempt, Progress: progress}, nil
	}

	err = attempt.Session.Deliver(ctx, s.newSink(token, attempt.QuizID))
	if isPrecondition(err) {
		return Outcome{Attempt: attempt, Progress: attempt.Session.Progress()}, err
	}
	return s.finish(attempt, err), nil
}

// GoTo переходит к вопросу попытки по индексу
func (s *AttemptService) GoTo(telegramID int64, index int) (Outcome, error) {
	attempt, err := s.Current(telegramID)
	if err != nil {
		return Outcome{}, err
	}
	attempt.touch(s.now())
	progress, err := attempt.Session.GoTo(index)
	return Outcome{Attempt: attempt, Progress: progress}, err
}

// Submit отправляет ответы вручную или повторяет неудавшуюся отправку.
// Токен берется на момент вызова, поэтому после повторного входа повтор проходит.
func (s *AttemptService) Submit(ctx context.Context, telegramID int64, token string) (Outcome, error) {
	attempt, err := s.Current(telegramID)
	if err != nil {
		return Outcome{}, err
	}
	attempt.touch(s.now())

	err = attempt.Session.Submit(ctx, s.newSink(token, attempt.QuizID))
	if isPrecondition(err) {
		return Outcome{Attempt: attempt, Progress: attempt.Session.Progress()}, err
	}
	return s.finish(attempt, err), nil
}

// Discard отбрасывает попытку пользователя без отправки
func (s *AttemptService) Discard(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, telegramID)
}

// DiscardIdle отбрасывает попытки, в которых пользователь не действовал дольше maxIdle.
// Попытки с отправкой в процессе не трогаются.
func (s *AttemptService) DiscardIdle(maxIdle time.Duration) []*Attempt {
	deadline := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	var discarded []*Attempt
	for telegramID, a := range s.attempts {
		if a.Session.Status() == session.StatusSubmitting {
			continue
		}
		if a.LastActive().Before(deadline) {
			delete(s.attempts, telegramID)
			discarded = append(discarded, a)
		}
	}
	return discarded
}

func (s *AttemptService) finish(attempt *Attempt, submitErr error) Outcome {
	out := Outcome{Attempt: attempt, Progress: attempt.Session.Progress()}
	if submitErr != nil {
		log.Printf("Attempt %s: submission of quiz %d failed: %v", attempt.ID, attempt.QuizID, submitErr)
		out.SubmitErr = submitErr
		return out
	}

	log.Printf("Attempt %s: quiz %d submitted with %d answers", attempt.ID, attempt.QuizID, out.Progress.AnsweredCount)
	out.Submitted = true

	s.mu.Lock()
	if cur, ok := s.attempts[attempt.TelegramID]; ok && cur == attempt {
		delete(s.attempts, attempt.TelegramID)
	}
	s.mu.Unlock()
	return out
}

func isPrecondition(err error) bool {
	return errors.Is(err, session.ErrSessionClosed) ||
		errors.Is(err, session.ErrSubmissionInFlight) ||
		errors.Is(err, session.ErrNothingToDeliver)
}
