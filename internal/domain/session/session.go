package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Sink принимает готовые ответы попытки. Идентификатор квиза и токен
// привязываются реализацией явно, сессия о них не знает.
type Sink interface {
	Submit(ctx context.Context, answers model.Answers) error
}

// SinkFunc позволяет использовать функцию как Sink
type SinkFunc func(ctx context.Context, answers model.Answers) error

// Submit вызывает f
func (f SinkFunc) Submit(ctx context.Context, answers model.Answers) error {
	return f(ctx, answers)
}

// QuizSession хранит состояние одной попытки: порядок вопросов, текущую позицию,
// ответы и жизненный цикл отправки.
//
// Ответ на вопрос сразу переводит к следующему. Ответ на последний вопрос
// переводит сессию в StatusSubmitting; саму отправку выполняет Deliver.
type QuizSession struct {
	mu sync.Mutex

	questions    []model.Question
	index        map[int]int
	currentIndex int
	answers      model.Answers
	status       Status

	// pending - копия ответов, зафиксированная при переходе в StatusSubmitting
	pending    model.Answers
	dispatched bool
}

// New создает сессию. Пустой список вопросов - ErrEmptyQuiz.
func New(questions []model.Question) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}

	qs := make([]model.Question, len(questions))
	copy(qs, questions)

	index := make(map[int]int, len(qs))
	for i, q := range qs {
		if _, ok := index[q.ID]; ok {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		index[q.ID] = i
	}

	return &QuizSession{
		questions: qs,
		index:     index,
		answers:   make(model.Answers),
		status:    StatusActive,
	}, nil
}

// SelectOption записывает ответ на текущий вопрос и переходит к следующему.
// На последнем вопросе сессия переходит в StatusSubmitting.
// При ошибке состояние сессии не меняется.
func (s *QuizSession) SelectOption(questionID int, option model.Option) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireActiveLocked(); err != nil {
		return s.progressLocked(), err
	}
	if s.questions[s.currentIndex].ID != questionID {
		return s.progressLocked(), fmt.Errorf("%w: got %d, current %d",
			ErrInvalidQuestion, questionID, s.questions[s.currentIndex].ID)
	}
	if !option.Valid() {
		return s.progressLocked(), ErrInvalidOption
	}

	s.answers[questionID] = option

	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
	} else {
		s.beginLocked()
	}

	return s.progressLocked(), nil
}

// GoTo переходит к вопросу по индексу, ответы не меняются
func (s *QuizSession) GoTo(index int) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireActiveLocked(); err != nil {
		return s.progressLocked(), err
	}
	if index < 0 || index >= len(s.questions) {
		return s.progressLocked(), fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(s.questions))
	}

	s.currentIndex = index
	return s.progressLocked(), nil
}

// Progress возвращает текущий прогресс
func (s *QuizSession) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

// Submit отправляет ответы в sink. Допустим из StatusActive и StatusSubmitFailed.
// Пока предыдущая отправка не завершилась, возвращает ErrSubmissionInFlight.
func (s *QuizSession) Submit(ctx context.Context, sink Sink) error {
	s.mu.Lock()
	switch s.status {
	case StatusSubmitted:
		s.mu.Unlock()
		return ErrSessionClosed
	case StatusSubmitting:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.beginLocked()
	snapshot := s.dispatchLocked()
	s.mu.Unlock()

	return s.deliver(ctx, sink, snapshot)
}

// Deliver выполняет отправку, начатую ответом на последний вопрос.
// Вызывается ровно один раз на каждый переход в StatusSubmitting.
func (s *QuizSession) Deliver(ctx context.Context, sink Sink) error {
	s.mu.Lock()
	switch {
	case s.status == StatusSubmitted:
		s.mu.Unlock()
		return ErrSessionClosed
	case s.status != StatusSubmitting:
		s.mu.Unlock()
		return ErrNothingToDeliver
	case s.dispatched:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	snapshot := s.dispatchLocked()
	s.mu.Unlock()

	return s.deliver(ctx, sink, snapshot)
}

// deliver вызывает sink вне блокировки. Если sink паникует, сессия
// переходит в StatusSubmitFailed, и отправку можно повторить.
func (s *QuizSession) deliver(ctx context.Context, sink Sink, snapshot model.Answers) (err error) {
	settled := false
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.pending = nil
		s.dispatched = false
		if !settled || err != nil {
			s.status = StatusSubmitFailed
			return
		}
		s.status = StatusSubmitted
	}()

	err = sink.Submit(ctx, snapshot)
	settled = true
	return err
}

// Status возвращает текущее состояние
func (s *QuizSession) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Answers возвращает копию ответов
func (s *QuizSession) Answers() model.Answers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Clone()
}

// CurrentQuestion возвращает отображаемый вопрос и его индекс
func (s *QuizSession) CurrentQuestion() (model.Question, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.currentIndex], s.currentIndex
}

// Question возвращает вопрос по индексу
func (s *QuizSession) Question(index int) (model.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.questions) {
		return model.Question{}, false
	}
	return s.questions[index], true
}

// Snapshot согласованный срез состояния для отображения
type Snapshot struct {
	Progress Progress
	Answers  model.Answers
	Current  model.Question
}

// Snapshot возвращает прогресс, копию ответов и текущий вопрос под одной блокировкой
func (s *QuizSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Progress: s.progressLocked(),
		Answers:  s.answers.Clone(),
		Current:  s.questions[s.currentIndex],
	}
}

// Answer возвращает ответ на вопрос, если он есть
func (s *QuizSession) Answer(questionID int) (model.Option, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.answers[questionID]
	return o, ok
}

func (s *QuizSession) requireActiveLocked() error {
	switch s.status {
	case StatusSubmitted:
		return ErrSessionClosed
	case StatusSubmitting:
		return ErrSubmissionInFlight
	case StatusSubmitFailed:
		return ErrSubmitFailed
	}
	return nil
}

func (s *QuizSession) beginLocked() {
	s.status = StatusSubmitting
	s.pending = s.answers.Clone()
	s.dispatched = false
}

func (s *QuizSession) dispatchLocked() model.Answers {
	s.dispatched = true
	return s.pending
}

func (s *QuizSession) progressLocked() Progress {
	total := len(s.questions)
	return Progress{
		CurrentIndex:    s.currentIndex,
		Total:           total,
		AnsweredCount:   len(s.answers),
		PercentComplete: percentComplete(s.currentIndex, total),
		Status:          s.status,
	}
}
