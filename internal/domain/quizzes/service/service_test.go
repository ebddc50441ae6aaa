package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	quizzes []model.Quiz
	results []model.Result
	created *model.CreateQuizRequest
	err     error
}

func (f *fakeAPI) ListQuizzes(context.Context, string) ([]model.Quiz, error) {
	return f.quizzes, f.err
}

func (f *fakeAPI) CreateQuiz(_ context.Context, _ string, req model.CreateQuizRequest) (model.Quiz, error) {
	f.created = &req
	if f.err != nil {
		return model.Quiz{}, f.err
	}
	return model.Quiz{ID: 9, Topic: req.Topic, NumQuestions: req.NumQuestions, Difficulty: req.Difficulty}, nil
}

func (f *fakeAPI) ListResults(context.Context, string) ([]model.Result, error) {
	return f.results, f.err
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name       string
		topic      string
		n          int
		difficulty string
		wantErr    error
	}{
		{"empty topic", "  ", 5, "easy", ErrEmptyTopic},
		{"zero questions", "Go", 0, "easy", ErrInvalidQuestionCount},
		{"too many questions", "Go", 51, "easy", ErrInvalidQuestionCount},
		{"unknown difficulty", "Go", 5, "insane", ErrInvalidDifficulty},
		{"ok", "Go", 50, "Hard", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			svc := NewQuizService(api)

			quiz, err := svc.Create(context.Background(), "tok", tt.topic, tt.n, tt.difficulty)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, api.created)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 9, quiz.ID)
			require.Equal(t, model.DifficultyHard, api.created.Difficulty)
		})
	}
}

func TestCreate_APIError(t *testing.T) {
	apiErr := errors.New("boom")
	svc := NewQuizService(&fakeAPI{err: apiErr})
	_, err := svc.Create(context.Background(), "tok", "Go", 3, "easy")
	require.ErrorIs(t, err, apiErr)
}

func TestPercentage(t *testing.T) {
	require.Equal(t, 0, Percentage(0, 0))
	require.Equal(t, 67, Percentage(2, 3))
	require.Equal(t, 33, Percentage(1, 3))
	require.Equal(t, 50, Percentage(1, 2))
	require.Equal(t, 100, Percentage(4, 4))
}

func TestPerformanceMessage(t *testing.T) {
	require.Equal(t, "Превосходно! 🎉", PerformanceMessage(90))
	require.Equal(t, "Отличная работа! 👏", PerformanceMessage(89))
	require.Equal(t, "Хороший результат! 👍", PerformanceMessage(70))
	require.Equal(t, "Неплохо! 📚", PerformanceMessage(60))
	require.Equal(t, "Продолжайте тренироваться! 💪", PerformanceMessage(59))
}

func reviewQuestion(id int, correct model.Option) model.ReviewQuestion {
	return model.ReviewQuestion{
		Question: model.Question{
			ID: id, Text: "q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		},
		CorrectOption: correct,
	}
}

func TestResultReview(t *testing.T) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	quiz := model.ResultQuiz{
		ID:    5,
		Topic: "Go",
		Questions: []model.ReviewQuestion{
			reviewQuestion(1, model.OptionA),
			reviewQuestion(2, model.OptionB),
			reviewQuestion(3, model.OptionC),
		},
	}
	api := &fakeAPI{results: []model.Result{
		{ID: 1, Score: 1, Quiz: quiz, CompletedAt: base, Answers: model.Answers{1: model.OptionA}},
		{ID: 2, Score: 2, Quiz: quiz, CompletedAt: base.Add(time.Hour),
			Answers: model.Answers{1: model.OptionA, 2: model.OptionC, 3: model.OptionC}},
		{ID: 3, Score: 3, Quiz: model.ResultQuiz{ID: 6}, CompletedAt: base.Add(2 * time.Hour)},
	}}
	svc := NewQuizService(api)

	review, err := svc.ResultReview(context.Background(), "tok", 5)
	require.NoError(t, err)
	require.Equal(t, 2, review.Score)
	require.Equal(t, 3, review.Total)
	require.Equal(t, 67, review.Percentage)
	require.Equal(t, "Неплохо! 📚", review.Performance)
	require.Len(t, review.Rows, 3)

	require.True(t, review.Rows[0].IsCorrect)
	require.False(t, review.Rows[1].IsCorrect)
	require.Equal(t, "C) c", review.Rows[1].YourAnswer)
	require.Equal(t, "B) b", review.Rows[1].CorrectAnswer)
	require.Equal(t, 3, review.Rows[2].Number)
}

func TestResultReview_NotFound(t *testing.T) {
	svc := NewQuizService(&fakeAPI{})
	_, err := svc.ResultReview(context.Background(), "tok", 5)
	require.ErrorIs(t, err, ErrResultNotFound)
}
