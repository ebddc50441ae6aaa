package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// MaxQuestions верхняя граница размера генерируемого квиза
const MaxQuestions = 50

var (
	ErrEmptyTopic           = errors.New("topic is required")
	ErrInvalidQuestionCount = fmt.Errorf("number of questions must be between 1 and %d", MaxQuestions)
	ErrInvalidDifficulty    = errors.New("difficulty must be easy, medium or hard")
	ErrResultNotFound       = errors.New("no result for quiz")
)

// API операции удаленного сервиса, нужные QuizService
type API interface {
	ListQuizzes(ctx context.Context, token string) ([]model.Quiz, error)
	CreateQuiz(ctx context.Context, token string, req model.CreateQuizRequest) (model.Quiz, error)
	ListResults(ctx context.Context, token string) ([]model.Result, error)
}

// QuizService список квизов, их генерация и разбор результатов
type QuizService struct {
	api API
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(api API) *QuizService {
	return &QuizService{api: api}
}

// List возвращает квизы пользователя
func (s *QuizService) List(ctx context.Context, token string) ([]model.Quiz, error) {
	quizzes, err := s.api.ListQuizzes(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

// Create проверяет параметры и просит API сгенерировать квиз
func (s *QuizService) Create(ctx context.Context, token, topic string, numQuestions int, difficulty string) (model.Quiz, error) {
	req := model.CreateQuizRequest{
		Topic:        strings.TrimSpace(topic),
		NumQuestions: numQuestions,
		Difficulty:   strings.ToLower(strings.TrimSpace(difficulty)),
	}
	if err := validateCreate(req); err != nil {
		return model.Quiz{}, err
	}

	quiz, err := s.api.CreateQuiz(ctx, token, req)
	if err != nil {
		return model.Quiz{}, fmt.Errorf("failed to create quiz on %q: %w", req.Topic, err)
	}
	return quiz, nil
}

func validateCreate(req model.CreateQuizRequest) error {
	if req.Topic == "" {
		return ErrEmptyTopic
	}
	if req.NumQuestions < 1 || req.NumQuestions > MaxQuestions {
		return ErrInvalidQuestionCount
	}
	switch req.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
		return nil
	}
	return ErrInvalidDifficulty
}

// ResultReview находит последний результат пользователя по квизу и строит разбор
func (s *QuizService) ResultReview(ctx context.Context, token string, quizID int) (dto.ResultReview, error) {
	results, err := s.api.ListResults(ctx, token)
	if err != nil {
		return dto.ResultReview{}, fmt.Errorf("failed to load results: %w", err)
	}

	var found *model.Result
	for i := range results {
		r := &results[i]
		if r.Quiz.ID != quizID {
			continue
		}
		if found == nil || r.CompletedAt.After(found.CompletedAt) {
			found = r
		}
	}
	if found == nil {
		return dto.ResultReview{}, fmt.Errorf("%w %d", ErrResultNotFound, quizID)
	}

	return buildReview(*found), nil
}

func buildReview(r model.Result) dto.ResultReview {
	total := len(r.Quiz.Questions)
	if total == 0 {
		total = r.Quiz.NumQuestions
	}
	percentage := Percentage(r.Score, total)

	review := dto.ResultReview{
		QuizID:      r.Quiz.ID,
		Topic:       r.Quiz.Topic,
		Score:       r.Score,
		Total:       total,
		Percentage:  percentage,
		Performance: PerformanceMessage(percentage),
		CompletedAt: r.CompletedAt,
		Rows:        make([]dto.ReviewRow, 0, len(r.Quiz.Questions)),
	}

	for i, q := range r.Quiz.Questions {
		row := dto.ReviewRow{
			Number:        i + 1,
			QuestionText:  q.Text,
			CorrectAnswer: optionLabel(q.Question, q.CorrectOption),
		}
		if chosen, ok := r.Answers[q.ID]; ok {
			row.YourAnswer = optionLabel(q.Question, chosen)
			row.IsCorrect = chosen == q.CorrectOption
		}
		review.Rows = append(review.Rows, row)
	}
	return review
}

func optionLabel(q model.Question, o model.Option) string {
	text := q.OptionText(o)
	if text == "" {
		return string(o)
	}
	return fmt.Sprintf("%s) %s", o, text)
}

// Percentage доля правильных ответов в процентах, округленная до целого
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}

// PerformanceMessage оценка результата для пользователя
func PerformanceMessage(percentage int) string {
	switch {
	case percentage >= 90:
		return "Превосходно! 🎉"
	case percentage >= 80:
		return "Отличная работа! 👏"
	case percentage >= 70:
		return "Хороший результат! 👍"
	case percentage >= 60:
		return "Неплохо! 📚"
	default:
		return "Продолжайте тренироваться! 💪"
	}
}
