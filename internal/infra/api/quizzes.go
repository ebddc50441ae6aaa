package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

type submitRequest struct {
	Answers model.Answers `json:"answers"`
}

// Questions возвращает вопросы квиза в порядке прохождения
func (c *Client) Questions(ctx context.Context, token string, quizID int) ([]model.Question, error) {
	var quiz model.QuizDetails
	path := fmt.Sprintf("/api/quizzes/%d/", quizID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &quiz, fmt.Sprintf("quiz %d", quizID)); err != nil {
		return nil, err
	}
	return quiz.Questions, nil
}

// SubmitAnswers отправляет ответы попытки на оценку
func (c *Client) SubmitAnswers(ctx context.Context, token string, quizID int, answers model.Answers) error {
	path := fmt.Sprintf("/api/quizzes/%d/submit/", quizID)
	return c.do(ctx, http.MethodPost, path, token, submitRequest{Answers: answers}, nil, fmt.Sprintf("quiz %d", quizID))
}

// ListQuizzes возвращает квизы пользователя
func (c *Client) ListQuizzes(ctx context.Context, token string) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := c.do(ctx, http.MethodGet, "/api/quizzes/", token, nil, &quizzes, "quizzes"); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// CreateQuiz просит API сгенерировать новый квиз
func (c *Client) CreateQuiz(ctx context.Context, token string, req model.CreateQuizRequest) (model.Quiz, error) {
	var quiz model.Quiz
	if err := c.do(ctx, http.MethodPost, "/api/quizzes/create/", token, req, &quiz, "quiz"); err != nil {
		return model.Quiz{}, err
	}
	return quiz, nil
}

// ListResults возвращает все оцененные попытки пользователя
func (c *Client) ListResults(ctx context.Context, token string) ([]model.Result, error) {
	var results []model.Result
	if err := c.do(ctx, http.MethodGet, "/api/results/", token, nil, &results, "results"); err != nil {
		return nil, err
	}
	return results, nil
}
