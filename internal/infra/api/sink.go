package api

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
)

var _ session.Sink = (*Sink)(nil)

// Sink отправляет ответы одной попытки. Токен и квиз задаются при создании.
type Sink struct {
	client *Client
	token  string
	quizID int
}

// NewSink создает Sink для попытки пользователя с токеном token на квизе quizID
func NewSink(client *Client, token string, quizID int) *Sink {
	return &Sink{client: client, token: token, quizID: quizID}
}

// Submit реализует session.Sink
func (s *Sink) Submit(ctx context.Context, answers model.Answers) error {
	return s.client.SubmitAnswers(ctx, s.token, s.quizID, answers)
}
