package model

import "time"

// Сложность квиза, которую принимает API при создании
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Quiz краткое описание квиза из списка пользователя
type Quiz struct {
	ID           int       `json:"id"`
	Topic        string    `json:"topic"`
	NumQuestions int       `json:"num_questions"`
	Difficulty   string    `json:"difficulty"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuizDetails квиз вместе с вопросами для прохождения
type QuizDetails struct {
	Quiz
	Questions []Question `json:"questions"`
}

// CreateQuizRequest параметры генерации нового квиза
type CreateQuizRequest struct {
	Topic        string `json:"topic"`
	NumQuestions int    `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
}
