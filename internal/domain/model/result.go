package model

import "time"

// ResultUser автор попытки
type ResultUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ResultQuiz квиз в составе результата
type ResultQuiz struct {
	ID           int              `json:"id"`
	Topic        string           `json:"topic"`
	NumQuestions int              `json:"num_questions"`
	Difficulty   string           `json:"difficulty"`
	Questions    []ReviewQuestion `json:"questions"`
}

// Result оцененная попытка, как ее возвращает API
type Result struct {
	ID          int        `json:"id"`
	Score       int        `json:"score"`
	Answers     Answers    `json:"answers"`
	Quiz        ResultQuiz `json:"quiz"`
	CompletedAt time.Time  `json:"completed_at"`
	User        ResultUser `json:"user"`
}
