package dto

import "time"

// ResultReview разбор оцененной попытки для показа пользователю
type ResultReview struct {
	QuizID      int
	Topic       string
	Score       int
	Total       int
	Percentage  int
	Performance string
	CompletedAt time.Time
	Rows        []ReviewRow
}

// ReviewRow ответ пользователя на один вопрос рядом с правильным
type ReviewRow struct {
	Number        int
	QuestionText  string
	YourAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}
