package dto

import "time"

// ActiveAttemptsResponse структура для отчета по активным попыткам
type ActiveAttemptsResponse struct {
	TotalActive int           `json:"total_active"`
	Attempts    []AttemptInfo `json:"attempts"`
}

type AttemptInfo struct {
	AttemptID       string    `json:"attempt_id"`
	TelegramID      int64     `json:"telegram_id"`
	QuizID          int       `json:"quiz_id"`
	Status          string    `json:"status"`
	CurrentIndex    int       `json:"current_index"`
	Total           int       `json:"total"`
	AnsweredCount   int       `json:"answered_count"`
	PercentComplete int       `json:"percent_complete"`
	StartedAt       time.Time `json:"started_at"`
}
