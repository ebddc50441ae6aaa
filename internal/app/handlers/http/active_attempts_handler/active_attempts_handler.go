package active_attempts_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	"github.com/IT-Nick/quizbot/internal/domain/dto"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// ActiveAttemptsHandler структура для обработчика
type ActiveAttemptsHandler struct {
	attemptService *service.AttemptService
}

// NewActiveAttemptsHandler создает новый экземпляр обработчика
func NewActiveAttemptsHandler(attemptService *service.AttemptService) *ActiveAttemptsHandler {
	return &ActiveAttemptsHandler{attemptService: attemptService}
}

// AttemptInfo переводит попытку в строку отчета
func AttemptInfo(a *service.Attempt) dto.AttemptInfo {
	p := a.Session.Progress()
	return dto.AttemptInfo{
		AttemptID:       a.ID.String(),
		TelegramID:      a.TelegramID,
		QuizID:          a.QuizID,
		Status:          string(p.Status),
		CurrentIndex:    p.CurrentIndex,
		Total:           p.Total,
		AnsweredCount:   p.AnsweredCount,
		PercentComplete: p.PercentComplete,
		StartedAt:       a.StartedAt,
	}
}

// ServeHTTP метод для обработки запроса
func (h *ActiveAttemptsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	attempts := h.attemptService.Active()

	response := dto.ActiveAttemptsResponse{
		TotalActive: len(attempts),
		Attempts:    make([]dto.AttemptInfo, 0, len(attempts)),
	}
	for _, a := range attempts {
		response.Attempts = append(response.Attempts, AttemptInfo(a))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
}
