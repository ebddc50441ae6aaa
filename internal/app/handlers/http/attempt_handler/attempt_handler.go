package attempt_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/active_attempts_handler"
	"github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AttemptHandler структура для обработчика GET /attempts/{id}
type AttemptHandler struct {
	attemptService *service.AttemptService
}

// NewAttemptHandler создает новый экземпляр обработчика
func NewAttemptHandler(attemptService *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

// ServeHTTP метод для обработки запроса
func (h *AttemptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid attempt id")
		return
	}

	attempt, ok := h.attemptService.Get(id)
	if !ok {
		httpError.ErrorResponse(w, http.StatusNotFound, "Attempt not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(active_attempts_handler.AttemptInfo(attempt)); err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
}
