package http

import (
	"encoding/json"
	"net/http"
)

// errorBody тело ответа с ошибкой
type errorBody struct {
	Error string `json:"error"`
}

// ErrorResponse отправляет JSON с текстом ошибки и заданным статусом
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}
