package api

import (
	"errors"
	"fmt"
)

// NotFoundError ресурс не найден (404)
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// UnauthorizedError токен отсутствует, истек или не дает доступа (401/403)
type UnauthorizedError struct {
	StatusCode int
	Message    string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unauthorized (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("unauthorized (status %d): %s", e.StatusCode, e.Message)
}

// ValidationError API отклонил тело запроса (400/422)
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError ошибка транспорта, таймаут или неожиданный статус
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsUnauthorized сообщает, что ошибка требует повторного входа
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

// IsNotFound сообщает, что ресурс не найден
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
