package session

import "errors"

// Ошибки нарушения предусловий. Означают ошибку вызывающей стороны и не повторяются.
var (
	ErrEmptyQuiz          = errors.New("quiz has no questions")
	ErrInvalidQuestion    = errors.New("question is not the current one")
	ErrInvalidOption      = errors.New("option must be one of A, B, C, D")
	ErrIndexOutOfRange    = errors.New("question index out of range")
	ErrSessionClosed      = errors.New("session already submitted")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrSubmitFailed       = errors.New("previous submission failed, retry submit")
	ErrNothingToDeliver   = errors.New("no pending submission")
)
