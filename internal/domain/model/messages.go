package model

// Ключи текстов бота. Тексты можно переопределить в таблице messages.
const (
	WelcomeMessageKey      = "welcome"
	LoginUsageKey          = "login_usage"
	RegisterUsageKey       = "register_usage"
	CreateUsageKey         = "create_usage"
	ResultsUsageKey        = "results_usage"
	LoginSuccessKey        = "login_success"
	LoginFailedKey         = "login_failed"
	RegisterSuccessKey     = "register_success"
	LogoutKey              = "logout"
	NotLoggedInKey         = "not_logged_in"
	TokenExpiredKey        = "token_expired"
	NoQuizzesKey           = "no_quizzes"
	QuizListKey            = "quiz_list"
	QuizCreatedKey         = "quiz_created"
	QuizUnavailableKey     = "quiz_unavailable"
	QuizNotFoundKey        = "quiz_not_found"
	NoActiveAttemptKey     = "no_active_attempt"
	AttemptExpiredKey      = "attempt_expired"
	WrongQuestionKey       = "wrong_question"
	SubmitSuccessKey       = "submit_success"
	SubmitFailedKey        = "submit_failed"
	SubmitInFlightKey      = "submit_in_flight"
	SubmitRetryRequiredKey = "submit_retry_required"
	SessionClosedKey       = "session_closed"
	ResultNotFoundKey      = "result_not_found"
	ServiceUnavailableKey  = "service_unavailable"

	PrevButtonTextKey    = "button_prev"
	NextButtonTextKey    = "button_next"
	SubmitButtonTextKey  = "button_submit"
	ResultsButtonTextKey = "button_results"
)
