package model

// Уникальные идентификаторы inline-кнопок. Привязаны к обработчикам в app.
// Не следует изменять без изменения регистрации обработчиков.
const (
	QuizButtonKey    = "quiz"
	AnswerButtonKey  = "answer"
	GoToButtonKey    = "goto"
	SubmitButtonKey  = "submit"
	ResultsButtonKey = "results"
)
