package service

import "github.com/IT-Nick/quizbot/internal/domain/model"

var defaultMessages = map[string]string{
	model.WelcomeMessageKey: "Привет! Я помогу пройти квизы.\n\n" +
		"/login <логин> <пароль> - вход\n" +
		"/register <логин> <email> <пароль> - регистрация\n" +
		"/quizzes - ваши квизы\n" +
		"/create <тема> <кол-во вопросов> <easy|medium|hard> - новый квиз\n" +
		"/progress - текущая попытка\n" +
		"/results <id квиза> - разбор результата\n" +
		"/logout - выход",
	model.LoginUsageKey:          "Использование: /login <логин> <пароль>",
	model.RegisterUsageKey:       "Использование: /register <логин> <email> <пароль>",
	model.CreateUsageKey:         "Использование: /create <тема> <кол-во вопросов 1-50> <easy|medium|hard>",
	model.ResultsUsageKey:        "Использование: /results <id квиза>",
	model.LoginSuccessKey:        "Вы вошли как %s.",
	model.LoginFailedKey:         "Неверный логин или пароль.",
	model.RegisterSuccessKey:     "Аккаунт %s создан, вы вошли в систему.",
	model.LogoutKey:              "Вы вышли из аккаунта.",
	model.NotLoggedInKey:         "Сначала войдите: /login <логин> <пароль>",
	model.TokenExpiredKey:        "Сессия истекла, войдите снова: /login <логин> <пароль>",
	model.NoQuizzesKey:           "У вас пока нет квизов. Создайте первый командой /create.",
	model.QuizListKey:            "Ваши квизы:",
	model.QuizCreatedKey:         "Квиз «%s» создан: %d вопросов.",
	model.QuizUnavailableKey:     "Этот квиз сейчас недоступен.",
	model.QuizNotFoundKey:        "Квиз не найден.",
	model.NoActiveAttemptKey:     "Нет активной попытки. Выберите квиз в /quizzes.",
	model.AttemptExpiredKey:      "Попытка удалена из-за долгого бездействия. Начните квиз заново в /quizzes.",
	model.WrongQuestionKey:       "Этот вопрос уже не активен.",
	model.SubmitSuccessKey:       "Ответы отправлены!",
	model.SubmitFailedKey:        "Не удалось отправить ответы. Ответы сохранены, попробуйте еще раз.",
	model.SubmitInFlightKey:      "Ответы уже отправляются...",
	model.SubmitRetryRequiredKey: "Ответы зафиксированы. Повторите отправку.",
	model.SessionClosedKey:       "Попытка уже завершена.",
	model.ResultNotFoundKey:      "Результат по этому квизу не найден.",
	model.ServiceUnavailableKey:  "Сервис квизов недоступен, попробуйте позже.",

	model.PrevButtonTextKey:    "⬅️ Назад",
	model.NextButtonTextKey:    "Вперед ➡️",
	model.SubmitButtonTextKey:  "🔁 Отправить еще раз",
	model.ResultsButtonTextKey: "📊 Результаты",
}
