package view

import (
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"github.com/stretchr/testify/require"
)

var testButtons = map[string]string{
	model.PrevButtonTextKey:    "Назад",
	model.NextButtonTextKey:    "Вперед",
	model.SubmitButtonTextKey:  "Повторить",
	model.ResultsButtonTextKey: "Результаты",
}

func snapshot(index, total int, answers model.Answers) session.Snapshot {
	return session.Snapshot{
		Progress: session.Progress{
			CurrentIndex:    index,
			Total:           total,
			AnsweredCount:   len(answers),
			PercentComplete: 100 * (index + 1) / total,
			Status:          session.StatusActive,
		},
		Answers: answers,
		Current: model.Question{
			ID: 20 + index, Text: "2 < 3?", OptionA: "да", OptionB: "нет", OptionC: "<b>", OptionD: "не знаю",
		},
	}
}

func TestQuestion_Middle(t *testing.T) {
	text, markup := Question(snapshot(1, 4, model.Answers{20: model.OptionA, 21: model.OptionC}), testButtons)

	require.Contains(t, text, "Вопрос 2/4")
	require.Contains(t, text, "▰▰▰▰▰▱▱▱▱▱ 50%")
	require.Contains(t, text, "2 &lt; 3?")
	require.Contains(t, text, "&lt;b&gt;")
	require.Contains(t, text, "Отвечено: 2 из 4")

	require.Len(t, markup.InlineKeyboard, 2)
	options := markup.InlineKeyboard[0]
	require.Len(t, options, 4)
	require.Equal(t, model.AnswerButtonKey, options[0].Unique)
	require.Equal(t, "21|A", options[0].Data)
	require.Equal(t, "✅ C", options[2].Text)
	require.Equal(t, "D", options[3].Text)

	nav := markup.InlineKeyboard[1]
	require.Len(t, nav, 2)
	require.Equal(t, model.GoToButtonKey, nav[0].Unique)
	require.Equal(t, "0", nav[0].Data)
	require.Equal(t, "Назад", nav[0].Text)
	require.Equal(t, "2", nav[1].Data)
}

func TestQuestion_Edges(t *testing.T) {
	_, markup := Question(snapshot(0, 3, nil), testButtons)
	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[1], 1)
	require.Equal(t, "Вперед", markup.InlineKeyboard[1][0].Text)

	_, markup = Question(snapshot(2, 3, nil), testButtons)
	require.Len(t, markup.InlineKeyboard[1], 1)
	require.Equal(t, "Назад", markup.InlineKeyboard[1][0].Text)

	_, markup = Question(snapshot(0, 1, nil), testButtons)
	require.Len(t, markup.InlineKeyboard, 1)
}

func TestProgressBar(t *testing.T) {
	require.Equal(t, "▱▱▱▱▱▱▱▱▱▱", ProgressBar(0))
	require.Equal(t, "▰▰▰▱▱▱▱▱▱▱", ProgressBar(33))
	require.Equal(t, "▰▰▰▰▰▰▰▱▱▱", ProgressBar(67))
	require.Equal(t, "▰▰▰▰▰▰▰▰▰▰", ProgressBar(100))
	require.Equal(t, "▰▰▰▰▰▰▰▰▰▰", ProgressBar(150))
}

func TestRetryAndResultsMarkup(t *testing.T) {
	retry := RetryMarkup(testButtons)
	require.Equal(t, model.SubmitButtonKey, retry.InlineKeyboard[0][0].Unique)
	require.Equal(t, "Повторить", retry.InlineKeyboard[0][0].Text)

	results := ResultsMarkup(7, testButtons)
	require.Equal(t, model.ResultsButtonKey, results.InlineKeyboard[0][0].Unique)
	require.Equal(t, "7", results.InlineKeyboard[0][0].Data)
}

func TestQuizList(t *testing.T) {
	markup := QuizList([]model.Quiz{
		{ID: 1, Topic: "Go", NumQuestions: 5, Difficulty: "easy"},
		{ID: 2, Topic: "SQL", NumQuestions: 10, Difficulty: "hard"},
	})
	require.Len(t, markup.InlineKeyboard, 2)
	require.Equal(t, "Go · 5 вопр. · easy", markup.InlineKeyboard[0][0].Text)
	require.Equal(t, "2", markup.InlineKeyboard[1][0].Data)
	require.Equal(t, model.QuizButtonKey, markup.InlineKeyboard[1][0].Unique)
}

func TestReview(t *testing.T) {
	text := Review(dto.ResultReview{
		Topic: "Go & SQL", Score: 1, Total: 2, Percentage: 50, Performance: "Продолжайте тренироваться! 💪",
		Rows: []dto.ReviewRow{
			{Number: 1, QuestionText: "q1", YourAnswer: "A) a", CorrectAnswer: "A) a", IsCorrect: true},
			{Number: 2, QuestionText: "q2", CorrectAnswer: "B) b"},
		},
	})
	require.Contains(t, text, "Go &amp; SQL")
	require.Contains(t, text, "Результат: 1/2 (50%)")
	require.Contains(t, text, "✅ <b>1.</b> q1")
	require.Contains(t, text, "Ваш ответ: нет ответа")
	require.Contains(t, text, "Правильный: B) b")
}

func TestParseAnswer(t *testing.T) {
	qid, opt, err := ParseAnswer("12|c")
	require.NoError(t, err)
	require.Equal(t, 12, qid)
	require.Equal(t, model.OptionC, opt)

	for _, data := range []string{"", "12", "x|A", "12|E", "1|A|B"} {
		_, _, err := ParseAnswer(data)
		require.ErrorIs(t, err, ErrBadCallback, data)
	}
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt(" 3 ")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = ParseInt("three")
	require.ErrorIs(t, err, ErrBadCallback)
}
