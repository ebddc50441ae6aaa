// Package view собирает тексты и inline-клавиатуры для сообщений бота
package view

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/session"
	"gopkg.in/telebot.v4"
)

const progressBarWidth = 10

// ErrBadCallback данные кнопки не разбираются
var ErrBadCallback = errors.New("invalid callback data")

// Question текст и клавиатура текущего вопроса попытки
func Question(snap session.Snapshot, buttons map[string]string) (string, *telebot.ReplyMarkup) {
	p := snap.Progress
	q := snap.Current

	var b strings.Builder
	fmt.Fprintf(&b, "❓ <b>Вопрос %d/%d</b>\n", p.CurrentIndex+1, p.Total)
	fmt.Fprintf(&b, "%s %d%%\n\n", ProgressBar(p.PercentComplete), p.PercentComplete)
	b.WriteString(html.EscapeString(q.Text))
	b.WriteString("\n\n")
	for _, o := range model.Options {
		fmt.Fprintf(&b, "<b>%s)</b> %s\n", o, html.EscapeString(q.OptionText(o)))
	}
	fmt.Fprintf(&b, "\nОтвечено: %d из %d", p.AnsweredCount, p.Total)

	markup := &telebot.ReplyMarkup{}
	chosen, hasChosen := snap.Answers[q.ID]

	optionRow := make([]telebot.Btn, 0, len(model.Options))
	for _, o := range model.Options {
		label := string(o)
		if hasChosen && chosen == o {
			label = "✅ " + label
		}
		optionRow = append(optionRow, markup.Data(label, model.AnswerButtonKey, strconv.Itoa(q.ID), string(o)))
	}
	rows := []telebot.Row{markup.Row(optionRow...)}

	var nav []telebot.Btn
	if p.CurrentIndex > 0 {
		nav = append(nav, markup.Data(buttons[model.PrevButtonTextKey], model.GoToButtonKey, strconv.Itoa(p.CurrentIndex-1)))
	}
	if p.CurrentIndex < p.Total-1 {
		nav = append(nav, markup.Data(buttons[model.NextButtonTextKey], model.GoToButtonKey, strconv.Itoa(p.CurrentIndex+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, markup.Row(nav...))
	}

	markup.Inline(rows...)
	return b.String(), markup
}

// ProgressBar рисует полосу из progressBarWidth клеток
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := (percent*progressBarWidth + 50) / 100
	return strings.Repeat("▰", filled) + strings.Repeat("▱", progressBarWidth-filled)
}

// RetryMarkup кнопка повторной отправки ответов
func RetryMarkup(buttons map[string]string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(buttons[model.SubmitButtonTextKey], model.SubmitButtonKey)))
	return markup
}

// ResultsMarkup кнопка просмотра результата квиза
func ResultsMarkup(quizID int, buttons map[string]string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(buttons[model.ResultsButtonTextKey], model.ResultsButtonKey, strconv.Itoa(quizID))))
	return markup
}

// QuizList клавиатура со списком квизов, по кнопке на квиз
func QuizList(quizzes []model.Quiz) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(quizzes))
	for _, q := range quizzes {
		label := fmt.Sprintf("%s · %d вопр. · %s", q.Topic, q.NumQuestions, q.Difficulty)
		rows = append(rows, markup.Row(markup.Data(label, model.QuizButtonKey, strconv.Itoa(q.ID))))
	}
	markup.Inline(rows...)
	return markup
}

// Review текст разбора результата
func Review(r dto.ResultReview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>%s</b>\n", html.EscapeString(r.Topic))
	fmt.Fprintf(&b, "Результат: %d/%d (%d%%)\n", r.Score, r.Total, r.Percentage)
	b.WriteString(r.Performance)
	if !r.CompletedAt.IsZero() {
		fmt.Fprintf(&b, "\nЗавершен: %s", r.CompletedAt.Format("02.01.2006 15:04"))
	}
	b.WriteString("\n")

	for _, row := range r.Rows {
		mark := "❌"
		if row.IsCorrect {
			mark = "✅"
		}
		your := row.YourAnswer
		if your == "" {
			your = "нет ответа"
		}
		fmt.Fprintf(&b, "\n%s <b>%d.</b> %s\n", mark, row.Number, html.EscapeString(row.QuestionText))
		fmt.Fprintf(&b, "Ваш ответ: %s\n", html.EscapeString(your))
		if !row.IsCorrect {
			fmt.Fprintf(&b, "Правильный: %s\n", html.EscapeString(row.CorrectAnswer))
		}
	}
	return b.String()
}

// ParseAnswer разбирает данные кнопки ответа "<id вопроса>|<вариант>"
func ParseAnswer(data string) (int, model.Option, error) {
	parts := strings.Split(strings.TrimSpace(data), "|")
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	questionID, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("%w: question id %q", ErrBadCallback, parts[0])
	}
	option, err := model.ParseOption(parts[1])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrBadCallback, err)
	}
	return questionID, option, nil
}

// ParseInt разбирает числовые данные кнопки (индекс вопроса, id квиза)
func ParseInt(data string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(data))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	return n, nil
}
