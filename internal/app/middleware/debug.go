package middleware

import (
	"fmt"
	"log"

	attemptsService "github.com/IT-Nick/quizbot/internal/domain/attempts/service"
	"gopkg.in/telebot.v4"
)

// AttemptLookup источник активной попытки пользователя
type AttemptLookup interface {
	Current(telegramID int64) (*attemptsService.Attempt, error)
}

// DebugUserActions при включенном режиме отладки после каждого обработчика
// отправляет пользователю сообщение: кто он, что сделал и в каком состоянии его попытка.
func DebugUserActions(enabled bool, attempts AttemptLookup) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			err := next(c)
			if enabled && c.Sender() != nil {
				user := c.Sender()
				msg := debugMessage(c, attempts)
				go func() {
					if _, sendErr := c.Bot().Send(user, msg); sendErr != nil {
						log.Printf("Failed to send debug message to %d: %v", user.ID, sendErr)
					}
				}()
			}
			return err
		}
	}
}

func debugMessage(c telebot.Context, attempts AttemptLookup) string {
	user := c.Sender()

	attemptStr := "none"
	if attempt, err := attempts.Current(user.ID); err == nil {
		p := attempt.Session.Progress()
		attemptStr = fmt.Sprintf("%s quiz=%d status=%s question=%d/%d answered=%d",
			attempt.ID, attempt.QuizID, p.Status, p.CurrentIndex+1, p.Total, p.AnsweredCount)
	}

	var action string
	if msg := c.Message(); msg != nil && c.Callback() == nil {
		action = "Message: " + msg.Text
	} else if cb := c.Callback(); cb != nil {
		action = fmt.Sprintf("Callback: %s|%s", cb.Unique, cb.Data)
	} else {
		action = "Unknown action"
	}

	return fmt.Sprintf("DEBUG: User: %s (ID: %d), Attempt: %s, Action: %s",
		user.FirstName, user.ID, attemptStr, action)
}
