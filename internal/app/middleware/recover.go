package middleware

import (
	"errors"
	"fmt"
	"log"

	"gopkg.in/telebot.v4"
)

// Recover перехватывает панику в обработчике, передает ее в onError
// и возвращает как ошибку. По умолчанию паника только логируется.
func Recover(onError ...func(error, telebot.Context)) telebot.MiddlewareFunc {
	var handleError func(error, telebot.Context)
	if len(onError) > 0 {
		handleError = onError[0]
	} else {
		handleError = func(err error, c telebot.Context) {
			log.Printf("Recovered from panic: %v", err)
		}
	}

	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = fmt.Errorf("panic: %v", x)
					}
					handleError(e, c)
					err = e
				}
			}()
			return next(c)
		}
	}
}
