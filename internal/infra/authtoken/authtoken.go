package authtoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info сведения из access-токена. Подпись не проверяется: токен выдает
// и проверяет API, боту нужен только срок жизни.
type Info struct {
	UserID    int
	Subject   string
	ExpiresAt time.Time
}

// Expired сообщает, истек ли токен к моменту now. Токен без exp не истекает.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// Inspect разбирает JWT без проверки подписи
func Inspect(token string) (Info, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{}, fmt.Errorf("jwt.ParseUnverified: %w", err)
	}

	var info Info
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Info{}, fmt.Errorf("claims.GetExpirationTime: %w", err)
	}
	if exp != nil {
		info.ExpiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	// simplejwt кладет идентификатор пользователя в user_id
	if v, ok := claims["user_id"].(float64); ok {
		info.UserID = int(v)
	}
	return info, nil
}
