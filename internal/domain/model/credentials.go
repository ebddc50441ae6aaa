package model

import "time"

// Credentials токены пользователя, полученные при входе
type Credentials struct {
	Username  string    `json:"username"`
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
