package api

import (
	"context"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Login получает пару токенов по логину и паролю
func (c *Client) Login(ctx context.Context, username, password string) (model.Credentials, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/login/", "", loginRequest{Username: username, Password: password}, &resp, "user")
	if err != nil {
		return model.Credentials{}, err
	}
	return model.Credentials{Username: username, Access: resp.Access, Refresh: resp.Refresh}, nil
}

// Register регистрирует пользователя и сразу возвращает токены
func (c *Client) Register(ctx context.Context, username, email, password string) (model.Credentials, error) {
	var resp tokenResponse
	req := registerRequest{Username: username, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/register/", "", req, &resp, "user"); err != nil {
		return model.Credentials{}, err
	}
	return model.Credentials{Username: username, Access: resp.Access, Refresh: resp.Refresh}, nil
}
