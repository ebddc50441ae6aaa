package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client клиент REST API квизов. Токен передается в каждый вызов явно.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает клиент. timeout <= 0 заменяется значением по умолчанию.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorBody - формы тела ошибки, которые возвращает API
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any, resource string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequest: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw, resource)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func statusError(status int, raw []byte, resource string) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Error
	if msg == "" {
		msg = eb.Detail
	}

	switch status {
	case http.StatusNotFound:
		return &NotFoundError{Resource: resource}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &UnauthorizedError{StatusCode: status, Message: msg}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return &ValidationError{StatusCode: status, Message: msg}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &NetworkError{StatusCode: status, Err: fmt.Errorf("%s", msg)}
}
