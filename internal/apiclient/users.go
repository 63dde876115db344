package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// createUserRequest - тело запроса на создание пользователя
type createUserRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
}

// GetUserByTelegramID получает пользователя по Telegram ID.
// Возвращает (nil, nil) если пользователь не найден.
func (c *Client) GetUserByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", telegramID), nil)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return decodeUser(body)
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, statusError(status, body)
	}
}

// CreateUser создаёт нового пользователя
func (c *Client) CreateUser(ctx context.Context, telegramID int64, username, firstName string) (*model.User, error) {
	payload := createUserRequest{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/users", payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return nil, statusError(status, body)
	}

	return decodeUser(body)
}

// decodeUser разбирает ответ сервера с пользователем.
// Сервер отвечает либо {"user": {...}}, либо объектом без обёртки.
func decodeUser(body []byte) (*model.User, error) {
	var envelope struct {
		User *model.User `json:"user"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.User != nil {
		return envelope.User, nil
	}

	var user model.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	return &user, nil
}
