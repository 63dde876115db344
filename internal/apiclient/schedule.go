package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// createScheduleRequest - тело запроса на создание занятия
type createScheduleRequest struct {
	UserID      int64  `json:"user_id"`
	DayOfWeek   string `json:"day_of_week"`
	TimeStart   string `json:"time_start"`
	TimeEnd     string `json:"time_end"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// CreateScheduleItem создаёт новое занятие в расписании
func (c *Client) CreateScheduleItem(ctx context.Context, userID int64, day model.Day, timeStart, timeEnd, subject, description string) (*model.ScheduleItem, error) {
	payload := createScheduleRequest{
		UserID:      userID,
		DayOfWeek:   string(day),
		TimeStart:   timeStart,
		TimeEnd:     timeEnd,
		Subject:     subject,
		Description: description,
	}

	status, body, err := c.do(ctx, http.MethodPost, "/api/schedule", payload)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return nil, statusError(status, body)
	}

	return decodeItem(body)
}

// GetAllSchedule получает полный список занятий.
// Backend не умеет фильтровать по пользователю, поэтому отдаёт
// занятия всех пользователей - фильтрация делается на стороне бота.
func (c *Client) GetAllSchedule(ctx context.Context) ([]model.ScheduleItem, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/schedule", nil)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, statusError(status, body)
	}

	var envelope struct {
		Items []model.ScheduleItem `json:"items"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode schedule response: %w", err)
	}

	return envelope.Items, nil
}

// GetScheduleItemByID получает одно занятие по ID.
// Возвращает (nil, nil) если занятие не найдено.
func (c *Client) GetScheduleItemByID(ctx context.Context, itemID int64) (*model.ScheduleItem, error) {
	status, body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/schedule/%d", itemID), nil)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusOK:
		return decodeItem(body)
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, statusError(status, body)
	}
}

// UpdateScheduleItem частично обновляет занятие.
// В fields передаются только изменяемые поля.
func (c *Client) UpdateScheduleItem(ctx context.Context, itemID int64, fields map[string]string) (*model.ScheduleItem, error) {
	status, body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/schedule/%d", itemID), fields)
	if err != nil {
		return nil, err
	}

	if status < 200 || status > 299 {
		return nil, statusError(status, body)
	}

	return decodeItem(body)
}

// DeleteScheduleItem удаляет занятие
func (c *Client) DeleteScheduleItem(ctx context.Context, itemID int64) error {
	status, body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/schedule/%d", itemID), nil)
	if err != nil {
		return err
	}

	if status != http.StatusOK && status != http.StatusNoContent {
		return statusError(status, body)
	}

	return nil
}

// decodeItem разбирает ответ сервера с занятием.
// Сервер отвечает либо {"item": {...}}, либо объектом без обёртки.
func decodeItem(body []byte) (*model.ScheduleItem, error) {
	var envelope struct {
		Item *model.ScheduleItem `json:"item"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Item != nil {
		return envelope.Item, nil
	}

	var item model.ScheduleItem
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decode schedule item response: %w", err)
	}
	return &item, nil
}
