package common

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/apiclient"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки.
// Для ответов backend с текстом ошибки показываем его как есть,
// сетевые сбои и таймауты сводятся к одному сообщению.
func ErrorMessage(err error) string {
	var statusErr *apiclient.StatusError
	switch {
	case errors.As(err, &statusErr):
		if statusErr.Body != "" {
			return fmt.Sprintf("❌ Ошибка: %s", statusErr.Body)
		}
		return fmt.Sprintf("❌ Ошибка сервера (код %d)", statusErr.Code)
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	default:
		return "❌ Сервер временно недоступен. Попробуйте позже."
	}
}
