package apiclient

import "fmt"

// StatusError - ответ backend со статусом вне 2xx.
// Тело ответа сохраняется как есть: для создания занятия сервер
// возвращает в нём текст ошибки, который показывается пользователю.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Code, e.Body)
}

// statusError создаёт StatusError из ответа сервера
func statusError(code int, body []byte) *StatusError {
	return &StatusError{Code: code, Body: string(body)}
}
