package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Ошибки, на которые вызывающий код ветвится через errors.Is
var (
	// ErrConflict растение из каталога уже есть в саду (409)
	ErrConflict = errors.New("conflict")

	// ErrNotFound объект удален или не принадлежит пользователю (404)
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized токен недействителен или истек (401)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork запрос не дошел до сервера или ответ не получен
	ErrNetwork = errors.New("network failure")

	// ErrValidation сервер отклонил входные данные (400, 422)
	ErrValidation = errors.New("validation failed")
)

// APIError описывает ответ сервера с кодом ошибки
type APIError struct {
	// Err одна из sentinel ошибок пакета или nil для прочих статусов
	Err        error
	Message    string
	StatusCode int
}

// Error возвращает сообщение сервера, пригодное для показа пользователю
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap позволяет сопоставлять APIError с sentinel ошибками
func (e *APIError) Unwrap() error {
	return e.Err
}

// newAPIError сопоставляет HTTP статус с sentinel ошибкой
func newAPIError(status int, message string) *APIError {
	e := &APIError{StatusCode: status, Message: message}

	switch status {
	case http.StatusConflict:
		e.Err = ErrConflict
	case http.StatusNotFound:
		e.Err = ErrNotFound
	case http.StatusUnauthorized:
		e.Err = ErrUnauthorized
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge:
		e.Err = ErrValidation
	}

	return e
}
