package validation

import (
	"errors"
	"fmt"
)

// ErrInvalid сопоставляется через errors.Is с любой ошибкой валидации
var ErrInvalid = errors.New("invalid input")

// FieldError описывает нарушение правила для конкретного поля
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Is позволяет проверять errors.Is(err, ErrInvalid)
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field, format string, args ...any) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}
