package reminder

import (
	"context"
	"time"
)

//go:generate moq -out notifier_mock.go . Notifier

// Alarm описывает ежедневное напоминание о поливе.
// ID совпадает с ID растения в саду, поэтому повторный Arm заменяет прежний.
type Alarm struct {
	FirstFire time.Time
	Title     string
	Body      string
	ID        int64
}

// Notifier абстрагирует системный механизм локальных уведомлений
type Notifier interface {
	// RequestPermission возвращает false, если пользователь запретил уведомления
	RequestPermission(ctx context.Context) (bool, error)

	// Arm взводит напоминание, повторяющееся каждый день во время FirstFire
	Arm(ctx context.Context, alarm Alarm) error

	// Cancel снимает напоминание; отсутствие напоминания не ошибка
	Cancel(id int64) error

	// Armed возвращает ID взведенных напоминаний
	Armed() []int64
}
