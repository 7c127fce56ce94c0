package storage

import (
	"context"

	"github.com/iudanet/plantkeeper/internal/models"
)

// SettingsStorage хранит настройки клиента
type SettingsStorage interface {
	// GetReminderTime returns models.DefaultReminderTime if nothing was saved
	GetReminderTime(ctx context.Context) (models.TimeOfDay, error)

	// SaveReminderTime stores the time of day for daily reminders
	SaveReminderTime(ctx context.Context, t models.TimeOfDay) error
}
