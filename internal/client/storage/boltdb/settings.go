package boltdb

import (
	"context"
	"fmt"

	"github.com/iudanet/plantkeeper/internal/models"
)

var reminderTimeKey = []byte("reminder_time")

// SaveReminderTime сохраняет время ежедневного напоминания
func (s *Storage) SaveReminderTime(ctx context.Context, t models.TimeOfDay) error {
	if !t.Valid() {
		return fmt.Errorf("invalid time of day: %s", t)
	}
	return s.putJSON(bucketSettings, reminderTimeKey, t)
}

// GetReminderTime возвращает сохраненное время или models.DefaultReminderTime
func (s *Storage) GetReminderTime(ctx context.Context) (models.TimeOfDay, error) {
	var stored models.TimeOfDay

	found, err := s.getJSON(bucketSettings, reminderTimeKey, &stored)
	switch {
	case err != nil && !found:
		return models.DefaultReminderTime, fmt.Errorf("failed to get reminder time: %w", err)
	case err != nil, !found, !stored.Valid():
		// испорченное значение не ломает напоминания
		return models.DefaultReminderTime, nil
	}

	return stored, nil
}
