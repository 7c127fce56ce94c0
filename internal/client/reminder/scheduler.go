// Package reminder планирует ежедневные напоминания о поливе
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/internal/models"
)

// AlarmTitle заголовок уведомления о поливе
const AlarmTitle = "Time to water!"

// Scheduler держит по одному ежедневному напоминанию на растение
type Scheduler struct {
	notifier Notifier
	settings storage.SettingsStorage
	logger   *slog.Logger
	now      func() time.Time
	mu       sync.Mutex
}

// NewScheduler создает планировщик напоминаний
func NewScheduler(notifier Notifier, settings storage.SettingsStorage, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// NextFire возвращает ближайший момент tod: сегодня, если он еще впереди, иначе завтра
func NextFire(now time.Time, tod models.TimeOfDay) time.Time {
	today := tod.On(now)
	if today.After(now) {
		return today
	}
	return tod.On(now.AddDate(0, 0, 1))
}

// Schedule взводит напоминание для растения, заменяя существующее.
// Если уведомления запрещены, ничего не делает.
func (s *Scheduler) Schedule(ctx context.Context, plantID int64, label string, frequencyDays int, tod models.TimeOfDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.scheduleLocked(ctx, plantID, label, frequencyDays, tod)
}

func (s *Scheduler) scheduleLocked(ctx context.Context, plantID int64, label string, frequencyDays int, tod models.TimeOfDay) error {
	if frequencyDays <= 0 {
		return fmt.Errorf("watering frequency must be positive, got %d", frequencyDays)
	}
	if !tod.Valid() {
		return fmt.Errorf("invalid reminder time %s", tod)
	}

	if err := s.notifier.Cancel(plantID); err != nil {
		return fmt.Errorf("failed to cancel previous reminder: %w", err)
	}

	granted, err := s.notifier.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("failed to request notification permission: %w", err)
	}
	if !granted {
		s.logger.InfoContext(ctx, "notification permission denied, reminder not scheduled",
			slog.Int64("plant_id", plantID))
		return nil
	}

	alarm := Alarm{
		ID:        plantID,
		Title:     AlarmTitle,
		Body:      fmt.Sprintf("%s needs watering today.", label),
		FirstFire: NextFire(s.now(), tod),
	}

	if err := s.notifier.Arm(ctx, alarm); err != nil {
		return fmt.Errorf("failed to arm reminder: %w", err)
	}

	s.logger.DebugContext(ctx, "reminder scheduled",
		slog.Int64("plant_id", plantID),
		slog.Int("frequency_days", frequencyDays),
		slog.Time("first_fire", alarm.FirstFire))

	return nil
}

// Cancel снимает напоминание растения. Повторный вызов ничего не меняет.
func (s *Scheduler) Cancel(plantID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.notifier.Cancel(plantID); err != nil {
		return fmt.Errorf("failed to cancel reminder: %w", err)
	}
	return nil
}

// DefaultTime возвращает время ежедневных напоминаний
func (s *Scheduler) DefaultTime(ctx context.Context) (models.TimeOfDay, error) {
	return s.settings.GetReminderTime(ctx)
}

// SetDefaultTime сохраняет время ежедневных напоминаний.
// Уже взведенные напоминания переставляет Reconcile.
func (s *Scheduler) SetDefaultTime(ctx context.Context, tod models.TimeOfDay) error {
	if !tod.Valid() {
		return fmt.Errorf("invalid reminder time %s", tod)
	}
	return s.settings.SaveReminderTime(ctx, tod)
}

// Reconcile приводит напоминания в соответствие с садом: взводит для растений
// с включенным напоминанием и частотой, снимает все остальные.
func (s *Scheduler) Reconcile(ctx context.Context, plants []models.SavedPlant) error {
	tod, err := s.DefaultTime(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read reminder time, using default", slog.Any("error", err))
		tod = models.DefaultReminderTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[int64]struct{})
	var errs []error

	for _, p := range plants {
		if !p.HasReminder() {
			continue
		}
		wanted[p.ID] = struct{}{}
		if err := s.scheduleLocked(ctx, p.ID, p.DisplayName(), *p.WateringFrequencyDays, tod); err != nil {
			errs = append(errs, fmt.Errorf("plant %d: %w", p.ID, err))
		}
	}

	for _, id := range s.notifier.Armed() {
		if _, ok := wanted[id]; ok {
			continue
		}
		if err := s.notifier.Cancel(id); err != nil {
			errs = append(errs, fmt.Errorf("plant %d: %w", id, err))
		}
	}

	return errors.Join(errs...)
}

// Items возвращает список напоминаний, самые просроченные первыми
func (s *Scheduler) Items(plants []models.SavedPlant) []models.ReminderItem {
	return models.BuildReminders(plants, s.now())
}
