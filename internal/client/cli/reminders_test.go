package cli

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/plantkeeper/internal/client/reminder"
	"github.com/iudanet/plantkeeper/internal/models"
)

func fern() models.SavedPlant {
	return models.SavedPlant{
		ID:                      3,
		CommonName:              "Fern",
		AddedAt:                 testNow,
		WateringReminderEnabled: true,
		WateringFrequencyDays:   intPtr(1),
	}
}

func TestCli_runRemindersList(t *testing.T) {
	tc := newTestCli(t)
	plants := []models.SavedPlant{fern(), rose(), basil()}
	tc.garden.GetFunc = func(ctx context.Context) ([]models.SavedPlant, error) { return plants, nil }
	tc.reminders.DefaultTimeFunc = func(ctx context.Context) (models.TimeOfDay, error) {
		return models.DefaultReminderTime, nil
	}
	tc.reminders.ItemsFunc = func(plants []models.SavedPlant) []models.ReminderItem {
		return models.BuildReminders(plants, testNow)
	}

	require.NoError(t, tc.cli.runRemindersList(context.Background()))

	out := tc.out.String()
	assert.Contains(t, out, "Daily reminder time: 09:00")
	assert.Contains(t, out, "Overdue by 1 day!")
	assert.Contains(t, out, "Due tomorrow")
	assert.Contains(t, out, "Every day")
	assert.NotContains(t, out, "Basil")
	// Самые просроченные первыми
	assert.Less(t, strings.Index(out, "Rosie"), strings.Index(out, "Fern"))
	assert.True(t, strings.Contains(out, "! Rosie"))
}

func TestCli_runRemindersList_Empty(t *testing.T) {
	tc := newTestCli(t)
	tc.garden.GetFunc = func(ctx context.Context) ([]models.SavedPlant, error) {
		return []models.SavedPlant{basil()}, nil
	}
	tc.reminders.DefaultTimeFunc = func(ctx context.Context) (models.TimeOfDay, error) {
		return models.DefaultReminderTime, nil
	}
	tc.reminders.ItemsFunc = func(plants []models.SavedPlant) []models.ReminderItem {
		return models.BuildReminders(plants, testNow)
	}

	require.NoError(t, tc.cli.runRemindersList(context.Background()))
	assert.Contains(t, tc.out.String(), "No reminders yet.")
}

func TestCli_runRemindersTime(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		tc := newTestCli(t)
		tc.reminders.DefaultTimeFunc = func(ctx context.Context) (models.TimeOfDay, error) {
			return models.TimeOfDay{Hour: 7, Minute: 5}, nil
		}

		require.NoError(t, tc.cli.runRemindersTime(context.Background(), ""))
		assert.Contains(t, tc.out.String(), "07:05")
		assert.Empty(t, tc.reminders.SetDefaultTimeCalls())
	})

	t.Run("set reschedules", func(t *testing.T) {
		tc := newTestCli(t)
		plants := []models.SavedPlant{rose()}
		tc.reminders.SetDefaultTimeFunc = func(ctx context.Context, tod models.TimeOfDay) error { return nil }
		tc.reminders.ReconcileFunc = func(ctx context.Context, plants []models.SavedPlant) error { return nil }
		tc.garden.GetFunc = func(ctx context.Context) ([]models.SavedPlant, error) { return plants, nil }

		require.NoError(t, tc.cli.runRemindersTime(context.Background(), "18:30"))

		require.Len(t, tc.reminders.SetDefaultTimeCalls(), 1)
		assert.Equal(t, models.TimeOfDay{Hour: 18, Minute: 30}, tc.reminders.SetDefaultTimeCalls()[0].Tod)
		require.Len(t, tc.reminders.ReconcileCalls(), 1)
		assert.Equal(t, plants, tc.reminders.ReconcileCalls()[0].Plants)
		assert.Contains(t, tc.out.String(), "set to 18:30")
	})

	t.Run("invalid", func(t *testing.T) {
		tc := newTestCli(t)

		require.Error(t, tc.cli.runRemindersTime(context.Background(), "25:00"))
		require.Error(t, tc.cli.runRemindersTime(context.Background(), "9am"))
		assert.Empty(t, tc.reminders.SetDefaultTimeCalls())
	})
}

func TestCli_runRemindersEnable(t *testing.T) {
	tc := newTestCli(t)
	tc.garden.UpdateFunc = func(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
		p := basil()
		u.Apply(&p)
		return &p, nil
	}

	require.NoError(t, tc.cli.runRemindersEnable(context.Background(), 2, 4))

	update, ok := tc.garden.UpdateCalls()[0].U.(models.CatalogPlantUpdate)
	require.True(t, ok)
	assert.True(t, *update.WateringReminderEnabled)
	assert.Equal(t, 4, *update.WateringFrequencyDays)
	assert.Contains(t, tc.out.String(), "Reminder enabled for Basil: Every 4 days")
}

func TestCli_runRemindersEnable_NoFrequency(t *testing.T) {
	tc := newTestCli(t)
	tc.garden.UpdateFunc = func(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
		p := basil()
		u.Apply(&p)
		return &p, nil
	}

	require.NoError(t, tc.cli.runRemindersEnable(context.Background(), 2, 0))

	update := tc.garden.UpdateCalls()[0].U.(models.CatalogPlantUpdate)
	assert.Nil(t, update.WateringFrequencyDays)
	assert.Contains(t, tc.out.String(), "Use --frequency")
}

func TestCli_runRemindersDisable(t *testing.T) {
	tc := newTestCli(t)
	tc.garden.UpdateFunc = func(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
		p := rose()
		u.Apply(&p)
		return &p, nil
	}

	require.NoError(t, tc.cli.runRemindersDisable(context.Background(), 1))

	update := tc.garden.UpdateCalls()[0].U.(models.CatalogPlantUpdate)
	assert.False(t, *update.WateringReminderEnabled)
	assert.Nil(t, update.Notes)
	assert.Contains(t, tc.out.String(), "Reminder disabled for Rosie")
}

type fakeAlarms struct {
	stopErr error
	started atomic.Bool
	stopped atomic.Bool
}

func (f *fakeAlarms) Start() { f.started.Store(true) }

func (f *fakeAlarms) Stop(_ context.Context) error {
	f.stopped.Store(true)
	return f.stopErr
}

func TestCli_runRemind(t *testing.T) {
	tc := newTestCli(t)
	alarms := &fakeAlarms{}
	tc.cli.alarms = alarms

	tc.garden.GetFunc = func(ctx context.Context) ([]models.SavedPlant, error) {
		return []models.SavedPlant{rose(), fern()}, nil
	}
	tc.reminders.ReconcileFunc = func(ctx context.Context, plants []models.SavedPlant) error {
		return errors.New("plant 3: permission error")
	}
	tc.reminders.DefaultTimeFunc = func(ctx context.Context) (models.TimeOfDay, error) {
		return models.DefaultReminderTime, nil
	}
	tc.reminders.ItemsFunc = func(plants []models.SavedPlant) []models.ReminderItem {
		return models.BuildReminders(plants, testNow)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tc.cli.runRemind(ctx) }()

	require.Eventually(t, alarms.started.Load, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runRemind did not stop")
	}

	assert.True(t, alarms.stopped.Load())
	assert.Contains(t, tc.out.String(), "Watching 2 reminder(s), daily at 09:00")
	assert.Contains(t, tc.out.String(), "Reminders stopped.")
}

func TestCli_printNotification(t *testing.T) {
	tc := newTestCli(t)

	tc.cli.printNotification(reminder.Notification{
		ID:    1,
		Title: reminder.AlarmTitle,
		Body:  "Rosie needs watering today.",
		At:    time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local),
	})

	assert.Contains(t, tc.out.String(), "[09:00:00] Time to water! Rosie needs watering today.")
}
