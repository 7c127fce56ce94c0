package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/reminder"
	"github.com/iudanet/plantkeeper/internal/models"
)

// stopTimeout ограничивает ожидание выполняющихся заданий при остановке remind
const stopTimeout = 5 * time.Second

func (c *Cli) runRemindersList(ctx context.Context) error {
	plants, err := c.garden.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load garden: %w", err)
	}

	tod, err := c.reminders.DefaultTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to read reminder time: %w", err)
	}

	c.io.Println("=== Watering Reminders ===")
	c.io.Printf("Daily reminder time: %s\n", tod)
	c.io.Println()

	items := c.reminders.Items(plants)
	if len(items) == 0 {
		c.io.Println("No reminders yet.")
		c.io.Println("Use 'plantkeeper reminders enable <id> --frequency N' to get reminded.")
		return nil
	}

	for _, item := range items {
		marker := " "
		if item.IsOverdue() {
			marker = "!"
		}
		c.io.Printf("%s %-24s %-20s %s\n", marker, item.Plant.DisplayName(), item.StatusText(), item.FrequencyText())
		c.io.Printf("  ID: %d\n", item.Plant.ID)
	}

	return nil
}

func (c *Cli) runRemindersTime(ctx context.Context, value string) error {
	if value == "" {
		tod, err := c.reminders.DefaultTime(ctx)
		if err != nil {
			return fmt.Errorf("failed to read reminder time: %w", err)
		}
		c.io.Printf("Daily reminder time: %s\n", tod)
		return nil
	}

	tod, err := models.ParseTimeOfDay(value)
	if err != nil {
		return err
	}

	if err := c.reminders.SetDefaultTime(ctx, tod); err != nil {
		return fmt.Errorf("failed to save reminder time: %w", err)
	}

	// Взведенные напоминания переставляются на новое время
	plants, err := c.garden.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load garden: %w", err)
	}
	if err := c.reminders.Reconcile(ctx, plants); err != nil {
		return fmt.Errorf("failed to reschedule reminders: %w", err)
	}

	c.io.Printf("✓ Daily reminder time set to %s\n", tod)
	return nil
}

func (c *Cli) runRemindersEnable(ctx context.Context, id int64, frequency int) error {
	enabled := true
	update := models.CatalogPlantUpdate{WateringReminderEnabled: &enabled}
	if frequency > 0 {
		update.WateringFrequencyDays = &frequency
	}

	plant, err := c.garden.Update(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to enable reminder: %w", err)
	}

	if !plant.HasReminder() {
		c.io.Printf("Reminder enabled for %s, but it has no watering frequency. Use --frequency to set one.\n", plant.DisplayName())
		return nil
	}

	item := models.ReminderItem{Plant: *plant}
	c.io.Printf("✓ Reminder enabled for %s: %s\n", plant.DisplayName(), item.FrequencyText())
	return nil
}

func (c *Cli) runRemindersDisable(ctx context.Context, id int64) error {
	disabled := false

	plant, err := c.garden.Update(ctx, id, models.CatalogPlantUpdate{WateringReminderEnabled: &disabled})
	if err != nil {
		return fmt.Errorf("failed to disable reminder: %w", err)
	}

	c.io.Printf("✓ Reminder disabled for %s\n", plant.DisplayName())
	return nil
}

// runRemind держит напоминания взведенными до отмены ctx
func (c *Cli) runRemind(ctx context.Context) error {
	plants, err := c.garden.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load garden: %w", err)
	}

	if err := c.reminders.Reconcile(ctx, plants); err != nil {
		// Часть напоминаний могла взвестись, продолжаем
		c.logger.WarnContext(ctx, "some reminders were not scheduled", slog.Any("error", err))
	}

	tod, err := c.reminders.DefaultTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to read reminder time: %w", err)
	}

	items := c.reminders.Items(plants)
	c.io.Printf("Watching %d reminder(s), daily at %s. Press Ctrl+C to stop.\n", len(items), tod)

	c.alarms.Start()
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()

	if err := c.alarms.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop reminders: %w", err)
	}

	c.io.Println("Reminders stopped.")
	return nil
}

// printNotification выводит сработавшее напоминание
func (c *Cli) printNotification(n reminder.Notification) {
	c.io.Printf("\n[%s] %s %s\n", n.At.Format(time.TimeOnly), n.Title, n.Body)
	c.logger.Info("reminder delivered", slog.Int64("plant_id", n.ID))
}
