package models

import (
	"fmt"
	"sort"
	"time"
)

// TimeOfDay задает время суток для ежедневного напоминания
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DefaultReminderTime используется, пока пользователь не выбрал другое время
var DefaultReminderTime = TimeOfDay{Hour: 9, Minute: 0}

// ParseTimeOfDay разбирает строку формата HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String возвращает время в формате HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Valid проверяет диапазоны часов и минут
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// On возвращает момент времени t в указанный день (в часовом поясе day)
func (t TimeOfDay) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// ReminderItem связывает растение с количеством дней до следующего полива.
// Вычисляется на лету и нигде не хранится.
type ReminderItem struct {
	Plant        SavedPlant
	DaysUntilDue int
}

// DaysUntilDue считает дни до полива: (LastWateredAt или AddedAt) + частота − сегодня.
// Сравниваются только календарные даты в часовом поясе today.
// Отрицательное значение означает просрочку.
func DaysUntilDue(p SavedPlant, today time.Time) int {
	freq := 0
	if p.WateringFrequencyDays != nil {
		freq = *p.WateringFrequencyDays
	}

	base := p.AddedAt
	if p.LastWateredAt != nil {
		base = *p.LastWateredAt
	}

	loc := today.Location()
	due := civilDate(base.In(loc)).AddDate(0, 0, freq)
	now := civilDate(today)

	return int(due.Sub(now).Hours() / 24)
}

// civilDate переносит календарную дату в UTC, чтобы переходы на летнее время не влияли на разницу
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StatusText возвращает человекочитаемый статус полива
func (r ReminderItem) StatusText() string {
	switch {
	case r.DaysUntilDue < 0:
		overdue := -r.DaysUntilDue
		if overdue == 1 {
			return "Overdue by 1 day!"
		}
		return fmt.Sprintf("Overdue by %d days!", overdue)
	case r.DaysUntilDue == 0:
		return "Due today!"
	case r.DaysUntilDue == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("Due in %d days", r.DaysUntilDue)
	}
}

// FrequencyText описывает частоту полива
func (r ReminderItem) FrequencyText() string {
	if r.Plant.WateringFrequencyDays == nil {
		return ""
	}
	if *r.Plant.WateringFrequencyDays == 1 {
		return "Every day"
	}
	return fmt.Sprintf("Every %d days", *r.Plant.WateringFrequencyDays)
}

// IsOverdue сообщает, просрочен ли полив
func (r ReminderItem) IsOverdue() bool {
	return r.DaysUntilDue < 0
}

// BuildReminders отбирает растения с включенными напоминаниями
// и сортирует их по DaysUntilDue (самые просроченные первыми)
func BuildReminders(plants []SavedPlant, today time.Time) []ReminderItem {
	items := make([]ReminderItem, 0, len(plants))
	for _, p := range plants {
		if !p.HasReminder() {
			continue
		}
		items = append(items, ReminderItem{
			Plant:        p,
			DaysUntilDue: DaysUntilDue(p, today),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilDue < items[j].DaysUntilDue
	})

	return items
}
