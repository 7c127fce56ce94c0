package models

import "time"

// SavedPlant представляет растение в саду пользователя.
// PlantID == 0 означает пользовательское (custom) растение,
// ненулевой PlantID ссылается на запись внешнего каталога.
type SavedPlant struct {
	AddedAt                 time.Time  `json:"added_at"`
	LastWateredAt           *time.Time `json:"last_watered_at,omitempty"`
	Nickname                *string    `json:"nickname,omitempty"`
	ThumbnailURL            *string    `json:"thumbnail_url,omitempty"` // URL или data URI
	Notes                   *string    `json:"notes,omitempty"`
	WateringFrequencyDays   *int       `json:"watering_frequency_days,omitempty"`
	Watering                *string    `json:"watering,omitempty"`
	Sunlight                *string    `json:"sunlight,omitempty"`
	Cycle                   *string    `json:"cycle,omitempty"`
	CareLevel               *string    `json:"care_level,omitempty"`
	CommonName              string     `json:"common_name"`
	ScientificName          string     `json:"scientific_name"`
	ID                      int64      `json:"id"`
	PlantID                 int64      `json:"plant_id"`
	WateringReminderEnabled bool       `json:"watering_reminder_enabled"`
}

// IsCustom сообщает, создано ли растение пользователем вручную
func (p SavedPlant) IsCustom() bool {
	return p.PlantID == 0
}

// DisplayName возвращает nickname, если он задан, иначе common name
func (p SavedPlant) DisplayName() string {
	if p.Nickname != nil && *p.Nickname != "" {
		return *p.Nickname
	}
	return p.CommonName
}

// HasReminder сообщает, нужно ли держать для растения ежедневное напоминание
func (p SavedPlant) HasReminder() bool {
	return p.WateringReminderEnabled && p.WateringFrequencyDays != nil && *p.WateringFrequencyDays > 0
}

// NewPlant содержит данные для добавления растения в сад.
// Отображаемые поля каталожного растения передаются клиентом,
// сервер не обращается к каталогу повторно.
type NewPlant struct {
	ThumbnailURL            *string `json:"thumbnail_url,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
	Nickname                *string `json:"nickname,omitempty"`
	WateringFrequencyDays   *int    `json:"watering_frequency_days,omitempty"`
	Watering                *string `json:"watering,omitempty"`
	Sunlight                *string `json:"sunlight,omitempty"`
	Cycle                   *string `json:"cycle,omitempty"`
	CareLevel               *string `json:"care_level,omitempty"`
	CommonName              string  `json:"common_name"`
	ScientificName          string  `json:"scientific_name"`
	PlantID                 int64   `json:"plant_id"`
	WateringReminderEnabled bool    `json:"watering_reminder_enabled"`
}

// ToSavedPlant строит SavedPlant из запроса на добавление.
// ID и AddedAt назначает хранилище.
func (n NewPlant) ToSavedPlant() SavedPlant {
	p := SavedPlant{
		PlantID:                 n.PlantID,
		CommonName:              n.CommonName,
		ScientificName:          n.ScientificName,
		ThumbnailURL:            n.ThumbnailURL,
		Notes:                   n.Notes,
		Nickname:                n.Nickname,
		WateringReminderEnabled: n.WateringReminderEnabled,
		WateringFrequencyDays:   n.WateringFrequencyDays,
	}
	// Атрибуты ухода хранятся только для custom растений
	if n.PlantID == 0 {
		p.Watering = n.Watering
		p.Sunlight = n.Sunlight
		p.Cycle = n.Cycle
		p.CareLevel = n.CareLevel
	}
	return p
}
