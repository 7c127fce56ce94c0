package models

import "time"

// UpdateKind различает варианты частичного обновления растения
type UpdateKind string

const (
	// UpdateKindCatalog разрешает менять только пользовательские поля
	UpdateKindCatalog UpdateKind = "catalog"
	// UpdateKindCustom дополнительно меняет название и атрибуты ухода
	UpdateKindCustom UpdateKind = "custom"
)

// PlantUpdate описывает частичное обновление SavedPlant.
// Реализуется только CatalogPlantUpdate и CustomPlantUpdate.
type PlantUpdate interface {
	Kind() UpdateKind
	// Apply применяет заданные (non-nil) поля к растению
	Apply(p *SavedPlant)
	// Common возвращает поля, общие для обоих вариантов
	Common() CatalogPlantUpdate
}

// CatalogPlantUpdate обновляет поля, допустимые для любого растения.
// nil означает "не менять".
type CatalogPlantUpdate struct {
	LastWateredAt           *time.Time `json:"last_watered_at,omitempty"`
	Notes                   *string    `json:"notes,omitempty"`
	Nickname                *string    `json:"nickname,omitempty"`
	ThumbnailURL            *string    `json:"thumbnail_url,omitempty"`
	WateringReminderEnabled *bool      `json:"watering_reminder_enabled,omitempty"`
	WateringFrequencyDays   *int       `json:"watering_frequency_days,omitempty"`
}

// Kind implements PlantUpdate
func (u CatalogPlantUpdate) Kind() UpdateKind { return UpdateKindCatalog }

// Common implements PlantUpdate
func (u CatalogPlantUpdate) Common() CatalogPlantUpdate { return u }

// Apply implements PlantUpdate
func (u CatalogPlantUpdate) Apply(p *SavedPlant) {
	if u.Notes != nil {
		p.Notes = emptyToNil(u.Notes)
	}
	if u.Nickname != nil {
		p.Nickname = emptyToNil(u.Nickname)
	}
	if u.ThumbnailURL != nil {
		p.ThumbnailURL = emptyToNil(u.ThumbnailURL)
	}
	if u.WateringReminderEnabled != nil {
		p.WateringReminderEnabled = *u.WateringReminderEnabled
	}
	if u.WateringFrequencyDays != nil {
		v := *u.WateringFrequencyDays
		p.WateringFrequencyDays = &v
	}
	if u.LastWateredAt != nil {
		v := *u.LastWateredAt
		p.LastWateredAt = &v
	}
}

// CustomPlantUpdate обновляет custom растение (PlantID == 0)
type CustomPlantUpdate struct {
	CommonName     *string `json:"common_name,omitempty"`
	ScientificName *string `json:"scientific_name,omitempty"`
	Watering       *string `json:"watering,omitempty"`
	Sunlight       *string `json:"sunlight,omitempty"`
	Cycle          *string `json:"cycle,omitempty"`
	CareLevel      *string `json:"care_level,omitempty"`
	CatalogPlantUpdate
}

// Kind implements PlantUpdate
func (u CustomPlantUpdate) Kind() UpdateKind { return UpdateKindCustom }

// Common implements PlantUpdate
func (u CustomPlantUpdate) Common() CatalogPlantUpdate { return u.CatalogPlantUpdate }

// Apply implements PlantUpdate
func (u CustomPlantUpdate) Apply(p *SavedPlant) {
	u.CatalogPlantUpdate.Apply(p)

	if u.CommonName != nil {
		p.CommonName = *u.CommonName
	}
	if u.ScientificName != nil {
		p.ScientificName = *u.ScientificName
	}
	if u.Watering != nil {
		p.Watering = emptyToNil(u.Watering)
	}
	if u.Sunlight != nil {
		p.Sunlight = emptyToNil(u.Sunlight)
	}
	if u.Cycle != nil {
		p.Cycle = emptyToNil(u.Cycle)
	}
	if u.CareLevel != nil {
		p.CareLevel = emptyToNil(u.CareLevel)
	}
}

// AsCustom возвращает custom-вариант обновления, переданный по значению или по указателю
func AsCustom(u PlantUpdate) (CustomPlantUpdate, bool) {
	switch v := u.(type) {
	case CustomPlantUpdate:
		return v, true
	case *CustomPlantUpdate:
		if v != nil {
			return *v, true
		}
	}
	return CustomPlantUpdate{}, false
}

// emptyToNil копирует строку; пустая строка очищает поле
func emptyToNil(s *string) *string {
	if *s == "" {
		return nil
	}
	v := *s
	return &v
}
