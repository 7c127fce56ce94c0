package api

import (
	"fmt"
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
)

// UpdatePlantRequest представляет частичное обновление растения на проводе.
// Kind определяет, какие поля допустимы: "catalog" или "custom".
type UpdatePlantRequest struct {
	LastWateredAt           *time.Time        `json:"last_watered_at,omitempty"`
	Notes                   *string           `json:"notes,omitempty"`
	Nickname                *string           `json:"nickname,omitempty"`
	ThumbnailURL            *string           `json:"thumbnail_url,omitempty"`
	WateringReminderEnabled *bool             `json:"watering_reminder_enabled,omitempty"`
	WateringFrequencyDays   *int              `json:"watering_frequency_days,omitempty"`
	CommonName              *string           `json:"common_name,omitempty"`
	ScientificName          *string           `json:"scientific_name,omitempty"`
	Watering                *string           `json:"watering,omitempty"`
	Sunlight                *string           `json:"sunlight,omitempty"`
	Cycle                   *string           `json:"cycle,omitempty"`
	CareLevel               *string           `json:"care_level,omitempty"`
	Kind                    models.UpdateKind `json:"kind"`
}

// NewUpdatePlantRequest кодирует вариант обновления для отправки на сервер
func NewUpdatePlantRequest(u models.PlantUpdate) UpdatePlantRequest {
	c := u.Common()
	req := UpdatePlantRequest{
		Kind:                    u.Kind(),
		LastWateredAt:           c.LastWateredAt,
		Notes:                   c.Notes,
		Nickname:                c.Nickname,
		ThumbnailURL:            c.ThumbnailURL,
		WateringReminderEnabled: c.WateringReminderEnabled,
		WateringFrequencyDays:   c.WateringFrequencyDays,
	}

	if custom, ok := models.AsCustom(u); ok {
		req.CommonName = custom.CommonName
		req.ScientificName = custom.ScientificName
		req.Watering = custom.Watering
		req.Sunlight = custom.Sunlight
		req.Cycle = custom.Cycle
		req.CareLevel = custom.CareLevel
	}

	return req
}

// ToUpdate декодирует запрос в вариант обновления.
// Поля custom в запросе вида "catalog" считаются ошибкой, а не молча отбрасываются.
func (r UpdatePlantRequest) ToUpdate() (models.PlantUpdate, error) {
	common := models.CatalogPlantUpdate{
		LastWateredAt:           r.LastWateredAt,
		Notes:                   r.Notes,
		Nickname:                r.Nickname,
		ThumbnailURL:            r.ThumbnailURL,
		WateringReminderEnabled: r.WateringReminderEnabled,
		WateringFrequencyDays:   r.WateringFrequencyDays,
	}

	switch r.Kind {
	case models.UpdateKindCatalog, "":
		if r.hasCustomFields() {
			return nil, fmt.Errorf("name and care attributes require kind %q", models.UpdateKindCustom)
		}
		return common, nil
	case models.UpdateKindCustom:
		return models.CustomPlantUpdate{
			CatalogPlantUpdate: common,
			CommonName:         r.CommonName,
			ScientificName:     r.ScientificName,
			Watering:           r.Watering,
			Sunlight:           r.Sunlight,
			Cycle:              r.Cycle,
			CareLevel:          r.CareLevel,
		}, nil
	default:
		return nil, fmt.Errorf("unknown update kind %q", r.Kind)
	}
}

func (r UpdatePlantRequest) hasCustomFields() bool {
	return r.CommonName != nil || r.ScientificName != nil || r.Watering != nil ||
		r.Sunlight != nil || r.Cycle != nil || r.CareLevel != nil
}
