package validation

import (
	"strings"

	"github.com/iudanet/plantkeeper/internal/models"
)

// MaxFrequencyDays ограничивает частоту полива разумным значением
const MaxFrequencyDays = 365

// ValidateFrequency проверяет, что частота полива положительна
func ValidateFrequency(days *int) error {
	if days == nil {
		return nil
	}
	if *days <= 0 {
		return invalid("watering_frequency_days", "watering frequency must be a positive number of days")
	}
	if *days > MaxFrequencyDays {
		return invalid("watering_frequency_days", "watering frequency must not exceed %d days", MaxFrequencyDays)
	}
	return nil
}

// ValidateNewPlant проверяет данные нового растения до отправки на сервер
func ValidateNewPlant(p models.NewPlant) error {
	if p.PlantID < 0 {
		return invalid("plant_id", "plant id cannot be negative")
	}
	if strings.TrimSpace(p.CommonName) == "" {
		return invalid("common_name", "common name is required")
	}
	if p.ThumbnailURL != nil && len(*p.ThumbnailURL) > models.MaxImageDataLen {
		return invalid("thumbnail_url", "image is too large, maximum size is 5 MB")
	}
	if p.WateringReminderEnabled && p.WateringFrequencyDays == nil {
		return invalid("watering_frequency_days", "watering frequency is required when reminders are enabled")
	}
	return ValidateFrequency(p.WateringFrequencyDays)
}

// ValidatePlantUpdate проверяет частичное обновление.
// Если известно целевое растение, custom-обновление каталожного растения отклоняется.
func ValidatePlantUpdate(u models.PlantUpdate, target *models.SavedPlant) error {
	switch v := u.(type) {
	case nil:
		return invalid("kind", "update is empty")
	case *models.CatalogPlantUpdate:
		if v == nil {
			return invalid("kind", "update is empty")
		}
	case *models.CustomPlantUpdate:
		if v == nil {
			return invalid("kind", "update is empty")
		}
	}

	if err := ValidateFrequency(u.Common().WateringFrequencyDays); err != nil {
		return err
	}
	if thumb := u.Common().ThumbnailURL; thumb != nil && len(*thumb) > models.MaxImageDataLen {
		return invalid("thumbnail_url", "image is too large, maximum size is 5 MB")
	}

	custom, ok := models.AsCustom(u)
	if !ok {
		return nil
	}

	if target != nil && !target.IsCustom() {
		return invalid("kind", "name and care attributes can only be changed for custom plants")
	}
	if custom.CommonName != nil && strings.TrimSpace(*custom.CommonName) == "" {
		return invalid("common_name", "common name cannot be empty")
	}

	return nil
}

// ValidatePhoto проверяет фотографию. Размер оценивается по длине base64 строки.
func ValidatePhoto(p models.NewPhoto) error {
	if strings.TrimSpace(p.ImageData) == "" {
		return invalid("image_data", "image data is required")
	}
	if len(p.ImageData) > models.MaxImageDataLen {
		return invalid("image_data", "image is too large, maximum size is 5 MB")
	}
	return nil
}
