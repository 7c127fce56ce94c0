package models

import "time"

const (
	// MaxImageBytes ограничивает размер фотографии (5 MB исходных байт)
	MaxImageBytes = 5 * 1024 * 1024

	// MaxImageDataLen - длина base64 от MaxImageBytes плюс запас на префикс data URI
	MaxImageDataLen = (MaxImageBytes+2)/3*4 + 64
)

// Photo представляет фотографию растения из сада пользователя
type Photo struct {
	TakenAt     time.Time `json:"taken_at"`
	Caption     *string   `json:"caption,omitempty"`
	ImageData   string    `json:"image_data"` // data URI (base64)
	ID          int64     `json:"id"`
	UserPlantID int64     `json:"user_plant_id"`
}

// NewPhoto содержит данные для загрузки фотографии
type NewPhoto struct {
	Caption   *string `json:"caption,omitempty"`
	ImageData string  `json:"image_data"`
}
