package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/pkg/api"
)

//go:generate moq -out garden_api_mock.go . GardenAPI

// GardenAPI описывает серверные операции над садом пользователя
type GardenAPI interface {
	ListPlants(ctx context.Context) ([]models.SavedPlant, error)
	AddPlant(ctx context.Context, p models.NewPlant) (*models.SavedPlant, error)
	UpdatePlant(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error)
	DeletePlant(ctx context.Context, id int64) error
	MarkWatered(ctx context.Context, id int64) (*models.SavedPlant, error)
	ListPhotos(ctx context.Context, plantID int64) ([]models.Photo, error)
	AddPhoto(ctx context.Context, plantID int64, p models.NewPhoto) (*models.Photo, error)
	DeletePhoto(ctx context.Context, plantID, photoID int64) error
}

var _ GardenAPI = (*Client)(nil)

// ListPlants возвращает растения сада, отсортированные по названию
func (c *Client) ListPlants(ctx context.Context) ([]models.SavedPlant, error) {
	var plants []models.SavedPlant
	if err := c.doRequest(ctx, http.MethodGet, "/api/garden", nil, &plants, true); err != nil {
		return nil, fmt.Errorf("list plants request failed: %w", err)
	}
	if plants == nil {
		plants = []models.SavedPlant{}
	}
	return plants, nil
}

// AddPlant добавляет растение в сад
func (c *Client) AddPlant(ctx context.Context, p models.NewPlant) (*models.SavedPlant, error) {
	var plant models.SavedPlant
	if err := c.doRequest(ctx, http.MethodPost, "/api/garden", p, &plant, true); err != nil {
		return nil, fmt.Errorf("add plant request failed: %w", err)
	}
	return &plant, nil
}

// UpdatePlant отправляет только заданные поля варианта обновления
func (c *Client) UpdatePlant(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
	var plant models.SavedPlant
	path := fmt.Sprintf("/api/garden/%d", id)
	if err := c.doRequest(ctx, http.MethodPut, path, api.NewUpdatePlantRequest(u), &plant, true); err != nil {
		return nil, fmt.Errorf("update plant request failed: %w", err)
	}
	return &plant, nil
}

// DeletePlant удаляет растение вместе с фотографиями
func (c *Client) DeletePlant(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/garden/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete plant request failed: %w", err)
	}
	return nil
}

// MarkWatered отмечает полив; время полива назначает сервер
func (c *Client) MarkWatered(ctx context.Context, id int64) (*models.SavedPlant, error) {
	var plant models.SavedPlant
	path := fmt.Sprintf("/api/garden/%d/watered", id)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, &plant, true); err != nil {
		return nil, fmt.Errorf("mark watered request failed: %w", err)
	}
	return &plant, nil
}

// ListPhotos возвращает фотографии растения, новые первыми
func (c *Client) ListPhotos(ctx context.Context, plantID int64) ([]models.Photo, error) {
	var photos []models.Photo
	path := fmt.Sprintf("/api/garden/%d/photos", plantID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &photos, true); err != nil {
		return nil, fmt.Errorf("list photos request failed: %w", err)
	}
	if photos == nil {
		photos = []models.Photo{}
	}
	return photos, nil
}

// AddPhoto загружает фотографию растения
func (c *Client) AddPhoto(ctx context.Context, plantID int64, p models.NewPhoto) (*models.Photo, error) {
	var photo models.Photo
	path := fmt.Sprintf("/api/garden/%d/photos", plantID)
	if err := c.doRequest(ctx, http.MethodPost, path, p, &photo, true); err != nil {
		return nil, fmt.Errorf("add photo request failed: %w", err)
	}
	return &photo, nil
}

// DeletePhoto удаляет фотографию
func (c *Client) DeletePhoto(ctx context.Context, plantID, photoID int64) error {
	path := fmt.Sprintf("/api/garden/%d/photos/%d", plantID, photoID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete photo request failed: %w", err)
	}
	return nil
}
