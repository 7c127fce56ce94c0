package storage

import (
	"context"
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
)

// GardenStorage defines interface for saved plant persistence.
// Every method is scoped to a user: plants of other users behave as missing.
type GardenStorage interface {
	// ListPlants returns user's plants ordered by common name
	ListPlants(ctx context.Context, userID string) ([]models.SavedPlant, error)

	// GetPlant returns ErrPlantNotFound if plant doesn't exist
	GetPlant(ctx context.Context, userID string, id int64) (*models.SavedPlant, error)

	// CreatePlant assigns ID and AddedAt
	// Returns ErrDuplicatePlant for a second copy of the same catalog plant
	CreatePlant(ctx context.Context, userID string, plant *models.SavedPlant) error

	// UpdatePlant persists all mutable fields of the plant
	UpdatePlant(ctx context.Context, userID string, plant *models.SavedPlant) error

	// DeletePlant removes plant and its photos
	DeletePlant(ctx context.Context, userID string, id int64) error

	// MarkWatered sets last watered time and returns updated plant
	MarkWatered(ctx context.Context, userID string, id int64, at time.Time) (*models.SavedPlant, error)
}

// PhotoStorage defines interface for plant photo persistence
type PhotoStorage interface {
	// ListPhotos returns photos newest first
	ListPhotos(ctx context.Context, userID string, plantID int64) ([]models.Photo, error)

	// CreatePhoto assigns ID; TakenAt must be set by caller
	CreatePhoto(ctx context.Context, userID string, photo *models.Photo) error

	// DeletePhoto returns ErrPhotoNotFound if photo doesn't exist
	DeletePhoto(ctx context.Context, userID string, plantID, photoID int64) error
}
