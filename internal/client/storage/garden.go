package storage

import (
	"context"

	"github.com/iudanet/plantkeeper/internal/models"
)

// GardenSnapshotStorage хранит последний известный список растений сада.
// Снимок записывается целиком и никогда не сливается по полям.
type GardenSnapshotStorage interface {
	// SaveSnapshot replaces the stored snapshot
	SaveSnapshot(ctx context.Context, plants []models.SavedPlant) error

	// LoadSnapshot returns ErrSnapshotNotFound if nothing was saved
	// and ErrSnapshotCorrupt if the stored value cannot be decoded
	LoadSnapshot(ctx context.Context) ([]models.SavedPlant, error)

	// DeleteSnapshot is a no-op if nothing was saved
	DeleteSnapshot(ctx context.Context) error
}
