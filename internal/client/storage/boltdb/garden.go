package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/internal/models"
)

var snapshotKey = []byte("snapshot")

// SaveSnapshot сохраняет список растений одним JSON массивом
func (s *Storage) SaveSnapshot(ctx context.Context, plants []models.SavedPlant) error {
	if plants == nil {
		plants = []models.SavedPlant{}
	}
	return s.putJSON(bucketGarden, snapshotKey, plants)
}

// LoadSnapshot читает сохраненный список растений
func (s *Storage) LoadSnapshot(ctx context.Context) ([]models.SavedPlant, error) {
	var plants []models.SavedPlant

	err := s.view(bucketGarden, func(b *bbolt.Bucket) error {
		data := b.Get(snapshotKey)
		if data == nil {
			return storage.ErrSnapshotNotFound
		}
		if err := json.Unmarshal(data, &plants); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrSnapshotCorrupt, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if plants == nil {
		plants = []models.SavedPlant{}
	}

	return plants, nil
}

// DeleteSnapshot удаляет сохраненный список
func (s *Storage) DeleteSnapshot(ctx context.Context) error {
	return s.update(bucketGarden, func(b *bbolt.Bucket) error {
		if err := b.Delete(snapshotKey); err != nil {
			return fmt.Errorf("failed to delete garden snapshot: %w", err)
		}
		return nil
	})
}
