package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/internal/models"
)

func TestStorage_Snapshot(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	freq := 3
	added := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	plants := []models.SavedPlant{
		{ID: 1, PlantID: 425, CommonName: "Rose", AddedAt: added, WateringFrequencyDays: &freq, WateringReminderEnabled: true},
		{ID: 2, CommonName: "Basil", AddedAt: added},
	}

	require.NoError(t, store.SaveSnapshot(ctx, plants))

	got, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, plants, got)

	// Снимок заменяется целиком
	require.NoError(t, store.SaveSnapshot(ctx, plants[1:]))
	got, err = store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	require.NoError(t, store.DeleteSnapshot(ctx))
	_, err = store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, store.DeleteSnapshot(ctx))
}

func TestStorage_Snapshot_Empty(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveSnapshot(ctx, nil))

	got, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStorage_Snapshot_Corrupt(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGarden).Put(snapshotKey, []byte(`{"not":"a list"`))
	})
	require.NoError(t, err)

	_, err = store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotCorrupt)
}

func TestStorage_Snapshot_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	dropBucket(t, store, bucketGarden)

	assert.ErrorContains(t, store.SaveSnapshot(ctx, []models.SavedPlant{}), "garden bucket not found")

	_, err := store.LoadSnapshot(ctx)
	assert.ErrorContains(t, err, "garden bucket not found")

	assert.ErrorContains(t, store.DeleteSnapshot(ctx), "garden bucket not found")
}
