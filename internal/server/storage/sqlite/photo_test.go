package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
)

func TestPhotoStorage_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	plant := &models.SavedPlant{CommonName: "Tomato"}
	require.NoError(t, s.CreatePlant(ctx, userID, plant))

	base := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	first := &models.Photo{UserPlantID: plant.ID, ImageData: "data:a", TakenAt: base}
	second := &models.Photo{UserPlantID: plant.ID, ImageData: "data:b", Caption: strPtr("fruit!"), TakenAt: base.Add(24 * time.Hour)}
	require.NoError(t, s.CreatePhoto(ctx, userID, first))
	require.NoError(t, s.CreatePhoto(ctx, userID, second))

	photos, err := s.ListPhotos(ctx, userID, plant.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, second.ID, photos[0].ID)
	assert.Equal(t, "fruit!", *photos[0].Caption)
	assert.Equal(t, first.ID, photos[1].ID)
	assert.Nil(t, photos[1].Caption)
}

func TestPhotoStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	stranger := createTestUser(t, ctx, s)
	plant := &models.SavedPlant{CommonName: "Pepper"}
	require.NoError(t, s.CreatePlant(ctx, userID, plant))

	photo := &models.Photo{UserPlantID: plant.ID, ImageData: "data:x", TakenAt: time.Now().UTC()}
	require.NoError(t, s.CreatePhoto(ctx, userID, photo))

	assert.ErrorIs(t, s.DeletePhoto(ctx, stranger, plant.ID, photo.ID), storage.ErrPhotoNotFound)
	require.NoError(t, s.DeletePhoto(ctx, userID, plant.ID, photo.ID))
	assert.ErrorIs(t, s.DeletePhoto(ctx, userID, plant.ID, photo.ID), storage.ErrPhotoNotFound)

	photos, err := s.ListPhotos(ctx, userID, plant.ID)
	require.NoError(t, err)
	assert.Empty(t, photos)
}
