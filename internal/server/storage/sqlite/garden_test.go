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

func TestGardenStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)

	zinnia := &models.SavedPlant{PlantID: 7, CommonName: "Zinnia", ScientificName: "Zinnia elegans"}
	aloe := &models.SavedPlant{
		CommonName:              "aloe",
		Notes:                   strPtr("kitchen window"),
		WateringReminderEnabled: true,
		WateringFrequencyDays:   intPtr(14),
		Watering:                strPtr("Minimum"),
		CareLevel:               strPtr("Low"),
	}

	require.NoError(t, s.CreatePlant(ctx, userID, zinnia))
	require.NoError(t, s.CreatePlant(ctx, userID, aloe))

	assert.NotZero(t, zinnia.ID)
	assert.NotZero(t, aloe.ID)
	assert.NotEqual(t, zinnia.ID, aloe.ID)
	assert.False(t, zinnia.AddedAt.IsZero())

	plants, err := s.ListPlants(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plants, 2)

	// Сортировка по common name без учета регистра
	assert.Equal(t, "aloe", plants[0].CommonName)
	assert.Equal(t, "Zinnia", plants[1].CommonName)

	assert.Equal(t, "kitchen window", *plants[0].Notes)
	assert.True(t, plants[0].WateringReminderEnabled)
	assert.Equal(t, 14, *plants[0].WateringFrequencyDays)
	assert.Equal(t, "Low", *plants[0].CareLevel)
	assert.Nil(t, plants[0].LastWateredAt)
	assert.Nil(t, plants[1].Notes)
}

func TestGardenStorage_DuplicateCatalogPlant(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	otherUser := createTestUser(t, ctx, s)

	require.NoError(t, s.CreatePlant(ctx, userID, &models.SavedPlant{PlantID: 42, CommonName: "Fern"}))
	err := s.CreatePlant(ctx, userID, &models.SavedPlant{PlantID: 42, CommonName: "Fern"})
	assert.ErrorIs(t, err, storage.ErrDuplicatePlant)

	// Другой пользователь может добавить тот же вид
	require.NoError(t, s.CreatePlant(ctx, otherUser, &models.SavedPlant{PlantID: 42, CommonName: "Fern"}))

	// Custom растения могут повторяться
	require.NoError(t, s.CreatePlant(ctx, userID, &models.SavedPlant{CommonName: "Mystery"}))
	require.NoError(t, s.CreatePlant(ctx, userID, &models.SavedPlant{CommonName: "Mystery"}))

	plants, err := s.ListPlants(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, plants, 3)
}

func TestGardenStorage_UnscopedAccess(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	owner := createTestUser(t, ctx, s)
	stranger := createTestUser(t, ctx, s)

	plant := &models.SavedPlant{CommonName: "Basil"}
	require.NoError(t, s.CreatePlant(ctx, owner, plant))

	_, err := s.GetPlant(ctx, stranger, plant.ID)
	assert.ErrorIs(t, err, storage.ErrPlantNotFound)
	assert.ErrorIs(t, s.DeletePlant(ctx, stranger, plant.ID), storage.ErrPlantNotFound)
	assert.ErrorIs(t, s.UpdatePlant(ctx, stranger, plant), storage.ErrPlantNotFound)

	_, err = s.GetPlant(ctx, owner, plant.ID)
	assert.NoError(t, err)
}

func TestGardenStorage_UpdatePlant(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	plant := &models.SavedPlant{CommonName: "Rose", Notes: strPtr("old")}
	require.NoError(t, s.CreatePlant(ctx, userID, plant))

	watered := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	plant.CommonName = "Climbing Rose"
	plant.Notes = nil
	plant.Nickname = strPtr("Rosie")
	plant.LastWateredAt = &watered
	plant.WateringFrequencyDays = intPtr(7)
	require.NoError(t, s.UpdatePlant(ctx, userID, plant))

	got, err := s.GetPlant(ctx, userID, plant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Climbing Rose", got.CommonName)
	assert.Nil(t, got.Notes)
	assert.Equal(t, "Rosie", *got.Nickname)
	require.NotNil(t, got.LastWateredAt)
	assert.True(t, watered.Equal(*got.LastWateredAt))
	assert.Equal(t, 7, *got.WateringFrequencyDays)
}

func TestGardenStorage_MarkWatered(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	plant := &models.SavedPlant{CommonName: "Mint"}
	require.NoError(t, s.CreatePlant(ctx, userID, plant))

	now := time.Now().UTC()
	got, err := s.MarkWatered(ctx, userID, plant.ID, now)
	require.NoError(t, err)
	require.NotNil(t, got.LastWateredAt)
	assert.WithinDuration(t, now, *got.LastWateredAt, time.Second)

	_, err = s.MarkWatered(ctx, userID, plant.ID+100, now)
	assert.ErrorIs(t, err, storage.ErrPlantNotFound)
}

func TestGardenStorage_DeleteCascadesPhotos(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, ctx, s)
	plant := &models.SavedPlant{CommonName: "Orchid"}
	require.NoError(t, s.CreatePlant(ctx, userID, plant))

	require.NoError(t, s.CreatePhoto(ctx, userID, &models.Photo{
		UserPlantID: plant.ID,
		ImageData:   "data:image/png;base64,AAAA",
		TakenAt:     time.Now().UTC(),
	}))

	require.NoError(t, s.DeletePlant(ctx, userID, plant.ID))

	var count int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM plant_photos`).Scan(&count))
	assert.Equal(t, 0, count)

	assert.ErrorIs(t, s.DeletePlant(ctx, userID, plant.ID), storage.ErrPlantNotFound)
}
