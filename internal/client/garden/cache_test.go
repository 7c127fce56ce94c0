package garden

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/plantkeeper/internal/client/api"
	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/validation"
)

// memSnapshotStore implements storage.GardenSnapshotStorage for testing
type memSnapshotStore struct {
	loadErr error
	saveErr error
	plants  []models.SavedPlant
	saves   int
	deletes int
	mu      sync.Mutex
	has     bool
}

func (m *memSnapshotStore) SaveSnapshot(ctx context.Context, plants []models.SavedPlant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.plants = slices.Clone(plants)
	m.has = true
	return nil
}

func (m *memSnapshotStore) LoadSnapshot(ctx context.Context) ([]models.SavedPlant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.has {
		return nil, storage.ErrSnapshotNotFound
	}
	return slices.Clone(m.plants), nil
}

func (m *memSnapshotStore) DeleteSnapshot(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	m.plants = nil
	m.has = false
	return nil
}

func (m *memSnapshotStore) snapshot() ([]models.SavedPlant, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.plants), m.has
}

var testAdded = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func rose() models.SavedPlant {
	return models.SavedPlant{ID: 1, PlantID: 42, CommonName: "Rose", AddedAt: testAdded}
}

func basil() models.SavedPlant {
	return models.SavedPlant{ID: 2, CommonName: "Basil", AddedAt: testAdded}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func listReturning(plants ...models.SavedPlant) func(context.Context) ([]models.SavedPlant, error) {
	return func(context.Context) ([]models.SavedPlant, error) {
		return slices.Clone(plants), nil
	}
}

// loadedCache возвращает кэш, уже загрузивший plants с сервера
func loadedCache(t *testing.T, mock *api.GardenAPIMock, store *memSnapshotStore, plants ...models.SavedPlant) *Cache {
	t.Helper()
	mock.ListPlantsFunc = listReturning(plants...)
	c := New(mock, store, testLogger())
	require.NoError(t, c.Refresh(context.Background()))
	return c
}

func TestCache_Get_NoCacheFetchesNetwork(t *testing.T) {
	mock := &api.GardenAPIMock{ListPlantsFunc: listReturning(rose(), basil())}
	store := &memSnapshotStore{}
	c := New(mock, store, testLogger())

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SavedPlant{rose(), basil()}, plants)
	c.Wait()

	onDisk, ok := store.snapshot()
	require.True(t, ok)
	assert.Equal(t, plants, onDisk)
}

func TestCache_Get_NoCacheNetworkError(t *testing.T) {
	mock := &api.GardenAPIMock{ListPlantsFunc: func(context.Context) ([]models.SavedPlant, error) {
		return nil, api.ErrNetwork
	}}
	c := New(mock, &memSnapshotStore{}, testLogger())

	plants, err := c.Get(context.Background())
	assert.ErrorIs(t, err, api.ErrNetwork)
	assert.Nil(t, plants)

	_, ok := c.Peek()
	assert.False(t, ok)
}

func TestCache_Get_EmptyGarden(t *testing.T) {
	mock := &api.GardenAPIMock{ListPlantsFunc: listReturning()}
	c := New(mock, &memSnapshotStore{}, testLogger())

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, plants)
	assert.Empty(t, plants)
}

func TestCache_Get_DiskSnapshotDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	mock := &api.GardenAPIMock{ListPlantsFunc: func(context.Context) ([]models.SavedPlant, error) {
		<-release
		return []models.SavedPlant{rose(), basil()}, nil
	}}
	store := &memSnapshotStore{plants: []models.SavedPlant{rose()}, has: true}
	c := New(mock, store, testLogger())

	var changes []Change
	c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	// Сеть заблокирована, но снимок с диска отдается сразу
	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SavedPlant{rose()}, plants)

	close(release)
	c.Wait()

	plants, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, []models.SavedPlant{rose(), basil()}, plants)

	require.Len(t, changes, 1)
	assert.Equal(t, []int64{2}, changes[0].Diff.Added)
	assert.Equal(t, plants, changes[0].Plants)
}

func TestCache_Get_CorruptSnapshotFallsBackToNetwork(t *testing.T) {
	mock := &api.GardenAPIMock{ListPlantsFunc: listReturning(basil())}
	store := &memSnapshotStore{loadErr: storage.ErrSnapshotCorrupt}
	c := New(mock, store, testLogger())

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SavedPlant{basil()}, plants)
	assert.Len(t, mock.ListPlantsCalls(), 1)
}

func TestCache_Get_BackgroundRefreshFailureKeepsData(t *testing.T) {
	mock := &api.GardenAPIMock{}
	store := &memSnapshotStore{}
	c := loadedCache(t, mock, store, rose())

	mock.ListPlantsFunc = func(context.Context) ([]models.SavedPlant, error) {
		return nil, api.ErrNetwork
	}

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	c.Wait()

	assert.Equal(t, []models.SavedPlant{rose()}, plants)
	cached, _ := c.Peek()
	assert.Equal(t, []models.SavedPlant{rose()}, cached)

	assert.Error(t, c.Refresh(context.Background()))
}

func TestCache_Get_SingleBackgroundRefresh(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	release := make(chan struct{})
	var calls atomic.Int32
	mock.ListPlantsFunc = func(context.Context) ([]models.SavedPlant, error) {
		calls.Add(1)
		<-release
		return []models.SavedPlant{rose()}, nil
	}

	for range 5 {
		_, err := c.Get(context.Background())
		require.NoError(t, err)
	}
	close(release)
	c.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_Get_ReturnsCopy(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	plants, _ := c.Peek()
	plants[0].CommonName = "changed"

	cached, _ := c.Peek()
	assert.Equal(t, "Rose", cached[0].CommonName)
}

func TestCache_Add_ThenGetWithoutNetwork(t *testing.T) {
	mock := &api.GardenAPIMock{}
	store := &memSnapshotStore{}
	c := loadedCache(t, mock, store, rose())

	mock.AddPlantFunc = func(ctx context.Context, p models.NewPlant) (*models.SavedPlant, error) {
		saved := p.ToSavedPlant()
		saved.ID = 2
		saved.AddedAt = testAdded
		return &saved, nil
	}
	// Сеть недоступна для чтения
	mock.ListPlantsFunc = func(context.Context) ([]models.SavedPlant, error) {
		return nil, api.ErrNetwork
	}

	added, err := c.Add(context.Background(), models.NewPlant{CommonName: "Basil"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), added.ID)

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	c.Wait()
	assert.Equal(t, []models.SavedPlant{rose(), basil()}, plants)

	onDisk, _ := store.snapshot()
	assert.Equal(t, plants, onDisk)
}

func TestCache_Add_Conflict(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	var changed bool
	c.Subscribe(func(Change) { changed = true })

	mock.AddPlantFunc = func(context.Context, models.NewPlant) (*models.SavedPlant, error) {
		return nil, &api.APIError{Err: api.ErrConflict, StatusCode: http.StatusConflict}
	}

	_, err := c.Add(context.Background(), models.NewPlant{PlantID: 42, CommonName: "Rose"})
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrConflict)
	assert.ErrorIs(t, err, ErrAlreadyInGarden)
	assert.Equal(t, "This plant is already in your garden.", err.Error())

	plants, _ := c.Peek()
	count := 0
	for _, p := range plants {
		if p.PlantID == 42 {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.False(t, changed)
}

func TestCache_Add_ValidationBeforeNetwork(t *testing.T) {
	// AddPlantFunc не задан: вызов API вызвал бы панику
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	_, err := c.Add(context.Background(), models.NewPlant{CommonName: "  "})
	assert.ErrorIs(t, err, validation.ErrInvalid)

	_, err = c.Add(context.Background(), models.NewPlant{CommonName: "Basil", WateringFrequencyDays: intPtr(0)})
	assert.ErrorIs(t, err, validation.ErrInvalid)

	assert.Empty(t, mock.AddPlantCalls())
}

func TestCache_Add_WithoutAnyCache(t *testing.T) {
	mock := &api.GardenAPIMock{
		AddPlantFunc: func(context.Context, models.NewPlant) (*models.SavedPlant, error) {
			b := basil()
			return &b, nil
		},
		ListPlantsFunc: listReturning(rose(), basil()),
	}
	store := &memSnapshotStore{}
	c := New(mock, store, testLogger())

	_, err := c.Add(context.Background(), models.NewPlant{CommonName: "Basil"})
	require.NoError(t, err)

	// Частичный список не выдается за полный сад
	_, ok := c.Peek()
	assert.False(t, ok)

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SavedPlant{rose(), basil()}, plants)
}

func TestCache_Add_AppliesToDiskSnapshot(t *testing.T) {
	mock := &api.GardenAPIMock{
		AddPlantFunc: func(context.Context, models.NewPlant) (*models.SavedPlant, error) {
			b := basil()
			return &b, nil
		},
	}
	store := &memSnapshotStore{plants: []models.SavedPlant{rose()}, has: true}
	c := New(mock, store, testLogger())

	_, err := c.Add(context.Background(), models.NewPlant{CommonName: "Basil"})
	require.NoError(t, err)

	plants, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, []models.SavedPlant{rose(), basil()}, plants)
}

func TestCache_Update_ReplacesInPlace(t *testing.T) {
	mock := &api.GardenAPIMock{}
	store := &memSnapshotStore{}
	fern := models.SavedPlant{ID: 3, CommonName: "Fern", AddedAt: testAdded}
	c := loadedCache(t, mock, store, rose(), basil(), fern)

	mock.UpdatePlantFunc = func(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
		p := basil()
		u.Apply(&p)
		return &p, nil
	}

	var diffs []Diff
	c.Subscribe(func(ch Change) { diffs = append(diffs, ch.Diff) })

	update := models.CustomPlantUpdate{
		CommonName:         strPtr("Thai Basil"),
		CatalogPlantUpdate: models.CatalogPlantUpdate{Notes: strPtr("kitchen")},
	}
	updated, err := c.Update(context.Background(), 2, update)
	require.NoError(t, err)
	assert.Equal(t, "Thai Basil", updated.CommonName)

	calls := mock.UpdatePlantCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(2), calls[0].Id)
	assert.Equal(t, models.UpdateKindCustom, calls[0].U.Kind())

	plants, _ := c.Peek()
	require.Len(t, plants, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{plants[0].ID, plants[1].ID, plants[2].ID})
	assert.Equal(t, "Thai Basil", plants[1].CommonName)
	assert.Equal(t, "kitchen", *plants[1].Notes)

	require.Len(t, diffs, 1)
	assert.Equal(t, []int64{2}, diffs[0].Updated)

	onDisk, _ := store.snapshot()
	assert.Equal(t, plants, onDisk)
}

func TestCache_Update_CustomOnCatalogRejected(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	_, err := c.Update(context.Background(), 1, models.CustomPlantUpdate{CommonName: strPtr("Not a rose")})
	assert.ErrorIs(t, err, validation.ErrInvalid)
	assert.Empty(t, mock.UpdatePlantCalls())
}

func TestCache_Update_ServerRejects(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	// Растения нет в снимке, проверку делает сервер
	mock.UpdatePlantFunc = func(context.Context, int64, models.PlantUpdate) (*models.SavedPlant, error) {
		return nil, &api.APIError{Err: api.ErrValidation, StatusCode: http.StatusUnprocessableEntity, Message: "custom only"}
	}

	_, err := c.Update(context.Background(), 99, models.CustomPlantUpdate{CommonName: strPtr("x")})
	assert.ErrorIs(t, err, api.ErrValidation)

	plants, _ := c.Peek()
	assert.Equal(t, []models.SavedPlant{rose()}, plants)
}

func TestCache_Remove(t *testing.T) {
	mock := &api.GardenAPIMock{}
	store := &memSnapshotStore{}
	c := loadedCache(t, mock, store, rose(), basil())

	mock.DeletePlantFunc = func(ctx context.Context, id int64) error {
		if id == 1 {
			return nil
		}
		return &api.APIError{Err: api.ErrNotFound, StatusCode: http.StatusNotFound, Message: "plant not found"}
	}

	require.NoError(t, c.Remove(context.Background(), 1))
	plants, _ := c.Peek()
	assert.Equal(t, []models.SavedPlant{basil()}, plants)

	// NotFound возвращается вызывающему, снимок не меняется
	err := c.Remove(context.Background(), 7)
	assert.ErrorIs(t, err, api.ErrNotFound)
	plants, _ = c.Peek()
	assert.Equal(t, []models.SavedPlant{basil()}, plants)

	onDisk, _ := store.snapshot()
	assert.Equal(t, plants, onDisk)
}

func TestCache_MarkWatered_UsesServerTimestamp(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	serverNow := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	mock.MarkWateredFunc = func(ctx context.Context, id int64) (*models.SavedPlant, error) {
		p := rose()
		p.LastWateredAt = &serverNow
		return &p, nil
	}

	_, err := c.MarkWatered(context.Background(), 1)
	require.NoError(t, err)

	plants, _ := c.Peek()
	require.NotNil(t, plants[0].LastWateredAt)
	assert.True(t, serverNow.Equal(*plants[0].LastWateredAt))
}

func TestCache_SetCoverPhoto(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	image := "data:image/png;base64,AAAA"
	mock.UpdatePlantFunc = func(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
		p := rose()
		u.Apply(&p)
		return &p, nil
	}

	require.NoError(t, c.SetCoverPhoto(context.Background(), 1, image))

	calls := mock.UpdatePlantCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.CatalogPlantUpdate{ThumbnailURL: &image}, calls[0].U)

	plants, _ := c.Peek()
	require.NotNil(t, plants[0].ThumbnailURL)
	assert.Equal(t, image, *plants[0].ThumbnailURL)

	err := c.SetCoverPhoto(context.Background(), 1, "")
	assert.ErrorIs(t, err, validation.ErrInvalid)
	assert.Len(t, mock.UpdatePlantCalls(), 1)
}

func TestCache_RefreshSupersededByMutation(t *testing.T) {
	mock := &api.GardenAPIMock{}
	c := loadedCache(t, mock, &memSnapshotStore{}, rose())

	started := make(chan struct{})
	release := make(chan struct{})
	mock.ListPlantsFunc = func(context.Context) ([]models.SavedPlant, error) {
		close(started)
		<-release
		// Ответ запрошен до полива
		return []models.SavedPlant{rose()}, nil
	}

	watered := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	mock.MarkWateredFunc = func(context.Context, int64) (*models.SavedPlant, error) {
		p := rose()
		p.LastWateredAt = &watered
		return &p, nil
	}

	done := make(chan error)
	go func() { done <- c.Refresh(context.Background()) }()

	<-started
	_, err := c.MarkWatered(context.Background(), 1)
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	plants, _ := c.Peek()
	require.NotNil(t, plants[0].LastWateredAt, "stale refresh must not overwrite the mutation")
	assert.True(t, watered.Equal(*plants[0].LastWateredAt))
}

func TestCache_Invalidate(t *testing.T) {
	mock := &api.GardenAPIMock{}
	store := &memSnapshotStore{}
	c := loadedCache(t, mock, store, rose(), basil())

	var changes []Change
	unsubscribe := c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	c.Invalidate(context.Background())

	_, ok := c.Peek()
	assert.False(t, ok)
	_, onDisk := store.snapshot()
	assert.False(t, onDisk)

	require.Len(t, changes, 1)
	assert.Equal(t, []int64{1, 2}, changes[0].Diff.Removed)
	assert.Empty(t, changes[0].Plants)

	// После отписки уведомлений нет
	unsubscribe()
	require.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, changes, 1)
}

func TestCache_DiskErrorsAreNotFatal(t *testing.T) {
	mock := &api.GardenAPIMock{ListPlantsFunc: listReturning(rose())}
	store := &memSnapshotStore{saveErr: errors.New("disk full"), loadErr: errors.New("io error")}
	c := New(mock, store, testLogger())

	plants, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SavedPlant{rose()}, plants)
	assert.Equal(t, 1, store.saves)
}

func TestCache_Photos(t *testing.T) {
	taken := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	mock := &api.GardenAPIMock{
		ListPhotosFunc: func(ctx context.Context, plantID int64) ([]models.Photo, error) {
			return []models.Photo{{ID: 5, UserPlantID: plantID, TakenAt: taken}}, nil
		},
		AddPhotoFunc: func(ctx context.Context, plantID int64, p models.NewPhoto) (*models.Photo, error) {
			return &models.Photo{ID: 6, UserPlantID: plantID, ImageData: p.ImageData}, nil
		},
		DeletePhotoFunc: func(ctx context.Context, plantID, photoID int64) error {
			return nil
		},
	}
	c := New(mock, &memSnapshotStore{}, testLogger())
	ctx := context.Background()

	photos, err := c.Photos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	_, err = c.AddPhoto(ctx, 1, models.NewPhoto{})
	assert.ErrorIs(t, err, validation.ErrInvalid)

	photo, err := c.AddPhoto(ctx, 1, models.NewPhoto{ImageData: "data:image/png;base64,AAAA"})
	require.NoError(t, err)
	assert.Equal(t, int64(6), photo.ID)
	assert.Len(t, mock.AddPhotoCalls(), 1)

	require.NoError(t, c.DeletePhoto(ctx, 1, 5))
	assert.Equal(t, int64(5), mock.DeletePhotoCalls()[0].PhotoID)
}

// fakeServer хранит сад как сервер, чтобы сравнить снимок кэша с полным GET
type fakeServer struct {
	plants map[int64]models.SavedPlant
	nextID int64
}

func newFakeServer() *fakeServer {
	return &fakeServer{plants: make(map[int64]models.SavedPlant)}
}

func (s *fakeServer) api() *api.GardenAPIMock {
	return &api.GardenAPIMock{
		ListPlantsFunc: func(context.Context) ([]models.SavedPlant, error) {
			out := make([]models.SavedPlant, 0, len(s.plants))
			for _, p := range s.plants {
				out = append(out, p)
			}
			slices.SortFunc(out, func(a, b models.SavedPlant) int { return int(a.ID - b.ID) })
			return out, nil
		},
		AddPlantFunc: func(ctx context.Context, n models.NewPlant) (*models.SavedPlant, error) {
			s.nextID++
			p := n.ToSavedPlant()
			p.ID = s.nextID
			p.AddedAt = testAdded
			s.plants[p.ID] = p
			return &p, nil
		},
		UpdatePlantFunc: func(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
			p := s.plants[id]
			u.Apply(&p)
			s.plants[id] = p
			return &p, nil
		},
		DeletePlantFunc: func(ctx context.Context, id int64) error {
			delete(s.plants, id)
			return nil
		},
	}
}

func TestCache_MutationsMatchFreshList(t *testing.T) {
	server := newFakeServer()
	mock := server.api()
	c := New(mock, &memSnapshotStore{}, testLogger())
	ctx := context.Background()

	_, err := c.Get(ctx)
	require.NoError(t, err)
	c.Wait()

	for _, name := range []string{"Rose", "Basil", "Fern", "Mint"} {
		_, err := c.Add(ctx, models.NewPlant{CommonName: name, WateringFrequencyDays: intPtr(3)})
		require.NoError(t, err)
	}
	_, err = c.Update(ctx, 2, models.CatalogPlantUpdate{Nickname: strPtr("pesto")})
	require.NoError(t, err)
	require.NoError(t, c.Remove(ctx, 3))
	_, err = c.Update(ctx, 4, models.CustomPlantUpdate{CommonName: strPtr("Spearmint")})
	require.NoError(t, err)

	cached, _ := c.Peek()
	fresh, err := mock.ListPlants(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, fresh, cached)
}

func TestCache_WithBoltStorage(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	mock := &api.GardenAPIMock{ListPlantsFunc: listReturning(rose(), basil())}
	c := New(mock, store, testLogger())
	_, err = c.Get(ctx)
	require.NoError(t, err)

	// Новый процесс: сад отдается с диска без ожидания сети
	release := make(chan struct{})
	offline := &api.GardenAPIMock{ListPlantsFunc: func(context.Context) ([]models.SavedPlant, error) {
		<-release
		return nil, api.ErrNetwork
	}}
	c2 := New(offline, store, testLogger())
	plants, err := c2.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.SavedPlant{rose(), basil()}, plants)
	close(release)
	c2.Wait()

	c2.Invalidate(ctx)
	_, err = store.LoadSnapshot(ctx)
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
}
