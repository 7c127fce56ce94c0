// Package garden держит клиентскую копию сада пользователя:
// снимок в памяти, снимок на диске и фоновое обновление с сервера.
package garden

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/api"
	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/validation"
)

// DefaultRefreshTimeout ограничивает фоновое обновление
const DefaultRefreshTimeout = 30 * time.Second

// ErrAlreadyInGarden возвращается Add при повторном добавлении каталожного растения
var ErrAlreadyInGarden = &api.APIError{
	Err:        api.ErrConflict,
	StatusCode: http.StatusConflict,
	Message:    "This plant is already in your garden.",
}

// Cache реализует stale-while-revalidate для списка растений.
// Наружу отдаются только копии списка.
type Cache struct {
	api     api.GardenAPI
	store   storage.GardenSnapshotStorage
	logger  *slog.Logger
	subs    map[int]func(Change)
	plants  []models.SavedPlant
	timeout time.Duration
	wg      sync.WaitGroup
	// gen увеличивается при каждом примененном изменении снимка;
	// ответ refresh, запрошенный при другом gen, отбрасывается
	gen        uint64
	nextSub    int
	mu         sync.RWMutex
	persistMu  sync.Mutex
	notifyMu   sync.Mutex
	loaded     bool
	refreshing bool
}

// New создает кэш сада
func New(gardenAPI api.GardenAPI, store storage.GardenSnapshotStorage, logger *slog.Logger) *Cache {
	return &Cache{
		api:     gardenAPI,
		store:   store,
		logger:  logger,
		subs:    make(map[int]func(Change)),
		timeout: DefaultRefreshTimeout,
	}
}

// Get возвращает лучший доступный список растений.
// Есть снимок в памяти или на диске: он возвращается сразу, обновление идет в фоне.
// Кэша нет: ждем одного запроса к серверу и возвращаем его ошибку.
func (c *Cache) Get(ctx context.Context) ([]models.SavedPlant, error) {
	if plants, ok := c.Peek(); ok {
		c.refreshAsync(ctx)
		return plants, nil
	}

	if c.loadFromDisk(ctx) {
		plants, _ := c.Peek()
		c.refreshAsync(ctx)
		return plants, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	plants, _ := c.Peek()
	if plants == nil {
		plants = []models.SavedPlant{}
	}
	return plants, nil
}

// Peek возвращает снимок в памяти без обращения к сети и диску
func (c *Cache) Peek() ([]models.SavedPlant, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, false
	}
	return slices.Clone(c.plants), true
}

// Refresh загружает сад с сервера и заменяет снимок целиком.
// При ошибке снимок не меняется.
func (c *Cache) Refresh(ctx context.Context) error {
	c.mu.RLock()
	startGen := c.gen
	c.mu.RUnlock()

	plants, err := c.api.ListPlants(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh garden: %w", err)
	}

	c.mu.Lock()
	if c.gen != startGen {
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "garden refresh superseded, result discarded",
			slog.Uint64("requested_gen", startGen))
		return nil
	}
	prev := c.plants
	c.plants = slices.Clone(plants)
	c.loaded = true
	c.gen++
	c.mu.Unlock()

	c.persist(ctx)
	c.notify(prev, plants)

	return nil
}

// Add добавляет растение и дописывает ответ сервера в конец снимка
func (c *Cache) Add(ctx context.Context, p models.NewPlant) (*models.SavedPlant, error) {
	if err := validation.ValidateNewPlant(p); err != nil {
		return nil, err
	}

	plant, err := c.api.AddPlant(ctx, p)
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			return nil, ErrAlreadyInGarden
		}
		return nil, err
	}

	c.apply(ctx, func(plants []models.SavedPlant) []models.SavedPlant {
		return upsert(plants, *plant)
	})

	return plant, nil
}

// Update отправляет вариант обновления и заменяет запись на месте
func (c *Cache) Update(ctx context.Context, id int64, u models.PlantUpdate) (*models.SavedPlant, error) {
	if err := validation.ValidatePlantUpdate(u, c.find(id)); err != nil {
		return nil, err
	}

	plant, err := c.api.UpdatePlant(ctx, id, u)
	if err != nil {
		return nil, err
	}

	c.replace(ctx, *plant)

	return plant, nil
}

// Remove удаляет растение на сервере и из снимка
func (c *Cache) Remove(ctx context.Context, id int64) error {
	if err := c.api.DeletePlant(ctx, id); err != nil {
		return err
	}

	c.apply(ctx, func(plants []models.SavedPlant) []models.SavedPlant {
		return slices.DeleteFunc(plants, func(p models.SavedPlant) bool { return p.ID == id })
	})

	return nil
}

// MarkWatered отмечает полив; время назначает сервер
func (c *Cache) MarkWatered(ctx context.Context, id int64) (*models.SavedPlant, error) {
	plant, err := c.api.MarkWatered(ctx, id)
	if err != nil {
		return nil, err
	}

	c.replace(ctx, *plant)

	return plant, nil
}

// SetCoverPhoto заменяет обложку растения (обновление вида catalog только с thumbnail)
func (c *Cache) SetCoverPhoto(ctx context.Context, id int64, imageData string) error {
	if err := validation.ValidatePhoto(models.NewPhoto{ImageData: imageData}); err != nil {
		return err
	}

	plant, err := c.api.UpdatePlant(ctx, id, models.CatalogPlantUpdate{ThumbnailURL: &imageData})
	if err != nil {
		return err
	}

	c.replace(ctx, *plant)

	return nil
}

// Photos возвращает фотографии растения; фотографии не кэшируются
func (c *Cache) Photos(ctx context.Context, plantID int64) ([]models.Photo, error) {
	return c.api.ListPhotos(ctx, plantID)
}

// AddPhoto загружает фотографию
func (c *Cache) AddPhoto(ctx context.Context, plantID int64, p models.NewPhoto) (*models.Photo, error) {
	if err := validation.ValidatePhoto(p); err != nil {
		return nil, err
	}
	return c.api.AddPhoto(ctx, plantID, p)
}

// DeletePhoto удаляет фотографию
func (c *Cache) DeletePhoto(ctx context.Context, plantID, photoID int64) error {
	return c.api.DeletePhoto(ctx, plantID, photoID)
}

// Invalidate очищает память и удаляет снимок на диске (logout)
func (c *Cache) Invalidate(ctx context.Context) {
	c.persistMu.Lock()

	c.mu.Lock()
	prev := c.plants
	c.plants = nil
	c.loaded = false
	c.gen++
	c.mu.Unlock()

	if err := c.store.DeleteSnapshot(context.WithoutCancel(ctx)); err != nil {
		c.logger.WarnContext(ctx, "failed to delete garden snapshot", slog.Any("error", err))
	}
	c.persistMu.Unlock()

	c.notify(prev, nil)
}

// Subscribe регистрирует наблюдателя изменений. Возвращает функцию отписки.
// Наблюдатель вызывается вне блокировки кэша.
func (c *Cache) Subscribe(fn func(Change)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Wait ждет завершения фоновых обновлений
func (c *Cache) Wait() {
	c.wg.Wait()
}

// refreshAsync запускает фоновое обновление, если оно еще не идет
func (c *Cache) refreshAsync(ctx context.Context) {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return
	}
	c.refreshing = true
	c.wg.Add(1)
	c.mu.Unlock()

	// Обновление переживает отмену контекста вызывающего
	bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)

	go func() {
		defer c.wg.Done()
		defer cancel()
		defer func() {
			c.mu.Lock()
			c.refreshing = false
			c.mu.Unlock()
		}()

		if err := c.Refresh(bctx); err != nil {
			c.logger.WarnContext(bctx, "background garden refresh failed", slog.Any("error", err))
		}
	}()
}

// loadFromDisk загружает снимок с диска, если в памяти его еще нет.
// Отсутствующий или испорченный снимок означает "кэша нет".
func (c *Cache) loadFromDisk(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return true
	}
	return c.loadFromDiskLocked(ctx)
}

func (c *Cache) loadFromDiskLocked(ctx context.Context) bool {
	plants, err := c.store.LoadSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			c.logger.WarnContext(ctx, "failed to load garden snapshot", slog.Any("error", err))
		}
		return false
	}

	c.plants = plants
	c.loaded = true
	return true
}

// apply применяет изменение к снимку, сохраняет его и уведомляет подписчиков.
// Без снимка в памяти изменение применяется к снимку с диска; если нет и его,
// следующий Get загрузит сад с сервера целиком.
func (c *Cache) apply(ctx context.Context, mutate func([]models.SavedPlant) []models.SavedPlant) {
	c.mu.Lock()
	if !c.loaded && !c.loadFromDiskLocked(ctx) {
		c.mu.Unlock()
		return
	}
	prev := c.plants
	next := mutate(slices.Clone(prev))
	c.plants = next
	c.gen++
	c.mu.Unlock()

	c.persist(ctx)
	c.notify(prev, next)
}

// replace подменяет запись объектом сервера
func (c *Cache) replace(ctx context.Context, plant models.SavedPlant) {
	c.apply(ctx, func(plants []models.SavedPlant) []models.SavedPlant {
		return upsert(plants, plant)
	})
}

// find возвращает копию растения из снимка или nil
func (c *Cache) find(id int64) *models.SavedPlant {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.plants {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// persist записывает текущий снимок памяти на диск.
// Ошибки диска не критичны: сервер остается источником истины.
func (c *Cache) persist(ctx context.Context) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.RLock()
	if !c.loaded {
		c.mu.RUnlock()
		return
	}
	plants := slices.Clone(c.plants)
	c.mu.RUnlock()

	if err := c.store.SaveSnapshot(context.WithoutCancel(ctx), plants); err != nil {
		c.logger.WarnContext(ctx, "failed to save garden snapshot", slog.Any("error", err))
	}
}

// notify вызывает подписчиков по очереди. Plants всегда текущий снимок,
// поэтому запоздавшее уведомление не откатывает состояние подписчика.
func (c *Cache) notify(prev, next []models.SavedPlant) {
	diff := ComputeDiff(prev, next)
	if diff.Empty() {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.RLock()
	current := slices.Clone(c.plants)
	subs := make([]func(Change), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(Change{Plants: slices.Clone(current), Diff: diff})
	}
}

// upsert заменяет запись с тем же ID на месте или добавляет в конец
func upsert(plants []models.SavedPlant, plant models.SavedPlant) []models.SavedPlant {
	i := slices.IndexFunc(plants, func(p models.SavedPlant) bool { return p.ID == plant.ID })
	if i < 0 {
		return append(plants, plant)
	}
	plants[i] = plant
	return plants
}
