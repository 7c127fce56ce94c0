package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

// newJSONRequest собирает запрос с JSON телом, пользователем в контексте и переменными пути
func newJSONRequest(t *testing.T, method, target string, body any, userID string, vars map[string]string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = req.WithContext(WithUser(req.Context(), userID, userID+"@example.com"))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users        map[string]*models.User // email -> User
	createError  error
	getUserError error
	updateError  error
}

func newMockUserStorage(users ...*models.User) *mockUserStorage {
	m := &mockUserStorage{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateProfile(ctx context.Context, user *models.User) error {
	if m.updateError != nil {
		return m.updateError
	}
	for email, existing := range m.users {
		if existing.ID == user.ID {
			u := *user
			m.users[email] = &u
			return nil
		}
	}
	return storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	return nil
}

// mockTokenStorage is a mock implementation of TokenStorage for testing
type mockTokenStorage struct {
	tokens      map[string]*models.RefreshToken // token -> RefreshToken
	saveError   error
	deleteError error
}

func newMockTokenStorage() *mockTokenStorage {
	return &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.Token] = token
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.tokens[token]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return rt, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, token)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	if m.deleteError != nil {
		return 0, m.deleteError
	}
	count := 0
	for token, rt := range m.tokens {
		if rt.UserID == userID {
			delete(m.tokens, token)
			count++
		}
	}
	return count, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	return 0, nil
}

type ownedPlant struct {
	userID string
	plant  models.SavedPlant
}

// mockGardenStorage хранит растения в памяти с учетом владельца
type mockGardenStorage struct {
	plants  map[int64]ownedPlant
	listErr error
	nextID  int64
	mu      sync.Mutex
}

func newMockGardenStorage() *mockGardenStorage {
	return &mockGardenStorage{plants: make(map[int64]ownedPlant), nextID: 1}
}

func (m *mockGardenStorage) add(userID string, p models.SavedPlant) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextID
	m.nextID++
	m.plants[p.ID] = ownedPlant{userID: userID, plant: p}
	return p.ID
}

func (m *mockGardenStorage) ListPlants(ctx context.Context, userID string) ([]models.SavedPlant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []models.SavedPlant{}
	for _, op := range m.plants {
		if op.userID == userID {
			result = append(result, op.plant)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockGardenStorage) GetPlant(ctx context.Context, userID string, id int64) (*models.SavedPlant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.plants[id]
	if !ok || op.userID != userID {
		return nil, storage.ErrPlantNotFound
	}
	p := op.plant
	return &p, nil
}

func (m *mockGardenStorage) CreatePlant(ctx context.Context, userID string, plant *models.SavedPlant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if plant.PlantID != 0 {
		for _, op := range m.plants {
			if op.userID == userID && op.plant.PlantID == plant.PlantID {
				return storage.ErrDuplicatePlant
			}
		}
	}
	plant.ID = m.nextID
	m.nextID++
	m.plants[plant.ID] = ownedPlant{userID: userID, plant: *plant}
	return nil
}

func (m *mockGardenStorage) UpdatePlant(ctx context.Context, userID string, plant *models.SavedPlant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.plants[plant.ID]
	if !ok || op.userID != userID {
		return storage.ErrPlantNotFound
	}
	m.plants[plant.ID] = ownedPlant{userID: userID, plant: *plant}
	return nil
}

func (m *mockGardenStorage) DeletePlant(ctx context.Context, userID string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.plants[id]
	if !ok || op.userID != userID {
		return storage.ErrPlantNotFound
	}
	delete(m.plants, id)
	return nil
}

func (m *mockGardenStorage) MarkWatered(ctx context.Context, userID string, id int64, at time.Time) (*models.SavedPlant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.plants[id]
	if !ok || op.userID != userID {
		return nil, storage.ErrPlantNotFound
	}
	op.plant.LastWateredAt = &at
	m.plants[id] = op
	p := op.plant
	return &p, nil
}

// mockPhotoStorage хранит фото в памяти
type mockPhotoStorage struct {
	photos map[int64]models.Photo
	nextID int64
}

func newMockPhotoStorage() *mockPhotoStorage {
	return &mockPhotoStorage{photos: make(map[int64]models.Photo), nextID: 1}
}

func (m *mockPhotoStorage) ListPhotos(ctx context.Context, userID string, plantID int64) ([]models.Photo, error) {
	result := []models.Photo{}
	for _, p := range m.photos {
		if p.UserPlantID == plantID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockPhotoStorage) CreatePhoto(ctx context.Context, userID string, photo *models.Photo) error {
	photo.ID = m.nextID
	m.nextID++
	m.photos[photo.ID] = *photo
	return nil
}

func (m *mockPhotoStorage) DeletePhoto(ctx context.Context, userID string, plantID, photoID int64) error {
	p, ok := m.photos[photoID]
	if !ok || p.UserPlantID != plantID {
		return storage.ErrPhotoNotFound
	}
	delete(m.photos, photoID)
	return nil
}

// fakeZoneLookup возвращает заранее заданные зоны
type fakeZoneLookup struct {
	zones map[string]int
	calls []string
}

func (f *fakeZoneLookup) Lookup(ctx context.Context, zipCode string) (int, error) {
	f.calls = append(f.calls, zipCode)
	zone, ok := f.zones[zipCode]
	if !ok {
		return 0, errors.New("zone not found")
	}
	return zone, nil
}
