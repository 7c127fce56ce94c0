package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/api"
	"github.com/iudanet/plantkeeper/internal/client/storage"
	"github.com/iudanet/plantkeeper/internal/validation"
	pkgapi "github.com/iudanet/plantkeeper/pkg/api"
)

// refreshLeeway обновляем access token заранее, чтобы он не истек в пути
const refreshLeeway = 30 * time.Second

// ErrNotLoggedIn возвращается, если на устройстве нет сессии
var ErrNotLoggedIn = errors.New("not logged in")

// RegisterInput содержит данные для создания аккаунта
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	ZipCode     string
}

// SessionService реализует Service и api.TokenSource
type SessionService struct {
	apiClient APIClient
	store     storage.AuthStorage
	logger    *slog.Logger
	now       func() time.Time
	onEnd     []func(ctx context.Context)
	mu        sync.Mutex
}

var (
	_ Service         = (*SessionService)(nil)
	_ api.TokenSource = (*SessionService)(nil)
)

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, store storage.AuthStorage, logger *slog.Logger) *SessionService {
	return &SessionService{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// OnSessionEnd регистрирует обработчик завершения сессии (logout или 401)
func (s *SessionService) OnSessionEnd(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnd = append(s.onEnd, fn)
}

// Register регистрирует нового пользователя
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (*storage.AuthData, error) {
	email := validation.NormalizeEmail(in.Email)
	displayName := strings.TrimSpace(in.DisplayName)

	for _, err := range []error{
		validation.ValidateEmail(email),
		validation.ValidatePassword(in.Password),
		validation.ValidateDisplayName(displayName),
		validation.ValidateZipCode(in.ZipCode),
	} {
		if err != nil {
			return nil, err
		}
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Email:       email,
		Password:    in.Password,
		DisplayName: displayName,
		ZipCode:     in.ZipCode,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Login выполняет аутентификацию пользователя
func (s *SessionService) Login(ctx context.Context, email, password string) (*storage.AuthData, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, &validation.FieldError{Field: "email", Message: "email and password are required"}
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveSession(ctx, resp)
}

// Logout выполняет выход из системы.
// Локальные данные удаляются, даже если сервер недоступен.
func (s *SessionService) Logout(ctx context.Context) error {
	if _, err := s.store.GetAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to get auth data: %w", err)
	}

	if err := s.apiClient.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to logout on server", slog.Any("error", err))
	}

	return s.ClearSession(ctx)
}

// ClearSession удаляет локальную сессию и уведомляет подписчиков.
// Используется как обработчик api.Client.OnUnauthorized.
func (s *SessionService) ClearSession(ctx context.Context) error {
	err := s.store.DeleteAuth(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	s.runEndHooks(ctx)

	return nil
}

func (s *SessionService) runEndHooks(ctx context.Context) {
	s.mu.Lock()
	hooks := append([]func(context.Context){}, s.onEnd...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(ctx)
	}
}

// Current возвращает сохраненную сессию
func (s *SessionService) Current(ctx context.Context) (*storage.AuthData, error) {
	return s.store.GetAuth(ctx)
}

// Profile загружает профиль и обновляет его копию в сессии
func (s *SessionService) Profile(ctx context.Context) (*pkgapi.UserResponse, error) {
	user, err := s.apiClient.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.syncProfile(ctx, user)
	return user, nil
}

// UpdateProfile изменяет профиль пользователя
func (s *SessionService) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserResponse, error) {
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if err := validation.ValidateDisplayName(name); err != nil {
			return nil, err
		}
		req.DisplayName = &name
	}
	if req.ZipCode != nil {
		if err := validation.ValidateZipCode(*req.ZipCode); err != nil {
			return nil, err
		}
	}

	user, err := s.apiClient.UpdateMe(ctx, req)
	if err != nil {
		return nil, err
	}
	s.syncProfile(ctx, user)
	return user, nil
}

// AccessToken реализует api.TokenSource.
// Истекший access token обновляется через refresh token с ротацией.
func (s *SessionService) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", fmt.Errorf("%w: %w", ErrNotLoggedIn, api.ErrUnauthorized)
		}
		return "", fmt.Errorf("failed to get auth data: %w", err)
	}

	if !auth.AccessTokenExpired(s.now(), refreshLeeway) {
		return auth.AccessToken, nil
	}

	if auth.RefreshToken == "" {
		return "", fmt.Errorf("%w: %w", ErrNotLoggedIn, api.ErrUnauthorized)
	}

	s.logger.DebugContext(ctx, "access token expired, refreshing")

	resp, err := s.apiClient.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh session: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return "", fmt.Errorf("failed to save refreshed tokens: %w", err)
	}

	return auth.AccessToken, nil
}

func (s *SessionService) saveSession(ctx context.Context, resp *pkgapi.TokenResponse) (*storage.AuthData, error) {
	auth := &storage.AuthData{
		Email:        resp.User.Email,
		UserID:       resp.User.ID,
		DisplayName:  resp.User.DisplayName,
		ZipCode:      resp.User.ZipCode,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}

	// Локальные данные принадлежат владельцу прежней сессии.
	// Без сессии владельца у них нет, их тоже сбрасываем.
	prev, err := s.store.GetAuth(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return nil, fmt.Errorf("failed to get auth data: %w", err)
	}
	if prev == nil || prev.UserID != auth.UserID {
		s.logger.DebugContext(ctx, "session owner changed, dropping local data")
		s.runEndHooks(ctx)
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	s.logger.InfoContext(ctx, "session saved", slog.String("user_id", auth.UserID))

	return auth, nil
}

// syncProfile обновляет профиль в сессии; ошибка не критична
func (s *SessionService) syncProfile(ctx context.Context, user *pkgapi.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return
	}

	auth.DisplayName = user.DisplayName
	auth.ZipCode = user.ZipCode
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		s.logger.WarnContext(ctx, "failed to update stored profile", slog.Any("error", err))
	}
}
