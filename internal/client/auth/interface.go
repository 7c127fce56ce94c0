package auth

import (
	"context"

	"github.com/iudanet/plantkeeper/internal/client/storage"
	pkgapi "github.com/iudanet/plantkeeper/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for account operations.
// It manages both authentication (register/login) and the stored session.
type Service interface {
	// Register создает аккаунт и сохраняет сессию
	Register(ctx context.Context, in RegisterInput) (*storage.AuthData, error)

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, email, password string) (*storage.AuthData, error)

	// Logout уведомляет сервер (best effort) и всегда удаляет локальную сессию
	Logout(ctx context.Context) error

	// Current возвращает сохраненную сессию
	// Returns storage.ErrAuthNotFound if nobody is logged in
	Current(ctx context.Context) (*storage.AuthData, error)

	// Profile загружает профиль с сервера
	Profile(ctx context.Context) (*pkgapi.UserResponse, error)

	// UpdateProfile изменяет имя и/или почтовый индекс
	UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserResponse, error)
}

// APIClient описывает серверные методы, нужные сервису авторизации
type APIClient interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.TokenResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*pkgapi.UserResponse, error)
	UpdateMe(ctx context.Context, req pkgapi.UpdateProfileRequest) (*pkgapi.UserResponse, error)
}
