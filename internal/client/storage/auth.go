package storage

import (
	"context"
	"time"
)

// AuthStorage defines interface for storing the client session
type AuthStorage interface {
	// SaveAuth stores session data, replacing the previous one
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored session data
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored session (logout)
	// Returns ErrAuthNotFound if no session exists
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated reports whether a session with a usable refresh token exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the signed-in user's session on this device
type AuthData struct {
	Email        string `json:"email"`
	UserID       string `json:"user_id"`
	DisplayName  string `json:"display_name"`
	ZipCode      string `json:"zip_code"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// ExpiresAt момент истечения access token (unix seconds)
	ExpiresAt int64 `json:"expires_at"`
}

// AccessTokenExpired сообщает, истек ли access token с запасом leeway
func (a *AuthData) AccessTokenExpired(now time.Time, leeway time.Duration) bool {
	return !now.Add(leeway).Before(time.Unix(a.ExpiresAt, 0))
}
