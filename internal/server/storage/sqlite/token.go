package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/plantkeeper/internal/crypto"
	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
)

// SaveRefreshToken stores a new refresh token. Only the SHA-256 of the value is persisted.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	hashed, err := crypto.HashToken(token.Token)
	if err != nil {
		return fmt.Errorf("failed to hash refresh token: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO refresh_tokens (token, user_id, expires_at, created_at)
		VALUES (?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, hashed, token.UserID, token.ExpiresAt, token.CreatedAt); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves refresh token by token value
func (s *Storage) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	hashed, err := crypto.HashToken(token)
	if err != nil {
		return nil, storage.ErrTokenNotFound
	}

	query := `SELECT user_id, expires_at, created_at FROM refresh_tokens WHERE token = ?`

	rt := &models.RefreshToken{Token: token}
	err = s.db.QueryRowContext(ctx, query, hashed).Scan(&rt.UserID, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return rt, nil
}

// DeleteRefreshToken deletes refresh token by token value
func (s *Storage) DeleteRefreshToken(ctx context.Context, token string) error {
	hashed, err := crypto.HashToken(token)
	if err != nil {
		return storage.ErrTokenNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE token = ?`, hashed)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}

	return expectAffected(result, storage.ErrTokenNotFound)
}

// DeleteUserTokens deletes all refresh tokens for a user
func (s *Storage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

// DeleteExpiredTokens removes all expired tokens
func (s *Storage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at < ?`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
