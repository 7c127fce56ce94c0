package boltdb

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/plantkeeper/internal/client/storage"
)

// на устройстве одна сессия
var sessionKey = []byte("session")

// SaveAuth сохраняет сессию, заменяя предыдущую
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil {
		return errors.New("auth data is nil")
	}
	return s.putJSON(bucketAuth, sessionKey, auth)
}

// GetAuth возвращает сохраненную сессию или storage.ErrAuthNotFound
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	auth := &storage.AuthData{}

	found, err := s.getJSON(bucketAuth, sessionKey, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !found {
		return nil, storage.ErrAuthNotFound
	}

	return auth, nil
}

// DeleteAuth удаляет сессию (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if b.Get(sessionKey) == nil {
			return storage.ErrAuthNotFound
		}
		if err := b.Delete(sessionKey); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}

// IsAuthenticated проверяет наличие сессии.
// Просроченный access token не важен: его обновит refresh token.
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		return false, nil
	case err != nil:
		return false, err
	}

	return auth.RefreshToken != "", nil
}
