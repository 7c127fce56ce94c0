// Package crypto содержит хеширование секретов, которые сервер хранит в БД.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrEmptyToken возвращается для пустого значения токена.
var ErrEmptyToken = errors.New("token cannot be empty")

// HashToken возвращает hex SHA-256 от refresh токена.
// В таблице refresh_tokens лежит только хеш, сам токен знает лишь клиент.
func HashToken(token string) (string, error) {
	if token == "" {
		return "", ErrEmptyToken
	}

	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:]), nil
}

// VerifyToken проверяет токен против сохраненного хеша за постоянное время.
func VerifyToken(token, hashed string) bool {
	computed, err := HashToken(token)
	if err != nil || hashed == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1
}
