package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/plantkeeper/internal/models"
)

const (
	// tokenIssuer записывается в iss и проверяется при валидации
	tokenIssuer = "plantkeeper"

	refreshTokenBytes = 32
)

var errInvalidToken = errors.New("invalid token")

// CustomClaims - claims access token. Sub дублирует UserID.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret          []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// GenerateAccessToken подписывает HS256 access token для пользователя.
// Возвращает токен и его время жизни в секундах (expires_in).
func GenerateAccessToken(cfg JWTConfig, user *models.User) (string, int64, error) {
	now := time.Now()

	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(cfg.AccessTokenTTL.Seconds()), nil
}

// ValidateAccessToken проверяет подпись, issuer и срок действия
func ValidateAccessToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.UserID == "" || claims.Subject != claims.UserID {
		return nil, errInvalidToken
	}

	return claims, nil
}

// GenerateRefreshToken создает одноразовый случайный refresh token пользователя.
// Значение отдается клиенту, хранилище сохраняет только его хеш.
func GenerateRefreshToken(cfg JWTConfig, userID string) (*models.RefreshToken, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}

	now := time.Now().UTC()
	return &models.RefreshToken{
		Token:     base64.RawURLEncoding.EncodeToString(buf),
		UserID:    userID,
		ExpiresAt: now.Add(cfg.RefreshTokenTTL),
		CreatedAt: now,
	}, nil
}
