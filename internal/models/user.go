package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	ID           string     `json:"id"`                   // UUID пользователя
	Email        string     `json:"email"`                // уникальный email (lower case)
	PasswordHash string     `json:"-"`                    // bcrypt хеш пароля
	DisplayName  string     `json:"display_name"`
	ZipCode      string     `json:"zip_code"` // 5 цифр, используется для зоны зимостойкости
}

// RefreshToken представляет refresh token пользователя
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	Token     string    `json:"token"`      // значение у клиента, в БД лежит только SHA-256
	UserID    string    `json:"user_id"`    // ID пользователя
}
