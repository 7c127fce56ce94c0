package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"` // не короче 8 символов, хотя бы одна цифра
	DisplayName string `json:"display_name"`
	ZipCode     string `json:"zip_code"` // 5 цифр
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse представляет профиль пользователя
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	ZipCode     string `json:"zip_code"`
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`  // JWT access token
	RefreshToken string       `json:"refresh_token"` // refresh token
	ExpiresIn    int64        `json:"expires_in"`    // время жизни access token в секундах
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest представляет запрос на изменение профиля.
// nil поля не изменяются.
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	ZipCode     *string `json:"zip_code,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
