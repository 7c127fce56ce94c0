package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"
)

// ZipCodePattern допускает только 5-значные почтовые индексы США
var ZipCodePattern = regexp.MustCompile(`^\d{5}$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxDisplayNameLen максимальная длина отображаемого имени
	MaxDisplayNameLen = 64
)

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("email", "email cannot be empty")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "email is not a valid address")
	}

	return nil
}

// NormalizeEmail приводит email к виду, в котором он хранится
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword проверяет минимальные требования к паролю:
// не короче 8 символов и хотя бы одна цифра
func ValidatePassword(password string) error {
	if password == "" {
		return invalid("password", "password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return invalid("password", "password must be at least %d characters long", MinPasswordLen)
	}

	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return invalid("password", "password must contain at least one digit")
	}

	return nil
}

// ValidateDisplayName проверяет отображаемое имя
func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("display_name", "display name cannot be empty")
	}
	if len(name) > MaxDisplayNameLen {
		return invalid("display_name", "display name must not exceed %d characters", MaxDisplayNameLen)
	}
	return nil
}

// ValidateZipCode проверяет почтовый индекс (5 цифр)
func ValidateZipCode(zip string) error {
	if !ZipCodePattern.MatchString(zip) {
		return invalid("zip_code", "zip code must be 5 digits")
	}
	return nil
}
