package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrPlantNotFound indicates that plant does not exist or belongs to another user
	ErrPlantNotFound = errors.New("plant not found")

	// ErrDuplicatePlant indicates that catalog plant is already in user's garden
	ErrDuplicatePlant = errors.New("plant already in garden")

	// ErrPhotoNotFound indicates that photo was not found
	ErrPhotoNotFound = errors.New("photo not found")
)
