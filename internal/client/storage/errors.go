package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrSnapshotNotFound indicates that the garden was never cached on this device
	ErrSnapshotNotFound = errors.New("garden snapshot not found")

	// ErrSnapshotCorrupt indicates that the cached garden cannot be decoded
	ErrSnapshotCorrupt = errors.New("garden snapshot is corrupt")
)
