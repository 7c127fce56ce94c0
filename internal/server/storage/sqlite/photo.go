package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
)

// ListPhotos returns photos of the plant, newest first
func (s *Storage) ListPhotos(ctx context.Context, userID string, plantID int64) ([]models.Photo, error) {
	query := `
		SELECT id, user_plant_id, image_data, caption, taken_at
		FROM plant_photos
		WHERE user_plant_id = ? AND user_id = ?
		ORDER BY taken_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, plantID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	photos := make([]models.Photo, 0)
	for rows.Next() {
		var (
			p       models.Photo
			caption sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.UserPlantID, &p.ImageData, &caption, &p.TakenAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		p.Caption = stringPtr(caption)
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return photos, nil
}

// CreatePhoto inserts photo and assigns its ID
func (s *Storage) CreatePhoto(ctx context.Context, userID string, photo *models.Photo) error {
	query := `
		INSERT INTO plant_photos (user_plant_id, user_id, image_data, caption, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		photo.UserPlantID,
		userID,
		photo.ImageData,
		nullString(photo.Caption),
		photo.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get photo id: %w", err)
	}

	photo.ID = id
	return nil
}

// DeletePhoto removes photo of the user's plant
func (s *Storage) DeletePhoto(ctx context.Context, userID string, plantID, photoID int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM plant_photos WHERE id = ? AND user_plant_id = ? AND user_id = ?`,
		photoID, plantID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	return expectAffected(result, storage.ErrPhotoNotFound)
}
