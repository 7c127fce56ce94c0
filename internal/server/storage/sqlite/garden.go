package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
)

const plantColumns = `
	id, plant_id, common_name, scientific_name, nickname, thumbnail_url, notes,
	watering_reminder_enabled, watering_frequency_days, last_watered_at, added_at,
	watering, sunlight, cycle, care_level`

// rowScanner позволяет использовать один scan для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (*models.SavedPlant, error) {
	var (
		p                                    models.SavedPlant
		nickname, thumbnail, notes           sql.NullString
		watering, sunlight, cycle, careLevel sql.NullString
		frequency                            sql.NullInt64
		lastWatered                          sql.NullTime
	)

	err := row.Scan(
		&p.ID,
		&p.PlantID,
		&p.CommonName,
		&p.ScientificName,
		&nickname,
		&thumbnail,
		&notes,
		&p.WateringReminderEnabled,
		&frequency,
		&lastWatered,
		&p.AddedAt,
		&watering,
		&sunlight,
		&cycle,
		&careLevel,
	)
	if err != nil {
		return nil, err
	}

	p.Nickname = stringPtr(nickname)
	p.ThumbnailURL = stringPtr(thumbnail)
	p.Notes = stringPtr(notes)
	p.Watering = stringPtr(watering)
	p.Sunlight = stringPtr(sunlight)
	p.Cycle = stringPtr(cycle)
	p.CareLevel = stringPtr(careLevel)

	if frequency.Valid {
		v := int(frequency.Int64)
		p.WateringFrequencyDays = &v
	}
	if lastWatered.Valid {
		v := lastWatered.Time
		p.LastWateredAt = &v
	}

	return &p, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ListPlants returns user's plants ordered by common name
func (s *Storage) ListPlants(ctx context.Context, userID string) ([]models.SavedPlant, error) {
	query := `SELECT ` + plantColumns + ` FROM user_plants WHERE user_id = ? ORDER BY common_name COLLATE NOCASE, id`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	plants := make([]models.SavedPlant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return plants, nil
}

// GetPlant retrieves a single plant of the user
func (s *Storage) GetPlant(ctx context.Context, userID string, id int64) (*models.SavedPlant, error) {
	query := `SELECT ` + plantColumns + ` FROM user_plants WHERE id = ? AND user_id = ?`

	p, err := scanPlant(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPlantNotFound
		}
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	return p, nil
}

// CreatePlant inserts plant, assigning ID and AddedAt
func (s *Storage) CreatePlant(ctx context.Context, userID string, plant *models.SavedPlant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Один каталожный вид на пользователя, custom растения могут повторяться
	if plant.PlantID != 0 {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM user_plants WHERE user_id = ? AND plant_id = ?)`,
			userID, plant.PlantID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check duplicate plant: %w", err)
		}
		if exists {
			return storage.ErrDuplicatePlant
		}
	}

	if plant.AddedAt.IsZero() {
		plant.AddedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO user_plants (
			user_id, plant_id, common_name, scientific_name, nickname, thumbnail_url, notes,
			watering_reminder_enabled, watering_frequency_days, last_watered_at, added_at,
			watering, sunlight, cycle, care_level
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		userID,
		plant.PlantID,
		plant.CommonName,
		plant.ScientificName,
		nullString(plant.Nickname),
		nullString(plant.ThumbnailURL),
		nullString(plant.Notes),
		plant.WateringReminderEnabled,
		nullInt(plant.WateringFrequencyDays),
		nullTime(plant.LastWateredAt),
		plant.AddedAt,
		nullString(plant.Watering),
		nullString(plant.Sunlight),
		nullString(plant.Cycle),
		nullString(plant.CareLevel),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicatePlant
		}
		return fmt.Errorf("failed to insert plant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get plant id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	plant.ID = id
	return nil
}

// UpdatePlant persists mutable fields of the plant
func (s *Storage) UpdatePlant(ctx context.Context, userID string, plant *models.SavedPlant) error {
	query := `
		UPDATE user_plants SET
			common_name = ?, scientific_name = ?, nickname = ?, thumbnail_url = ?, notes = ?,
			watering_reminder_enabled = ?, watering_frequency_days = ?, last_watered_at = ?,
			watering = ?, sunlight = ?, cycle = ?, care_level = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		plant.CommonName,
		plant.ScientificName,
		nullString(plant.Nickname),
		nullString(plant.ThumbnailURL),
		nullString(plant.Notes),
		plant.WateringReminderEnabled,
		nullInt(plant.WateringFrequencyDays),
		nullTime(plant.LastWateredAt),
		nullString(plant.Watering),
		nullString(plant.Sunlight),
		nullString(plant.Cycle),
		nullString(plant.CareLevel),
		plant.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plant: %w", err)
	}

	return expectAffected(result, storage.ErrPlantNotFound)
}

// DeletePlant removes plant; photos are removed by ON DELETE CASCADE
func (s *Storage) DeletePlant(ctx context.Context, userID string, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM user_plants WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}

	return expectAffected(result, storage.ErrPlantNotFound)
}

// MarkWatered sets last_watered_at and returns the updated plant
func (s *Storage) MarkWatered(ctx context.Context, userID string, id int64, at time.Time) (*models.SavedPlant, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE user_plants SET last_watered_at = ? WHERE id = ? AND user_id = ?`,
		at, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mark plant watered: %w", err)
	}

	if err := expectAffected(result, storage.ErrPlantNotFound); err != nil {
		return nil, err
	}

	return s.GetPlant(ctx, userID, id)
}
