package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
	"github.com/iudanet/plantkeeper/internal/validation"
)

// PhotoHandler обрабатывает запросы фотографий растений
type PhotoHandler struct {
	responder
	garden storage.GardenStorage
	photos storage.PhotoStorage
	now    func() time.Time
}

// NewPhotoHandler создает новый handler для фотографий
func NewPhotoHandler(logger *slog.Logger, garden storage.GardenStorage, photos storage.PhotoStorage) *PhotoHandler {
	return &PhotoHandler{
		responder: responder{logger: logger},
		garden:    garden,
		photos:    photos,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List обрабатывает GET /api/garden/{id}/photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, plantID, ok := h.requireOwnedPlant(w, r)
	if !ok {
		return
	}

	photos, err := h.photos.ListPhotos(ctx, userID, plantID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list photos", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, photos, http.StatusOK)
}

// Create обрабатывает POST /api/garden/{id}/photos
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, plantID, ok := h.requireOwnedPlant(w, r)
	if !ok {
		return
	}

	var req models.NewPhoto
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode photo", slog.Any("error", err))
		h.sendDecodeError(w, err)
		return
	}

	if err := validation.ValidatePhoto(req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	photo := models.Photo{
		UserPlantID: plantID,
		ImageData:   req.ImageData,
		Caption:     req.Caption,
		TakenAt:     h.now(),
	}

	if err := h.photos.CreatePhoto(ctx, userID, &photo); err != nil {
		h.logger.ErrorContext(ctx, "failed to save photo", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "photo added",
		slog.Int64("plant_id", plantID),
		slog.Int64("photo_id", photo.ID),
		slog.Int("bytes", len(photo.ImageData)))

	h.sendJSON(w, photo, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/garden/{id}/photos/{photoId}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	plantID, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	photoID, err := pathID(r, "photoId")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.photos.DeletePhoto(ctx, userID, plantID, photoID); err != nil {
		if errors.Is(err, storage.ErrPhotoNotFound) {
			h.sendError(w, "photo not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete photo", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requireOwnedPlant проверяет, что растение существует и принадлежит пользователю
func (h *PhotoHandler) requireOwnedPlant(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return "", 0, false
	}

	plantID, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return "", 0, false
	}

	if _, err := h.garden.GetPlant(ctx, userID, plantID); err != nil {
		if errors.Is(err, storage.ErrPlantNotFound) {
			h.sendError(w, "plant not found", http.StatusNotFound)
			return "", 0, false
		}
		h.logger.ErrorContext(ctx, "failed to get plant", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return "", 0, false
	}

	return userID, plantID, true
}
