package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/plantkeeper/internal/models"
	"github.com/iudanet/plantkeeper/internal/server/storage"
	"github.com/iudanet/plantkeeper/internal/validation"
	"github.com/iudanet/plantkeeper/pkg/api"
)

// MsgDuplicatePlant возвращается при повторном добавлении каталожного растения
const MsgDuplicatePlant = "This plant is already in your garden."

// GardenHandler обрабатывает CRUD запросы сада пользователя
type GardenHandler struct {
	responder
	garden storage.GardenStorage
	now    func() time.Time
}

// NewGardenHandler создает новый handler для сада
func NewGardenHandler(logger *slog.Logger, garden storage.GardenStorage) *GardenHandler {
	return &GardenHandler{
		responder: responder{logger: logger},
		garden:    garden,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List обрабатывает GET /api/garden
func (h *GardenHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	plants, err := h.garden.ListPlants(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list plants", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, plants, http.StatusOK)
}

// Get обрабатывает GET /api/garden/{id}
func (h *GardenHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, id, ok := h.requirePlantRef(w, r)
	if !ok {
		return
	}

	plant, err := h.garden.GetPlant(ctx, userID, id)
	if err != nil {
		h.sendStorageError(w, r, err)
		return
	}

	h.sendJSON(w, plant, http.StatusOK)
}

// Create обрабатывает POST /api/garden
func (h *GardenHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req models.NewPlant
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode add plant request", slog.Any("error", err))
		h.sendDecodeError(w, err)
		return
	}

	if err := validation.ValidateNewPlant(req); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	plant := req.ToSavedPlant()
	plant.AddedAt = h.now()

	if err := h.garden.CreatePlant(ctx, userID, &plant); err != nil {
		h.sendStorageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "plant added",
		slog.String("user_id", userID),
		slog.Int64("id", plant.ID),
		slog.Int64("plant_id", plant.PlantID))

	h.sendJSON(w, plant, http.StatusCreated)
}

// Update обрабатывает PUT /api/garden/{id}
// Тело запроса: api.UpdatePlantRequest с дискриминатором kind
func (h *GardenHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, id, ok := h.requirePlantRef(w, r)
	if !ok {
		return
	}

	var req api.UpdatePlantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.sendDecodeError(w, err)
		return
	}

	update, err := req.ToUpdate()
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	plant, err := h.garden.GetPlant(ctx, userID, id)
	if err != nil {
		h.sendStorageError(w, r, err)
		return
	}

	// Название и атрибуты ухода каталожного растения не редактируются
	if update.Kind() == models.UpdateKindCustom && !plant.IsCustom() {
		h.logger.WarnContext(ctx, "custom update rejected for catalog plant", slog.Int64("id", id))
		h.sendError(w, "name and care attributes can only be changed for custom plants", http.StatusUnprocessableEntity)
		return
	}

	if err := validation.ValidatePlantUpdate(update, plant); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	update.Apply(plant)

	if err := h.garden.UpdatePlant(ctx, userID, plant); err != nil {
		h.sendStorageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "plant updated",
		slog.Int64("id", id),
		slog.String("kind", string(update.Kind())))

	h.sendJSON(w, plant, http.StatusOK)
}

// Delete обрабатывает DELETE /api/garden/{id}
func (h *GardenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, id, ok := h.requirePlantRef(w, r)
	if !ok {
		return
	}

	if err := h.garden.DeletePlant(ctx, userID, id); err != nil {
		h.sendStorageError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "plant removed", slog.Int64("id", id))

	w.WriteHeader(http.StatusNoContent)
}

// MarkWatered обрабатывает PUT /api/garden/{id}/watered
func (h *GardenHandler) MarkWatered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, id, ok := h.requirePlantRef(w, r)
	if !ok {
		return
	}

	plant, err := h.garden.MarkWatered(ctx, userID, id, h.now())
	if err != nil {
		h.sendStorageError(w, r, err)
		return
	}

	h.sendJSON(w, plant, http.StatusOK)
}

func (h *GardenHandler) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}

func (h *GardenHandler) requirePlantRef(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return "", 0, false
	}

	id, err := pathID(r, "id")
	if err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return "", 0, false
	}

	return userID, id, true
}

// sendStorageError переводит ошибки хранилища в HTTP статусы
func (h *GardenHandler) sendStorageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrPlantNotFound):
		h.sendError(w, "plant not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrDuplicatePlant):
		h.sendError(w, MsgDuplicatePlant, http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "garden storage error", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}
