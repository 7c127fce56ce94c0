package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/plantkeeper/internal/server/storage"
	"github.com/iudanet/plantkeeper/internal/validation"
	"github.com/iudanet/plantkeeper/pkg/api"
)

// MsgZoneUnknown возвращается, если зону определить не удалось
const MsgZoneUnknown = "Could not determine hardiness zone for that zip code."

// ZoneLookup определяет зону зимостойкости USDA по почтовому индексу
type ZoneLookup interface {
	Lookup(ctx context.Context, zipCode string) (int, error)
}

// ZoneHandler обрабатывает запросы зоны зимостойкости
type ZoneHandler struct {
	responder
	zones ZoneLookup
	users storage.UserStorage
}

// NewZoneHandler создает новый handler для зон
func NewZoneHandler(logger *slog.Logger, zones ZoneLookup, users storage.UserStorage) *ZoneHandler {
	return &ZoneHandler{
		responder: responder{logger: logger},
		zones:     zones,
		users:     users,
	}
}

// Get обрабатывает GET /api/plants/zone?zipCode=
// Без параметра используется индекс из профиля пользователя
func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	zip := r.URL.Query().Get("zipCode")
	if zip == "" {
		userID, ok := GetUserID(ctx)
		if !ok {
			h.sendError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := h.users.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				h.sendError(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		zip = user.ZipCode
	}

	if err := validation.ValidateZipCode(zip); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	zone, err := h.zones.Lookup(ctx, zip)
	if err != nil {
		h.logger.WarnContext(ctx, "zone lookup failed", slog.String("zip", zip), slog.Any("error", err))
		h.sendError(w, MsgZoneUnknown, http.StatusBadRequest)
		return
	}

	h.sendJSON(w, api.ZoneResponse{ZipCode: zip, Zone: zone}, http.StatusOK)
}
