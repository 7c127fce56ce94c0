package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/iudanet/plantkeeper/pkg/api"
)

// maxBodyBytes ограничивает тело запроса: models.MaxImageDataLen плюс JSON обвязка
const maxBodyBytes = 8 << 20

// errBodyTooLarge возвращается decodeJSON, если тело превышает maxBodyBytes
var errBodyTooLarge = errors.New("request body too large")

// responder содержит общие методы формирования ответов
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	WriteError(w, message, statusCode)
}

// sendDecodeError отвечает на ошибку разбора тела запроса
func (h responder) sendDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		h.sendError(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	h.sendError(w, "invalid request body", http.StatusBadRequest)
}

// decodeJSON разбирает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// WriteError пишет ErrorResponse; используется также в middleware
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// pathID извлекает положительный числовой параметр пути
func pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("%s is required", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}

	return id, nil
}
