package zone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL публичный API зон зимостойкости USDA, ключ не требуется
	DefaultBaseURL = "https://phzmapi.org"
	// DefaultCacheTTL зоны меняются редко
	DefaultCacheTTL = 30 * 24 * time.Hour

	cacheKeyPrefix = "zone:"
	maxBodyBytes   = 64 * 1024
)

// ErrZoneNotFound означает, что API не знает такой индекс или вернул некорректную зону
var ErrZoneNotFound = errors.New("hardiness zone not found")

// zoneAPIResponse ответ phzmapi.org/{zip}.json
type zoneAPIResponse struct {
	Zone             string `json:"zone"`
	TemperatureRange string `json:"temperature_range"`
}

// Service определяет зону USDA по почтовому индексу с кэшированием
type Service struct {
	httpClient *http.Client
	cache      Cache
	logger     *slog.Logger
	baseURL    string
	ttl        time.Duration
}

// NewService создает сервис зон
func NewService(baseURL string, cache Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Service{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
		ttl:        ttl,
	}
}

// Lookup возвращает числовую зону (1-13) для индекса.
// Ошибки кэша не прерывают запрос, а только логируются.
func (s *Service) Lookup(ctx context.Context, zipCode string) (int, error) {
	key := cacheKeyPrefix + zipCode

	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "zone cache read failed", slog.String("key", key), slog.Any("error", err))
	} else if found {
		if zone, err := strconv.Atoi(cached); err == nil {
			s.logger.DebugContext(ctx, "zone cache hit", slog.String("key", key))
			return zone, nil
		}
		s.logger.WarnContext(ctx, "invalid cached zone", slog.String("key", key), slog.String("value", cached))
	}

	zone, err := s.fetch(ctx, zipCode)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Set(ctx, key, strconv.Itoa(zone), s.ttl); err != nil {
		s.logger.WarnContext(ctx, "zone cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return zone, nil
}

func (s *Service) fetch(ctx context.Context, zipCode string) (int, error) {
	apiURL := fmt.Sprintf("%s/%s.json", s.baseURL, url.PathEscape(zipCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create request to URL: %s", apiURL)
	}
	req.Header.Set("Accept", "application/json")

	s.logger.InfoContext(ctx, "requesting hardiness zone", slog.String("url", apiURL))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "zone request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, errors.Wrap(err, "failed to read zone response")
	}

	if resp.StatusCode == http.StatusNotFound {
		return 0, errors.Wrapf(ErrZoneNotFound, "zip %s", zipCode)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, errors.Errorf("zone API returned status %s", resp.Status)
	}

	var parsed zoneAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, errors.Wrap(err, "failed to decode zone response")
	}

	zone, err := ParseZone(parsed.Zone)
	if err != nil {
		return 0, errors.Wrapf(err, "zip %s", zipCode)
	}

	return zone, nil
}

// ParseZone извлекает номер зоны из строки вида "6b" или "10a"
func ParseZone(raw string) (int, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "abAB")
	zone, err := strconv.Atoi(trimmed)
	if err != nil || zone < 1 || zone > 13 {
		return 0, errors.Wrapf(ErrZoneNotFound, "unexpected zone value %q", raw)
	}
	return zone, nil
}
