package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/plantkeeper/pkg/api"
)

// TokenSource выдает действующий access token для авторизованных запросов.
// Реализация может обновить токен через Refresh перед возвратом.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
	logger         *slog.Logger
	baseURL        string
	mu             sync.RWMutex
}

// NewClient создает новый API клиент
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL: baseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetTokenSource задает источник access token.
// Вызывается после создания сервиса авторизации, которому сам нужен Client.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = ts
}

// OnUnauthorized регистрирует обработчик ответа 401 на авторизованный запрос
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", nil, &resp, false); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос.
// authenticated добавляет Bearer токен и вызывает OnUnauthorized на 401.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any, authenticated bool) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if authenticated {
		token, err := c.accessToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		_ = json.Unmarshal(respBody, &errResp)
		apiErr := newAPIError(resp.StatusCode, errResp.Message)

		c.logger.DebugContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))

		if authenticated && resp.StatusCode == http.StatusUnauthorized {
			c.unauthorized(ctx)
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// accessToken получает токен из TokenSource.
// Отсутствие сессии трактуется как 401.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	ts := c.tokens
	c.mu.RUnlock()

	if ts == nil {
		return "", &APIError{Err: ErrUnauthorized, StatusCode: http.StatusUnauthorized, Message: "not logged in"}
	}

	token, err := ts.AccessToken(ctx)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			c.unauthorized(ctx)
		}
		return "", err
	}

	return token, nil
}

func (c *Client) unauthorized(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()

	if fn != nil {
		fn(ctx)
	}
}
