package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/plantkeeper/internal/server/storage"
)

// Server HTTP сервер с фоновой очисткой просроченных refresh токенов
type Server struct {
	httpServer      *http.Server
	tokens          storage.TokenStorage
	logger          *slog.Logger
	stopMiddleware  func()
	cleanupInterval time.Duration
	shutdownTimeout time.Duration
}

// New создает сервер на адресе addr
func New(addr string, d Deps) *Server {
	router, stop := NewRouter(d)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		tokens:          d.Tokens,
		logger:          d.Logger,
		stopMiddleware:  stop,
		cleanupInterval: time.Hour,
		shutdownTimeout: 10 * time.Second,
	}
}

// Handler возвращает корневой обработчик (для тестов)
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run обслуживает запросы до отмены ctx, затем корректно завершает работу
func (s *Server) Run(ctx context.Context) error {
	defer s.stopMiddleware()

	go s.cleanupTokens(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}

func (s *Server) cleanupTokens(ctx context.Context) {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := s.tokens.DeleteExpiredTokens(ctx)
			if err != nil {
				s.logger.Error("failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if deleted > 0 {
				s.logger.Info("expired refresh tokens deleted", slog.Int("count", deleted))
			}
		}
	}
}
