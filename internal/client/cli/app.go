package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/iudanet/plantkeeper/internal/client/api"
	"github.com/iudanet/plantkeeper/internal/client/auth"
	"github.com/iudanet/plantkeeper/internal/client/garden"
	"github.com/iudanet/plantkeeper/internal/client/iocli"
	"github.com/iudanet/plantkeeper/internal/client/reminder"
	"github.com/iudanet/plantkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/plantkeeper/internal/logger"
)

// Options глобальные настройки клиента
type Options struct {
	ServerURL string
	DBPath    string
	LogLevel  string
}

// App связывает хранилище, API клиент, сессию, кэш сада и напоминания
type App struct {
	*Cli
	store       *boltdb.Storage
	cache       *garden.Cache
	unsubscribe func()
}

// Open собирает клиент. Закрывать через Close.
func Open(ctx context.Context, opts Options, stdio iocli.IO, logOut io.Writer) (*App, error) {
	log, err := logger.New(logOut, opts.LogLevel, "text")
	if err != nil {
		return nil, err
	}

	store, err := boltdb.New(ctx, opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(opts.ServerURL, log)
	session := auth.NewService(apiClient, store, log)
	cache := garden.New(apiClient, store, log)

	apiClient.SetTokenSource(session)
	// 401 означает, что сессия больше недействительна
	apiClient.OnUnauthorized(func(ctx context.Context) {
		if err := session.ClearSession(ctx); err != nil {
			log.WarnContext(ctx, "failed to clear session", slog.Any("error", err))
		}
	})
	session.OnSessionEnd(cache.Invalidate)

	c := New(stdio, session, cache, nil, apiClient, nil, log)
	notifier := reminder.NewCronNotifier(c.printNotification, log, time.Local)
	scheduler := reminder.NewScheduler(notifier, store, log)
	c.reminders = scheduler
	c.alarms = notifier

	bg := context.WithoutCancel(ctx)
	unsubscribe := cache.Subscribe(func(ch garden.Change) {
		if err := scheduler.Reconcile(bg, ch.Plants); err != nil {
			log.WarnContext(bg, "failed to reconcile reminders", slog.Any("error", err))
		}
	})

	return &App{
		Cli:         c,
		store:       store,
		cache:       cache,
		unsubscribe: unsubscribe,
	}, nil
}

// Close дожидается фонового обновления кэша и закрывает хранилище
func (a *App) Close() error {
	a.unsubscribe()
	a.cache.Wait()

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
