package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v9"

	"github.com/iudanet/plantkeeper/internal/logger"
	"github.com/iudanet/plantkeeper/internal/server"
	"github.com/iudanet/plantkeeper/internal/server/config"
	"github.com/iudanet/plantkeeper/internal/server/handlers"
	"github.com/iudanet/plantkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/plantkeeper/internal/server/zone"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to TOML configuration file")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}()

	zoneCache, closeCache := newZoneCache(ctx, cfg.RedisAddr, log)
	defer closeCache()

	srv := server.New(cfg.ServerAddress, server.Deps{
		Logger:    log,
		Users:     db,
		Tokens:    db,
		Garden:    db,
		Photos:    db,
		DB:        db,
		ZoneCache: zoneCache,
		Zones:     zone.NewService(cfg.ZoneAPIURL, zoneCache, cfg.ZoneCacheTTL, log),
		Version:   Version,
		JWT: handlers.JWTConfig{
			Secret:          []byte(cfg.JWTSecret),
			AccessTokenTTL:  cfg.AccessTokenTTL,
			RefreshTokenTTL: cfg.RefreshTokenTTL,
		},
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateWindow: cfg.AuthRateWindow,
	})

	log.Info("PlantKeeper server starting",
		slog.String("version", Version),
		slog.String("database", cfg.DatabasePath))

	return srv.Run(ctx)
}

// newZoneCache подключается к Redis, если он настроен и доступен, иначе кэширует в памяти
func newZoneCache(ctx context.Context, addr string, log *slog.Logger) (zone.Cache, func()) {
	if addr == "" {
		log.Info("redis not configured, using in-memory zone cache")
		return zone.NewMemoryCache(), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable, using in-memory zone cache",
			slog.String("addr", addr),
			slog.Any("error", err))
		_ = client.Close()
		return zone.NewMemoryCache(), func() {}
	}

	log.Info("zone cache connected to redis", slog.String("addr", addr))

	return zone.NewRedisCache(client), func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", slog.Any("error", err))
		}
	}
}

func printVersion() {
	fmt.Printf("PlantKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
