package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Переменные окружения, переопределяющие файл конфигурации
const (
	EnvJWTSecret = "PLANTKEEPER_JWT_SECRET"
	EnvRedisAddr = "PLANTKEEPER_REDIS_ADDR"
	EnvDBPath    = "PLANTKEEPER_DB_PATH"
	EnvAddress   = "PLANTKEEPER_SERVER_ADDRESS"
)

const minJWTSecretLen = 16

// Config конфигурация сервера
type Config struct {
	ServerAddress   string
	DatabasePath    string
	JWTSecret       string
	LogLevel        string
	LogFormat       string
	RedisAddr       string
	ZoneAPIURL      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ZoneCacheTTL    time.Duration
	AuthRateWindow  time.Duration
	AuthRateLimit   int
}

type tomlConfig struct {
	ServerAddress   string `toml:"server_address"`
	DatabasePath    string `toml:"database_path"`
	JWTSecret       string `toml:"jwt_secret"`
	AccessTokenTTL  string `toml:"access_token_ttl"`
	RefreshTokenTTL string `toml:"refresh_token_ttl"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	RedisAddr       string `toml:"redis_addr"`
	ZoneAPIURL      string `toml:"zone_api_url"`
	ZoneCacheTTL    string `toml:"zone_cache_ttl"`
	AuthRateWindow  string `toml:"auth_rate_window"`
	AuthRateLimit   int    `toml:"auth_rate_limit"`
}

// Load читает TOML файл (путь может быть пустым), затем .env и переменные окружения.
// Отсутствующий .env не является ошибкой.
func Load(path string) (*Config, error) {
	var tc tomlConfig
	if path != "" {
		if _, err := toml.DecodeFile(path, &tc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env file")
	}

	applyEnv(&tc)

	return tc.build()
}

func applyEnv(tc *tomlConfig) {
	if v := os.Getenv(EnvJWTSecret); v != "" {
		tc.JWTSecret = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		tc.RedisAddr = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		tc.DatabasePath = v
	}
	if v := os.Getenv(EnvAddress); v != "" {
		tc.ServerAddress = v
	}
}

func (tc tomlConfig) build() (*Config, error) {
	cfg := &Config{
		ServerAddress: tc.ServerAddress,
		DatabasePath:  tc.DatabasePath,
		JWTSecret:     tc.JWTSecret,
		LogLevel:      tc.LogLevel,
		LogFormat:     tc.LogFormat,
		RedisAddr:     tc.RedisAddr,
		ZoneAPIURL:    tc.ZoneAPIURL,
		AuthRateLimit: tc.AuthRateLimit,
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = "localhost:8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "plantkeeper.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.ZoneAPIURL == "" {
		cfg.ZoneAPIURL = "https://phzmapi.org"
	}
	if cfg.AuthRateLimit == 0 {
		cfg.AuthRateLimit = 10
	}
	if cfg.AuthRateLimit < 0 {
		return nil, errors.Errorf("auth_rate_limit must be positive, got %d", cfg.AuthRateLimit)
	}

	if cfg.JWTSecret == "" {
		return nil, errors.Errorf("jwt_secret is not set (use %s)", EnvJWTSecret)
	}
	if len(cfg.JWTSecret) < minJWTSecretLen {
		return nil, errors.Errorf("jwt_secret too short, minimum length: %d", minJWTSecretLen)
	}

	durations := []struct {
		dst  *time.Duration
		name string
		raw  string
		def  time.Duration
	}{
		{&cfg.AccessTokenTTL, "access_token_ttl", tc.AccessTokenTTL, 15 * time.Minute},
		{&cfg.RefreshTokenTTL, "refresh_token_ttl", tc.RefreshTokenTTL, 30 * 24 * time.Hour},
		{&cfg.ZoneCacheTTL, "zone_cache_ttl", tc.ZoneCacheTTL, 30 * 24 * time.Hour},
		{&cfg.AuthRateWindow, "auth_rate_window", tc.AuthRateWindow, time.Minute},
	}

	for _, d := range durations {
		if d.raw == "" {
			*d.dst = d.def
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", d.name)
		}
		if v <= 0 {
			return nil, errors.Errorf("%s must be positive, got %v", d.name, v)
		}
		*d.dst = v
	}

	return cfg, nil
}
