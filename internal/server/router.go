package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/plantkeeper/internal/server/handlers"
	"github.com/iudanet/plantkeeper/internal/server/middleware"
	"github.com/iudanet/plantkeeper/internal/server/storage"
)

// Deps содержит зависимости HTTP слоя
type Deps struct {
	Logger         *slog.Logger
	Users          storage.UserStorage
	Tokens         storage.TokenStorage
	Garden         storage.GardenStorage
	Photos         storage.PhotoStorage
	DB             handlers.Pinger
	ZoneCache      handlers.Pinger
	Zones          handlers.ZoneLookup
	Version        string
	JWT            handlers.JWTConfig
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// NewRouter собирает маршруты /api.
// Возвращаемая функция останавливает фоновые задачи middleware.
func NewRouter(d Deps) (*mux.Router, func()) {
	authHandler := handlers.NewAuthHandler(d.Logger, d.Users, d.Tokens, d.JWT)
	gardenHandler := handlers.NewGardenHandler(d.Logger, d.Garden)
	photoHandler := handlers.NewPhotoHandler(d.Logger, d.Garden, d.Photos)
	zoneHandler := handlers.NewZoneHandler(d.Logger, d.Zones, d.Users)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.DB, d.ZoneCache, d.Version)

	requireAuth := middleware.AuthMiddleware(d.Logger, d.JWT)
	limiter := middleware.NewRateLimiter(d.AuthRateLimit, d.AuthRateWindow, d.Logger)

	r := mux.NewRouter()
	r.Use(
		middleware.RecoveryMiddleware(d.Logger),
		middleware.LoggingWithSkip(d.Logger, []string{"/api/health"}),
	)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, "not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Публичные auth endpoints под rate limit
	public := api.PathPrefix("/auth").Subrouter()
	public.Use(limiter.Middleware)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)

	account := api.PathPrefix("/auth").Subrouter()
	account.Use(requireAuth)
	account.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	account.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	account.HandleFunc("/me", authHandler.UpdateMe).Methods(http.MethodPut)

	garden := api.PathPrefix("/garden").Subrouter()
	garden.Use(requireAuth)
	garden.HandleFunc("", gardenHandler.List).Methods(http.MethodGet)
	garden.HandleFunc("", gardenHandler.Create).Methods(http.MethodPost)
	garden.HandleFunc("/{id:[0-9]+}", gardenHandler.Get).Methods(http.MethodGet)
	garden.HandleFunc("/{id:[0-9]+}", gardenHandler.Update).Methods(http.MethodPut)
	garden.HandleFunc("/{id:[0-9]+}", gardenHandler.Delete).Methods(http.MethodDelete)
	garden.HandleFunc("/{id:[0-9]+}/watered", gardenHandler.MarkWatered).Methods(http.MethodPut)
	garden.HandleFunc("/{id:[0-9]+}/photos", photoHandler.List).Methods(http.MethodGet)
	garden.HandleFunc("/{id:[0-9]+}/photos", photoHandler.Create).Methods(http.MethodPost)
	garden.HandleFunc("/{id:[0-9]+}/photos/{photoId:[0-9]+}", photoHandler.Delete).Methods(http.MethodDelete)

	plants := api.PathPrefix("/plants").Subrouter()
	plants.Use(requireAuth)
	plants.HandleFunc("/zone", zoneHandler.Get).Methods(http.MethodGet)

	return r, limiter.Stop
}
