package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/logger"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// NewServer builds the HTTP server with the configured address and timeouts.
func NewServer(router http.Handler, cfg *config.Config) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
}

func Serve(router http.Handler, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := NewServer(router, cfg)

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	// kill (no param) sends syscall.SIGTERM, kill -2 is syscall.SIGINT.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("Shutdown server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown")
	}

	// Release resources only after in-flight requests are done
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info().Msg("Server exiting")
}

// NewRouterConfig wires the book store and health checks into the router settings.
func NewRouterConfig(cfg *config.Config, db *database.Database, version string) http_controllers.RouterConfig {
	routerCfg := http_controllers.RouterConfig{
		BookStore:      books.NewRepository(db.DB),
		Database:       db,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Version:        version,
	}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimitRPS = cfg.RateLimit.RPS
		routerCfg.RateLimitBurst = cfg.RateLimit.Burst
	}
	return routerCfg
}

func Run(cfg *config.Config, version string) {
	logger.Init(cfg.Global.Environment, cfg.Log.Level)
	log.Info().Str("version", version).Str("env", cfg.Global.Environment).Msg("Starting Bookshelf")

	if cfg.Global.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	router := http_controllers.NewRouter(NewRouterConfig(cfg, db, version))

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}

	Serve(router, cfg, onShutdown)
}
