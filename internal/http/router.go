package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Warn().Err(err).Strs("trusted_proxies", cfg.TrustedProxies).Msg("Invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(SecurityHeadersMiddleware())

	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst < 1 {
			burst = 1
		}
		router.Use(NewIPRateLimiter(cfg.RateLimitRPS, burst).Middleware())
	}

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)
	router.GET("/ping", healthController.Ping)

	booksController := NewBooksController(cfg.BookStore)
	router.GET("/books/schema", booksController.Schema)
	router.GET("/books", booksController.GetAllBooks)
	router.POST("/books", booksController.CreateBook)
	router.GET("/books/:isbn", booksController.GetBook)
	router.PATCH("/books/:isbn", booksController.UpdateBook)
	router.DELETE("/books/:isbn", booksController.DeleteBook)

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "route not found", CodeRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method not allowed", CodeMethodNotAllowed)
	})

	return router
}
