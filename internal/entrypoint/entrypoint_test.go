package entrypoint

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		HTTP: config.HTTP{
			Port:         9000,
			Host:         "127.0.0.1",
			ReadTimeout:  time.Second,
			WriteTimeout: 2 * time.Second,
			IdleTimeout:  3 * time.Second,

			TrustedProxies: []string{"10.0.0.1"},
		},
		Database: config.Database{
			Driver:   config.DriverSQLite,
			DSN:      filepath.Join(t.TempDir(), "entrypoint.db"),
			LogLevel: "silent",
		},
		RateLimit: config.RateLimit{Enabled: true, RPS: 5, Burst: 7},
	}
}

func TestNewServer(t *testing.T) {
	cfg := testConfig(t)

	srv := NewServer(http.NotFoundHandler(), cfg)

	assert.Equal(t, "127.0.0.1:9000", srv.Addr)
	assert.Equal(t, time.Second, srv.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.Equal(t, 3*time.Second, srv.IdleTimeout)
}

func TestNewRouterConfig(t *testing.T) {
	cfg := testConfig(t)
	db, err := database.NewDatabase(cfg.Database)
	require.NoError(t, err)
	defer db.Close()

	t.Run("carries rate limit when enabled", func(t *testing.T) {
		routerCfg := NewRouterConfig(cfg, db, "1.2.3")

		assert.NotNil(t, routerCfg.BookStore)
		assert.Equal(t, db, routerCfg.Database)
		assert.Equal(t, "1.2.3", routerCfg.Version)
		assert.Equal(t, []string{"10.0.0.1"}, routerCfg.TrustedProxies)
		assert.Equal(t, 5.0, routerCfg.RateLimitRPS)
		assert.Equal(t, 7, routerCfg.RateLimitBurst)
	})

	t.Run("omits rate limit when disabled", func(t *testing.T) {
		disabled := *cfg
		disabled.RateLimit.Enabled = false

		routerCfg := NewRouterConfig(&disabled, db, "")
		assert.Zero(t, routerCfg.RateLimitRPS)
	})

	t.Run("wired router serves books", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := http_controllers.NewRouter(NewRouterConfig(cfg, db, "test"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/books", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
