package entrypoint

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		HTTP:   config.HTTP{Port: 8000, Host: "127.0.0.1"},
		Global: config.Global{Environment: "test", ShutdownTimeoutInSeconds: 1},
		Database: config.Database{
			Driver:   config.DatabaseDriverSQLite,
			Path:     filepath.Join(t.TempDir(), "entrypoint.db"),
			LogLevel: "silent",
		},
		Log:     config.Log{Level: "error", Format: "json", MaxSizeMB: 1},
		Metrics: config.Metrics{Enabled: true},
	}
}

func TestSetup(t *testing.T) {
	cfg := testConfig(t)

	db, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.NoError(t, db.Ping())
}

func TestSetup_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = config.DatabaseDriverPostgres

	_, _, err := Setup(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.dsn is required")
}

func TestNewRouter_ServesAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	db, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	router := NewRouter(cfg, db, "test")

	for _, path := range []string{"/health", "/author", "/books", "/authors-with-multiple-books", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestNewRouter_MetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false
	db, cleanup, err := Setup(cfg)
	require.NoError(t, err)
	defer cleanup()

	router := NewRouter(cfg, db, "test")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMigrate(t *testing.T) {
	cfg := testConfig(t)

	require.NoError(t, Migrate(cfg))
	// Idempotent
	require.NoError(t, Migrate(cfg))
}
