package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/codynn/internal/config"
	"github.com/JaimeStill/codynn/internal/infrastructure"
)

func newTestServer(t *testing.T, metricsEnabled bool) (*Server, *config.Config) {
	t.Helper()

	t.Setenv("DATABASE_NAME", "codynn_test")
	t.Setenv("DATABASE_USER", "codynn")
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), config.BaseConfigFile))
	require.NoError(t, err)
	cfg.Metrics.Enabled = metricsEnabled
	cfg.Logging.Level = "error"

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv, cfg
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func router(srv *Server, cfg *config.Config) http.Handler {
	r := buildRouter(srv.infra, cfg)
	srv.modules.Mount(r)
	return r
}

func TestRouter_Healthz(t *testing.T) {
	srv, cfg := newTestServer(t, false)

	w := get(t, router(srv, cfg), "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_ReadyzBeforeStartup(t *testing.T) {
	srv, cfg := newTestServer(t, false)

	w := get(t, router(srv, cfg), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "NOT READY", w.Body.String())
}

func TestRouter_ReadyzDatabaseNotStarted(t *testing.T) {
	srv, cfg := newTestServer(t, false)
	srv.infra.Lifecycle.WaitForStartup()

	w := get(t, router(srv, cfg), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "DATABASE UNAVAILABLE", w.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		wantStatus int
	}{
		{"enabled", true, http.StatusOK},
		{"disabled", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, cfg := newTestServer(t, tt.enabled)

			w := get(t, router(srv, cfg), cfg.Metrics.Path)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_MountsAPI(t *testing.T) {
	srv, cfg := newTestServer(t, false)

	w := get(t, router(srv, cfg), cfg.API.BasePath+"/openapi.json")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestNewModules_UsesInfrastructure(t *testing.T) {
	t.Setenv("DATABASE_NAME", "codynn_test")
	t.Setenv("DATABASE_USER", "codynn")
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), config.BaseConfigFile))
	require.NoError(t, err)

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)

	modules, err := NewModules(infra, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.API.BasePath, modules.API.Prefix())
}
