package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/codynn/internal/api"
	"github.com/JaimeStill/codynn/internal/config"
	"github.com/JaimeStill/codynn/internal/infrastructure"
	"github.com/JaimeStill/codynn/pkg/module"
)

func newRouter(t *testing.T) (*module.Router, *infrastructure.Infrastructure) {
	t.Helper()

	t.Setenv("DATABASE_NAME", "codynn_test")
	t.Setenv("DATABASE_USER", "codynn")
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), config.BaseConfigFile))
	require.NoError(t, err)
	cfg.Metrics.Enabled = true
	cfg.Logging.Level = "error"

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)

	m, err := api.NewModule(cfg, infra)
	require.NoError(t, err)

	r := module.NewRouter()
	r.Mount(m)
	return r, infra
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNewModule_OpenAPI(t *testing.T) {
	r, _ := newRouter(t)

	w := serve(r, http.MethodGet, "/api/openapi.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	for _, path := range []string{
		"/api/languages/create",
		"/api/languages/getlanguage/{id}",
		"/api/repositories/get",
		"/api/repositories/search/{term}",
		"/api/videos/delete/{id}",
		"/api/documentation/search/{term}",
		"/api/jobroles/update/{id}",
		"/api/interviewQuestions/create",
	} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestNewModule_Docs(t *testing.T) {
	r, _ := newRouter(t)

	w := serve(r, http.MethodGet, "/api/docs")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/openapi.json")
}

func TestNewModule_TrailingSlash(t *testing.T) {
	r, _ := newRouter(t)

	w := serve(r, http.MethodGet, "/api/docs/")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/api/docs", w.Header().Get("Location"))
}

func TestNewModule_ValidationBeforeStorage(t *testing.T) {
	r, _ := newRouter(t)

	w := serve(r, http.MethodGet, "/api/languages/getlanguage")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestNewModule_MetricsRecordRoutePattern(t *testing.T) {
	r, infra := newRouter(t)

	serve(r, http.MethodGet, "/api/docs")

	families, err := infra.Metrics.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if !strings.HasSuffix(f.GetName(), "http_requests_total") {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "route" && l.GetValue() == "GET /docs" {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "expected a request counter labeled with the docs route")
}
