package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/JaimeStill/codynn/pkg/metrics"
)

func newMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	cfg := &metrics.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}
	return metrics.New(cfg)
}

func TestMiddleware_LabelsByPattern(t *testing.T) {
	m := newMetrics(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /videos/get/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := m.Middleware()(mux)

	for _, id := range []string{"a", "b", "c"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/videos/get/"+id, nil))
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "GET /videos/get/{id}", "200"))
	if got != 3 {
		t.Errorf("requests for pattern = %v, want 3", got)
	}

	unmatched := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	if unmatched != 1 {
		t.Errorf("unmatched requests = %v, want 1", unmatched)
	}

	if n := testutil.CollectAndCount(m.RequestDuration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := newMetrics(t)
	m.RequestsTotal.WithLabelValues("GET", "GET /languages", "200").Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(w.Result().Body)
	if !strings.Contains(string(body), "codynn_http_requests_total") {
		t.Error("exposition missing request counter")
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("exposition missing Go collector")
	}
}

func TestRegisterDB(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	m := newMetrics(t)
	if err := m.RegisterDB(db, "codynn"); err != nil {
		t.Fatalf("RegisterDB() error = %v", err)
	}
	if err := m.RegisterDB(db, "codynn"); err == nil {
		t.Error("duplicate registration should fail")
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_METRICS_ENABLED", "true")

	cfg := &metrics.Config{}
	if err := cfg.Finalize(&metrics.Env{Enabled: "TEST_METRICS_ENABLED"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if !cfg.Enabled || cfg.Path != "/metrics" || cfg.Namespace != "codynn" {
		t.Errorf("cfg = %+v", cfg)
	}

	bad := &metrics.Config{Path: "metrics"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("expected error for relative path")
	}
}
