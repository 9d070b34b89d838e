package docs_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/codynn/internal/docs"
	"github.com/JaimeStill/codynn/pkg/pagination"
	"github.com/JaimeStill/codynn/pkg/routes"
)

type recordingSystem struct {
	docs.System
	page pagination.PageRequest
	err  error
}

func (s *recordingSystem) List(_ context.Context, page pagination.PageRequest) (*pagination.PageResult[docs.Documentation], error) {
	s.page = page
	if s.err != nil {
		return nil, s.err
	}
	result := pagination.NewPageResult[docs.Documentation](nil, 0, page.Page, page.Limit)
	return &result, nil
}

func newMux(sys docs.System) *http.ServeMux {
	h := docs.NewHandler(sys, slog.New(slog.DiscardHandler), pagination.Config{DefaultLimit: 6, MaxLimit: 100})
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, h.Routes())
	return mux
}

func TestHandler_Search(t *testing.T) {
	sys := &recordingSystem{}
	mux := newMux(sys)

	req := httptest.NewRequest(http.MethodGet, "/documentation/search/channels?page=2&sortBy=popularity", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if sys.page.Search == nil || *sys.page.Search != "channels" {
		t.Errorf("search = %v, want channels", sys.page.Search)
	}
	if sys.page.Page != 2 || sys.page.Limit != 6 {
		t.Errorf("page = %d limit = %d, want 2 and default 6", sys.page.Page, sys.page.Limit)
	}
	if sys.page.SortBy != "popularity" {
		t.Errorf("sortBy = %q, want popularity", sys.page.SortBy)
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if data, ok := body["data"].([]any); !ok || len(data) != 0 {
		t.Errorf("data = %v, want empty array", body["data"])
	}
	if body["totalPages"] != float64(0) {
		t.Errorf("totalPages = %v, want 0", body["totalPages"])
	}
}

func TestHandler_List_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		sysErr     error
		wantStatus int
	}{
		{"non-numeric limit", "/documentation/get?limit=abc", nil, http.StatusBadRequest},
		{"unknown sort", "/documentation/get?sortBy=newest", pagination.ErrInvalidRequest, http.StatusBadRequest},
		{"store failure", "/documentation/get", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newMux(&recordingSystem{err: tt.sysErr})

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
