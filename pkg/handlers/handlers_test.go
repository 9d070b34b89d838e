package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/codynn/pkg/handlers"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type blockingError struct {
	kind string
	id   string
}

func (e *blockingError) Error() string { return "language is in use" }

func (e *blockingError) Details() map[string]any {
	return map[string]any{"blocking": map[string]string{"kind": e.kind, "id": e.id}}
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"name": "Backend"})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["name"] != "Backend" {
		t.Errorf("name = %q, want Backend", body["name"])
	}
}

func TestRespondError_ClientError(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondError(w, discardLogger(), http.StatusBadRequest, errors.New("title is required"))

	var body map[string]any
	json.NewDecoder(w.Body).Decode(&body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body["error"] != "title is required" {
		t.Errorf("error = %v, want %q", body["error"], "title is required")
	}
}

func TestRespondError_ServerErrorIsGeneric(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	w := httptest.NewRecorder()

	handlers.RespondError(w, logger, http.StatusInternalServerError, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	if strings.Contains(w.Body.String(), "10.0.0.5") {
		t.Errorf("response leaked internal details: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Internal Server Error") {
		t.Errorf("response = %s, want generic message", w.Body.String())
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Error("server error should be logged in full")
	}
}

func TestRespondError_Details(t *testing.T) {
	w := httptest.NewRecorder()
	err := &blockingError{kind: "video", id: "42"}

	handlers.RespondError(w, discardLogger(), http.StatusConflict, err)

	var body struct {
		Error    string            `json:"error"`
		Blocking map[string]string `json:"blocking"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if body.Error != "language is in use" {
		t.Errorf("error = %q", body.Error)
	}
	if body.Blocking["kind"] != "video" || body.Blocking["id"] != "42" {
		t.Errorf("blocking = %v, want kind=video id=42", body.Blocking)
	}
}

func TestDecodeJSON(t *testing.T) {
	type cmd struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name       string
		body       string
		limit      int64
		wantErr    error
		wantStatus int
	}{
		{"valid", `{"name":"Backend","extra":true}`, 1024, nil, 0},
		{"malformed", `{"name":`, 1024, handlers.ErrInvalidBody, http.StatusBadRequest},
		{"too large", `{"name":"` + strings.Repeat("x", 64) + `"}`, 16, handlers.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			req.Body = http.MaxBytesReader(w, req.Body, tt.limit)

			var c cmd
			err := handlers.DecodeJSON(req, &c)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("DecodeJSON() error = %v", err)
				}
				if c.Name != "Backend" {
					t.Errorf("Name = %q, want Backend", c.Name)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeJSON() error = %v, want %v", err, tt.wantErr)
			}
			if got := handlers.DecodeStatus(err); got != tt.wantStatus {
				t.Errorf("DecodeStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
