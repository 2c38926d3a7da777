package server

import (
	"encoding/json"
	"image/png"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
)

func testServer() *Server {
	return NewServer(0, daycycle.DefaultCycle(), log.Default())
}

func TestHandleHealth(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleFrame(t *testing.T) {
	s := testServer()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/frame?time=0.25&width=32&height=24&samples=1", nil)
	s.handleFrame(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 frame, got %v", img.Bounds())
	}
}

func TestHandleFrame_Rejections(t *testing.T) {
	s := testServer()

	tests := []struct {
		name     string
		method   string
		target   string
		expected int
	}{
		{"post not allowed", http.MethodPost, "/frame", http.StatusMethodNotAllowed},
		{"zero width", http.MethodGet, "/frame?width=0&height=24", http.StatusBadRequest},
		{"negative height", http.MethodGet, "/frame?width=32&height=-1", http.StatusBadRequest},
		{"oversized frame", http.MethodGet, "/frame?width=100000&height=100000", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.handleFrame(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
