package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/mfigueroa/go-diorama-raytracer/pkg/core"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/daycycle"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/renderer"
	"github.com/mfigueroa/go-diorama-raytracer/pkg/scene"
)

// Server renders diorama frames on demand for preview in a browser.
// The scene is built once and shared read-only across requests.
type Server struct {
	port   int
	cycle  daycycle.Source
	scene  *scene.Scene
	camera *renderer.Camera
	logger core.Logger
}

// NewServer creates a preview server around the given light cycle
func NewServer(port int, cycle daycycle.Source, logger core.Logger) *Server {
	return &Server{
		port:   port,
		cycle:  cycle,
		scene:  scene.NewDioramaScene(cycle),
		camera: renderer.NewCamera(renderer.DefaultCameraConfig()),
		logger: logger,
	}
}

// Start starts the web server
func (s *Server) Start() error {
	http.HandleFunc("/frame", s.handleFrame)
	http.HandleFunc("/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Serving diorama preview on http://localhost%s/frame", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleFrame renders one frame as PNG. Query parameters:
// time (fraction of the cycle, default 0.25), width, height, samples.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	timeFrac := queryFloat(r, "time", 0.25)
	width := queryInt(r, "width", 600)
	height := queryInt(r, "height", 450)
	samples := queryInt(r, "samples", 4)

	if width <= 0 || height <= 0 || width*height > 4096*4096 {
		http.Error(w, "Invalid dimensions", http.StatusBadRequest)
		return
	}

	t := daycycle.Advance(0, timeFrac*daycycle.Period)
	state := s.cycle.State(t)

	opts := renderer.DefaultRenderOptions()
	opts.SamplesPerPixel = samples

	buffer, stats := renderer.RenderFrame(s.scene, s.camera, state, width, height, opts)
	if stats.DegenerateSamples > 0 {
		s.logger.Printf("Frame at t=%.3f: %d degenerate samples clamped", timeFrac, stats.DegenerateSamples)
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, buffer.ToImage()); err != nil {
		s.logger.Printf("Error encoding frame: %v", err)
	}
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}

func queryInt(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
