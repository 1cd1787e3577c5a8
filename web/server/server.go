package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/renderer"
	"github.com/MariusDoe/fractal-ray-marching/pkg/scene"
)

// Server handles web requests for the fractal ray marcher
type Server struct {
	port     int
	uploader *Uploader
}

// NewServer creates a new web server. S3 uploads are enabled when the
// S3_* environment variables are set.
func NewServer(port int) *Server {
	uploader, err := NewUploaderFromEnv()
	if err != nil {
		log.Printf("S3 uploads disabled: %v", err)
	}
	return &Server{port: port, uploader: uploader}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string  `json:"scene"`       // Scene preset name (e.g., "menger")
	Width       int     `json:"width"`       // Image width
	Height      int     `json:"height"`      // Image height
	Iterations  int     `json:"iterations"`  // Fractal iteration count
	Time        float64 `json:"time"`        // Scene time, drives animated presets
	Supersample int     `json:"supersample"` // Render scale before downsampling
	Orbit       float64 `json:"orbit"`       // Camera distance from the origin (0 = preset default)
	Yaw         float64 `json:"yaw"`         // Camera orbit yaw in radians
	Pitch       float64 `json:"pitch"`       // Camera orbit pitch in radians
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/inspect", s.handleInspect)
	http.HandleFunc("/api/scenes", s.handleScenes)
	http.HandleFunc("/api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the available scene presets
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	type sceneInfo struct {
		Index       int     `json:"index"`
		Name        string  `json:"name"`
		CameraOrbit float64 `json:"cameraOrbit"`
	}
	scenes := make([]sceneInfo, scene.Count())
	for i := range scenes {
		preset := scene.Lookup(uint32(i))
		scenes[i] = sceneInfo{Index: i, Name: preset.Name, CameraOrbit: preset.CameraOrbit}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scenes)
}

// handleRender renders a single frame and responds with a PNG. With
// upload=true and configured S3 credentials the frame is uploaded instead
// and the response describes the stored object.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneIndex, ok := sceneIndexByName(req.Scene)
	if !ok {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	startTime := time.Now()
	img, stats := renderFrame(req, sceneIndex)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("Rendered %s at %dx%d in %v (%.1f avg steps)",
		req.Scene, req.Width, req.Height, time.Since(startTime), stats.AverageSteps)

	if r.URL.Query().Get("upload") == "true" {
		if s.uploader == nil {
			http.Error(w, "Uploads are not configured", http.StatusServiceUnavailable)
			return
		}
		key := fmt.Sprintf("renders/%s_%d.png", req.Scene, time.Now().UnixNano())
		if err := s.uploader.Upload(r.Context(), buf.Bytes(), key, "image/png"); err != nil {
			http.Error(w, fmt.Sprintf("Upload failed: %v", err), http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"key":  key,
			"size": buf.Len(),
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(buf.Bytes())
}

// renderFrame builds render parameters for a request and renders one frame.
func renderFrame(req *RenderRequest, sceneIndex uint32) (image.Image, renderer.RenderStats) {
	renderWidth := req.Width * req.Supersample
	renderHeight := req.Height * req.Supersample

	orbit := req.Orbit
	if orbit == 0 {
		orbit = scene.Lookup(sceneIndex).CameraOrbit
	}
	eye := core.NewVec3(
		orbit*math.Cos(req.Pitch)*math.Sin(req.Yaw),
		orbit*math.Sin(req.Pitch),
		-orbit*math.Cos(req.Pitch)*math.Cos(req.Yaw),
	)

	params := core.NewParameters()
	params.SceneIndex = sceneIndex
	params.NumIterations = uint32(req.Iterations)
	params.Time = req.Time
	params.AspectScale = core.AspectScaleFor(renderWidth, renderHeight)
	params.CameraToWorld = renderer.LookAtOrigin(eye)

	r := renderer.NewRenderer(params, renderWidth, renderHeight, renderer.DefaultConfig())
	img, stats := r.RenderFrame()
	return renderer.Downsample(img, req.Width, req.Height), stats
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	// Initialize request with defaults handled by helper functions
	req := &RenderRequest{}

	// Parse scene name (string parameter, validated against the presets later)
	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "menger" // Default scene
	}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 300, 16, 2000); err != nil {
		return nil, err
	}
	if req.Iterations, err = parseIntParam(r.URL.Query(), "iterations", 12, 1, core.MaxIterationCount); err != nil {
		return nil, err
	}
	if req.Supersample, err = parseIntParam(r.URL.Query(), "supersample", 1, 1, 4); err != nil {
		return nil, err
	}
	if req.Time, err = parseFloatParam(r.URL.Query(), "time", 0, 0, 1e6); err != nil {
		return nil, err
	}
	if req.Orbit, err = parseFloatParam(r.URL.Query(), "orbit", 0, 0, 100); err != nil {
		return nil, err
	}
	if req.Yaw, err = parseFloatParam(r.URL.Query(), "yaw", 0.6, -math.Pi, math.Pi); err != nil {
		return nil, err
	}
	if req.Pitch, err = parseFloatParam(r.URL.Query(), "pitch", 0.4, -math.Pi/2, math.Pi/2); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height*req.Supersample*req.Supersample > 2000*2000 {
		log.Printf("Render warning: Large supersampled image may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// sceneIndexByName resolves a preset name to its index.
func sceneIndexByName(name string) (uint32, bool) {
	for i, presetName := range scene.Names() {
		if presetName == name {
			return uint32(i), true
		}
	}
	return 0, false
}
