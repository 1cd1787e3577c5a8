package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/renderer"
	"github.com/MariusDoe/fractal-ray-marching/pkg/scene"
)

// InspectResponse represents the JSON response for a ray probe
type InspectResponse struct {
	Hit       bool       `json:"hit"`
	Scene     string     `json:"scene"`
	Origin    [3]float64 `json:"origin"`
	Direction [3]float64 `json:"direction"`
	Point     [3]float64 `json:"point"`
	Normal    [3]float64 `json:"normal"`
	Distance  float64    `json:"distance"`
	Steps     int        `json:"steps"`
	Closeness float64    `json:"closeness"`
	Color     string     `json:"color"`
}

// handleInspect traces a single primary ray through the scene and returns
// what it found. The probe takes the same camera parameters as /api/render
// plus u/v screen coordinates in [-1,1].
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	sceneIndex, ok := sceneIndexByName(req.Scene)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unknown scene: " + req.Scene})
		return
	}

	u, err := parseFloatParam(r.URL.Query(), "u", 0, -1, 1)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	v, err := parseFloatParam(r.URL.Query(), "v", 0, -1, 1)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

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
	params.AspectScale = core.AspectScaleFor(req.Width, req.Height)
	params.CameraToWorld = renderer.LookAtOrigin(eye)

	probe := renderer.NewRenderer(params, req.Width, req.Height, renderer.DefaultConfig())
	ray, result := probe.MarchPixel(u, v)

	response := InspectResponse{
		Hit:       result.Hit,
		Scene:     req.Scene,
		Origin:    vec3ToArray(ray.Origin),
		Direction: vec3ToArray(ray.Direction),
		Distance:  result.Distance,
		Steps:     result.Steps,
		Closeness: result.Closeness,
	}
	if result.Hit {
		response.Point = vec3ToArray(result.Position)
		response.Normal = vec3ToArray(probe.Normal(result.Position))
		response.Color = colorToHex(result.Color)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func vec3ToArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func colorToHex(c core.Vec3) string {
	c = c.Clamp(0.0, 1.0)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
