package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

const tolerance = 1e-9

func vec3Near(a, b core.Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}

func TestCameraCenterRayIsForward(t *testing.T) {
	camera := NewCamera(core.NewParameters())

	ray := camera.GetRay(0, 0)

	if !vec3Near(ray.Origin, core.Vec3{}, tolerance) {
		t.Errorf("Expected origin at zero, got %v", ray.Origin)
	}
	if !vec3Near(ray.Direction, core.NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected forward direction (0,0,1), got %v", ray.Direction)
	}
}

func TestCameraVerticalFlip(t *testing.T) {
	camera := NewCamera(core.NewParameters())

	// positive screen v points down in world space (texture convention)
	ray := camera.GetRay(0, 0.5)
	if ray.Direction.Y >= 0 {
		t.Errorf("Expected downward direction for positive v, got %v", ray.Direction)
	}

	ray = camera.GetRay(0.5, 0)
	if ray.Direction.X <= 0 {
		t.Errorf("Expected rightward direction for positive u, got %v", ray.Direction)
	}
}

func TestCameraAspectScale(t *testing.T) {
	params := core.NewParameters()
	params.AspectScale = core.AspectScaleFor(200, 100)
	camera := NewCamera(params)

	wide := camera.GetRay(0.5, 0)
	tall := camera.GetRay(0, 0.5)

	// the horizontal axis is stretched twice as far as the vertical one
	wideAngle := math.Atan2(wide.Direction.X, wide.Direction.Z)
	tallAngle := math.Atan2(-tall.Direction.Y, tall.Direction.Z)
	if wideAngle <= tallAngle {
		t.Errorf("Expected wider horizontal spread: %v <= %v", wideAngle, tallAngle)
	}
}

func TestCameraDirectionsAreUnitLength(t *testing.T) {
	params := core.NewParameters()
	params.AspectScale = core.AspectScaleFor(320, 200)
	params.CameraToWorld = CameraMatrix(core.NewVec3(1, -2, 3), 0.7, -0.3)
	camera := NewCamera(params)

	for _, uv := range [][2]float64{{0, 0}, {1, 1}, {-1, 0.5}, {0.25, -0.75}} {
		ray := camera.GetRay(uv[0], uv[1])
		if math.Abs(ray.Direction.Length()-1) > tolerance {
			t.Errorf("Direction at %v has length %v", uv, ray.Direction.Length())
		}
	}
}

func TestCameraOriginIsMatrixTranslation(t *testing.T) {
	params := core.NewParameters()
	position := core.NewVec3(1, 2, 3)
	params.CameraToWorld = CameraMatrix(position, 1.2, 0.4)
	camera := NewCamera(params)

	ray := camera.GetRay(0.3, -0.8)
	if !vec3Near(ray.Origin, position, tolerance) {
		t.Errorf("Expected origin %v, got %v", position, ray.Origin)
	}
}

func TestLookAtOrigin(t *testing.T) {
	tests := []struct {
		name     string
		position core.Vec3
	}{
		{"behind", core.NewVec3(0, 0, -5)},
		{"right", core.NewVec3(5, 0, 0)},
		{"above and behind", core.NewVec3(0, 3, -4)},
		{"off-axis", core.NewVec3(2, -1, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := core.NewParameters()
			params.CameraToWorld = LookAtOrigin(tt.position)
			camera := NewCamera(params)

			ray := camera.GetRay(0, 0)
			toOrigin := tt.position.Negate().Normalize()
			if !vec3Near(ray.Direction, toOrigin, 1e-6) {
				t.Errorf("Expected center ray %v toward the origin, got %v", toOrigin, ray.Direction)
			}
		})
	}
}

func TestCameraMatrixClampsPitch(t *testing.T) {
	extreme := CameraMatrix(core.Vec3{}, 0, 10)
	straightUp := CameraMatrix(core.Vec3{}, 0, math.Pi/2)

	if !extreme.ApproxEqual(straightUp) {
		t.Errorf("Expected pitch beyond pi/2 to clamp")
	}
}

func TestAspectScaleFor(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expected      mgl64.Vec2
	}{
		{"square", 100, 100, mgl64.Vec2{1, 1}},
		{"wide", 200, 100, mgl64.Vec2{2, 1}},
		{"tall", 100, 400, mgl64.Vec2{1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale := core.AspectScaleFor(tt.width, tt.height)
			if scale != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, scale)
			}
		})
	}
}
