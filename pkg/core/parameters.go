package core

import "github.com/go-gl/mathgl/mgl64"

// MaxIterationCount caps the host-supplied fractal iteration count. Every
// folding loop in the scene library is bounded by this value, which keeps
// per-pixel work finite no matter what the host sends.
const MaxIterationCount = 32

// Parameters is the per-frame configuration shared by every pixel
// computation. The host builds a fresh value between frames; within a frame
// it is read-only, so concurrent pixel evaluations need no synchronization.
type Parameters struct {
	CameraToWorld mgl64.Mat4 // camera-to-world transform; translation column is the eye position
	AspectScale   mgl64.Vec2 // per-axis scale correcting for non-square viewports
	Time          float64    // elapsed time in seconds, drives animated variants
	NumIterations uint32     // fractal folding depth, clamped to MaxIterationCount
	SceneIndex    uint32     // selects a scene preset; unknown values fall back to the default
}

// NewParameters returns parameters with an identity camera at the origin and
// a square aspect.
func NewParameters() Parameters {
	return Parameters{
		CameraToWorld: mgl64.Ident4(),
		AspectScale:   mgl64.Vec2{1, 1},
	}
}

// AspectScaleFor computes the aspect-correction scale for a viewport: the
// shorter axis maps to [-1, 1] and the longer one extends proportionally.
func AspectScaleFor(width, height int) mgl64.Vec2 {
	shorter := float64(min(width, height))
	return mgl64.Vec2{float64(width) / shorter, float64(height) / shorter}
}

// Iterations returns the clamped fractal iteration count.
func (p Parameters) Iterations() int {
	if p.NumIterations > MaxIterationCount {
		return MaxIterationCount
	}
	return int(p.NumIterations)
}
