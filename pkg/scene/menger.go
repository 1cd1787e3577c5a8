package scene

import (
	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/sdf"
)

// mengerInitialScale maps the [-1,1] cube onto a single repeat cell, so the
// first carving pass cuts exactly one cross through the cube's center.
const mengerInitialScale = 0.5

// Menger is a sponge carved from a cube: each iteration subtracts a tiled
// cross at a higher spatial frequency. CrossWidth is the carving half width
// in repeat-cell space (the classic sponge uses 1/6), ScaleFactor the
// per-iteration frequency multiplier (classically 3).
type Menger struct {
	Iterations  int
	CrossWidth  float64
	ScaleFactor float64
	Albedo      core.Vec3
}

// Evaluate implements core.Field.
func (m Menger) Evaluate(p core.Vec3) core.Object {
	dist := sdf.Box(p, core.NewVec3(1, 1, 1))
	scale := mengerInitialScale
	for i := 0; i < m.Iterations; i++ {
		// dividing by the accumulated scale keeps the carving
		// contribution in world units
		carved := sdf.Cross(sdf.Repeat(p.Multiply(scale)), m.CrossWidth) / scale
		dist = max(dist, -carved)
		scale *= m.ScaleFactor
	}
	return core.Object{Distance: dist, Color: m.Albedo}
}
