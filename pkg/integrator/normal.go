package integrator

import (
	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

// normalEpsilon is the sampling offset for the finite-difference gradient.
const normalEpsilon = 0.0005

// tetrahedral sampling directions; their signed combination approximates
// the gradient with four field evaluations instead of six
var normalOffsets = [4]core.Vec3{
	core.NewVec3(1, -1, -1),
	core.NewVec3(-1, -1, 1),
	core.NewVec3(-1, 1, -1),
	core.NewVec3(1, 1, 1),
}

// Normal estimates the field's surface normal at p by sampling the distance
// at four tetrahedrally arranged offsets. The result is unit length; a
// degenerate zero gradient falls back to the up axis.
func Normal(field core.Field, p core.Vec3) core.Vec3 {
	var gradient core.Vec3
	for _, k := range normalOffsets {
		dist := field.Evaluate(p.Add(k.Multiply(normalEpsilon))).Distance
		gradient = gradient.Add(k.Multiply(dist))
	}
	if gradient.LengthSquared() == 0 {
		return core.NewVec3(0, 1, 0)
	}
	return gradient.Normalize()
}
