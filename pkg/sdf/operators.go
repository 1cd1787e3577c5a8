package sdf

import (
	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

// Union combines two distance samples, keeping the nearer surface. On an
// exact tie the second operand wins, so later scene entries paint over
// earlier ones.
func Union(a, b core.Object) core.Object {
	if b.Distance <= a.Distance {
		return b
	}
	return a
}

// Mirror folds space across the plane through anchor with the given unit
// normal: points on the side the normal points away from are reflected onto
// the other side, points already there are untouched. This is the basic
// iterated-function-system fold.
func Mirror(p, anchor, normal core.Vec3) core.Vec3 {
	d := p.Subtract(anchor).Dot(normal)
	if d >= 0 {
		return p
	}
	return p.Subtract(normal.Multiply(2 * d))
}

// Repeat wraps p into the unit cell centered at the origin, tiling the
// evaluated shape infinitely with period 1 along each axis.
func Repeat(p core.Vec3) core.Vec3 {
	half := core.NewVec3(0.5, 0.5, 0.5)
	return p.Add(half).Fract().Subtract(half)
}
