package scene

import (
	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/sdf"
)

// kochScale is the per-iteration contraction toward the attractor vertex.
const kochScale = 1.5

// base tetrahedron shared by all iterations, inscribed in the [-1,1] cube
var (
	kochVertA = core.NewVec3(1, 1, 1)
	kochVertB = core.NewVec3(-1, -1, 1)
	kochVertC = core.NewVec3(-1, 1, -1)
	kochVertD = core.NewVec3(1, -1, -1)

	// fold planes through the origin sorting components toward the apex
	kochFoldXZ = core.NewVec3(1, 0, -1).Normalize()
	kochFoldYZ = core.NewVec3(0, 1, -1).Normalize()

	// contraction offset keeping kochVertA fixed under p -> p*1.5 - offset
	kochOffset = kochVertA.Multiply(kochScale - 1)
)

// Koch is a three-dimensional Koch-style snowflake: each iteration rotates
// the coordinates, folds space across two planes and contracts toward a
// fixed vertex. The point is stretched by 3/2 per iteration, so the final
// tetrahedron distance is divided by the accumulated scale to return to
// world units.
type Koch struct {
	Iterations int
	Albedo     core.Vec3
}

// Evaluate implements core.Field.
func (k Koch) Evaluate(p core.Vec3) core.Object {
	scale := 1.0
	for i := 0; i < k.Iterations; i++ {
		p = core.NewVec3(p.Y, p.Z, p.X)
		p = sdf.Mirror(p, core.Vec3{}, kochFoldXZ)
		p = sdf.Mirror(p, core.Vec3{}, kochFoldYZ)
		p = p.Multiply(kochScale).Subtract(kochOffset)
		scale *= kochScale
	}
	dist := sdf.Tetrahedron(p, kochVertA, kochVertB, kochVertC, kochVertD) / scale
	return core.Object{Distance: dist, Color: k.Albedo}
}
