package scene

import (
	"math"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/sdf"
)

// sierpinskiBase is the axis extent of the fixed base tetrahedron. The
// assembled fractal spans this times 2^iterations.
const sierpinskiBase = 1.0 / 64

// base tetrahedron: apex at the origin, three corners in the negative
// octants. The fold normals point from each corner back toward the apex.
var (
	sierpinskiCorners = [3]core.Vec3{
		core.NewVec3(-sierpinskiBase, -sierpinskiBase, 0),
		core.NewVec3(-sierpinskiBase, 0, -sierpinskiBase),
		core.NewVec3(0, -sierpinskiBase, -sierpinskiBase),
	}
	sierpinskiNormals = [3]core.Vec3{
		core.NewVec3(1, 1, 0).Normalize(),
		core.NewVec3(1, 0, 1).Normalize(),
		core.NewVec3(0, 1, 1).Normalize(),
	}
)

// Sierpinski is the Sierpinski tetrahedron: at each level the three corner
// copies of the previous level are folded onto the apex copy, so a single
// tetrahedron distance evaluated after all folds covers the whole shape.
type Sierpinski struct {
	Iterations int
	Albedo     core.Vec3
}

// Evaluate implements core.Field.
func (s Sierpinski) Evaluate(p core.Vec3) core.Object {
	// fold coarsest level first; anchors sit halfway between the apex and
	// the far corner of the current level, halving as the level descends
	for i := s.Iterations; i >= 1; i-- {
		offset := math.Exp2(float64(i - 1))
		for k := range sierpinskiNormals {
			p = sdf.Mirror(p, sierpinskiCorners[k].Multiply(offset), sierpinskiNormals[k])
		}
	}
	dist := sdf.Tetrahedron(p,
		core.Vec3{},
		sierpinskiCorners[0],
		sierpinskiCorners[1],
		sierpinskiCorners[2],
	)
	return core.Object{Distance: dist, Color: s.Albedo}
}
