package scene

import (
	"math"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

const (
	// mandelbulbBailout is the escape radius; once the iterated magnitude
	// exceeds it the orbit is treated as diverged.
	mandelbulbBailout = 2.0

	// minMagnitude guards the logarithm and the spherical conversion
	// against orbits collapsing onto the origin
	minMagnitude = 1e-9
)

// Mandelbulb is the escape-time fractal z -> z^power + c in spherical
// coordinates, with a running derivative giving the distance estimate
// 0.5 * log(|z|) * |z| / dr.
type Mandelbulb struct {
	Iterations int
	Power      float64
	Albedo     core.Vec3
}

// boundRadius is the containment radius of the bulb: any seed with
// |c| > 2^(1/(power-1)) escapes, and no seed beyond the bailout radius
// stays bounded for any power. The power-2 bulb reaches out to radius 2
// (the real segment down to c = -2 is in the set), so the bound must grow
// as the power shrinks.
func (m Mandelbulb) boundRadius() float64 {
	if m.Power <= 1 {
		return mandelbulbBailout
	}
	return min(mandelbulbBailout, math.Pow(2, 1/(m.Power-1)))
}

// Evaluate implements core.Field.
func (m Mandelbulb) Evaluate(p core.Vec3) core.Object {
	// the escape-time estimate overshoots for queries outside the
	// containment radius, so fall back to the bounding sphere there
	bound := m.boundRadius()
	if far := p.Length(); far > bound {
		return core.Object{Distance: far - bound, Color: m.Albedo}
	}

	z := p
	dr := 1.0
	magnitude := z.Length()
	for i := 0; i < m.Iterations; i++ {
		magnitude = z.Length()
		if magnitude > mandelbulbBailout {
			break
		}
		if magnitude < minMagnitude {
			// orbit stuck at the origin; the derivative stays finite
			break
		}

		theta := math.Acos(clampUnit(z.Z / magnitude))
		phi := math.Atan2(z.Y, z.X)
		dr = math.Pow(magnitude, m.Power-1)*m.Power*dr + 1

		zr := math.Pow(magnitude, m.Power)
		theta *= m.Power
		phi *= m.Power
		z = core.NewVec3(
			math.Sin(theta)*math.Cos(phi),
			math.Sin(theta)*math.Sin(phi),
			math.Cos(theta),
		).Multiply(zr).Add(p)
	}

	magnitude = max(magnitude, minMagnitude)
	dist := 0.5 * math.Log(magnitude) * magnitude / dr
	return core.Object{Distance: dist, Color: m.Albedo}
}

func clampUnit(v float64) float64 {
	return max(-1, min(1, v))
}
