package integrator

import (
	"math"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

// March budget. The trip count of every ray is bounded by MaxSteps and the
// travelled distance by MaxTotalDistance, so a miss terminates deterministically.
const (
	MaxTotalDistance = 100.0 // rays travelling further count as escaped
	MinHitDistance   = 0.001 // sample distances at or below this register a hit
	MaxSteps         = 128   // iteration budget per ray
)

// March sphere-traces the field from origin along the unit direction. Each
// step advances by the sampled distance; because field samples are
// conservative lower bounds this can never step through a surface, only
// take extra small steps near non-exact primitives.
//
// The result's Color tracks the sample holding the minimum distance seen so
// far, so a miss still carries the closest surface's albedo for glow
// effects. Closeness is the smallest ratio of sampled distance to distance
// travelled, a cheap penumbra/occlusion proxy.
func March(field core.Field, origin, direction core.Vec3) core.MarchResult {
	result := core.MarchResult{
		Position:  origin,
		Closeness: 1,
	}

	minDistance := math.Inf(1)
	total := 0.0
	for step := 0; step < MaxSteps; step++ {
		result.Steps = step + 1
		sample := field.Evaluate(result.Position)

		if sample.Distance < minDistance {
			minDistance = sample.Distance
			result.Color = sample.Color
		}
		if total > 0 {
			result.Closeness = min(result.Closeness, sample.Distance/total)
		}

		if sample.Distance <= MinHitDistance {
			result.Hit = true
			break
		}

		total += sample.Distance
		if total >= MaxTotalDistance {
			break
		}
		result.Position = origin.Add(direction.Multiply(total))
	}

	result.Distance = total
	return result
}
