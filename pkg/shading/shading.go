package shading

import (
	"math"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/integrator"
)

// Fixed directional light. lightDirection is the direction the light
// travels, so shadow rays march toward its negation.
var (
	lightDirection = core.NewVec3(-0.5, -0.8, 0.3).Normalize()
	lightColor     = core.NewVec3(1, 1, 0.9)
)

const (
	// ambientFloor is the brightness of fully shadowed surfaces
	ambientFloor = 0.15

	// penumbraSharpness maps shadow-ray closeness to shadow strength
	penumbraSharpness = 16.0

	// specularSharpness is the Blinn exponent of the highlight
	specularSharpness = 32.0

	// occlusionSharpness shapes the step-count ambient-occlusion proxy
	occlusionSharpness = 2.0
)

// Environment is the per-preset miss appearance: a flat background color
// plus a glow that strengthens the closer the ray came to a surface.
type Environment struct {
	Background    core.Vec3
	Glow          core.Vec3
	GlowSharpness float64
}

// Shade turns a march result into a final color. Hits get a shadow trace
// toward the light, a Blinn specular term and a step-count ambient-occlusion
// proxy; misses get the environment's background and glow. The shading is a
// deliberately cheap heuristic, not an illumination solution.
func Shade(field core.Field, env Environment, viewDirection core.Vec3, result core.MarchResult) core.Vec3 {
	if !result.Hit {
		return Miss(env, result.Closeness)
	}

	normal := integrator.Normal(field, result.Position)

	// restart just off the surface so the shadow ray does not
	// immediately re-intersect it
	shadowOrigin := result.Position.Add(normal.Multiply(2 * integrator.MinHitDistance))
	toLight := lightDirection.Negate()
	shadow := integrator.March(field, shadowOrigin, toLight)

	shadowStrength := 0.0
	if !shadow.Hit {
		shadowStrength = min(1, shadow.Closeness*penumbraSharpness)
	}
	shadowBlend := ambientFloor + (1-ambientFloor)*shadowStrength

	halfway := viewDirection.Negate().Add(toLight).Normalize()
	specular := math.Pow(max(halfway.Dot(normal), 0), specularSharpness)

	occlusion := math.Pow(1-float64(result.Steps)/float64(integrator.MaxSteps), occlusionSharpness)

	return result.Color.
		Multiply(occlusion * shadowBlend).
		Add(lightColor.Multiply(shadowStrength * specular))
}

// Miss returns the environment color for a ray that found no surface. The
// glow term grows monotonically as closeness shrinks, a fog-like hint of
// nearby geometry.
func Miss(env Environment, closeness float64) core.Vec3 {
	nearness := 1 - min(1, max(0, closeness))
	glow := math.Pow(nearness, env.GlowSharpness)
	return env.Background.Add(env.Glow.Multiply(glow))
}
