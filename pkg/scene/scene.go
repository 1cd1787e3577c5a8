package scene

import (
	"math"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
)

// oscillationRate is the fixed angular rate used by animated presets.
const oscillationRate = 0.5

// AnimateBetween oscillates between a and b as time advances, following
// a + (b-a) * (0.5 + 0.5*sin(time*rate)).
func AnimateBetween(a, b, time float64) float64 {
	return a + (b-a)*(0.5+0.5*math.Sin(time*oscillationRate))
}

// Preset pairs a fractal field constructor with its display environment.
// Build resolves any animated shape parameters from the frame's time, so
// the returned field is a pure function of position for that frame.
type Preset struct {
	Name          string
	Background    core.Vec3 // color for rays that miss everything
	Glow          core.Vec3 // near-miss glow color
	GlowSharpness float64   // falloff exponent of the glow term
	CameraOrbit   float64   // suggested eye distance from the origin
	Build         func(params core.Parameters) core.Field
}

var presets = []Preset{
	{
		Name:          "sierpinski",
		Background:    core.NewVec3(0.02, 0.02, 0.05),
		Glow:          core.NewVec3(0.3, 0.5, 0.9),
		GlowSharpness: 3,
		CameraOrbit:   8,
		Build: func(p core.Parameters) core.Field {
			return Sierpinski{Iterations: p.Iterations(), Albedo: core.NewVec3(0.9, 0.85, 0.8)}
		},
	},
	{
		Name:          "menger",
		Background:    core.NewVec3(0.05, 0.06, 0.08),
		Glow:          core.NewVec3(0.8, 0.5, 0.2),
		GlowSharpness: 4,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{Iterations: p.Iterations(), CrossWidth: 1.0 / 6, ScaleFactor: 3, Albedo: core.NewVec3(0.85, 0.6, 0.3)}
		},
	},
	{
		Name:          "menger-dense",
		Background:    core.NewVec3(0.04, 0.04, 0.04),
		Glow:          core.NewVec3(0.6, 0.6, 0.7),
		GlowSharpness: 4,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{Iterations: p.Iterations(), CrossWidth: 1.0 / 6, ScaleFactor: 2, Albedo: core.NewVec3(0.7, 0.7, 0.75)}
		},
	},
	{
		Name:          "menger-airy",
		Background:    core.NewVec3(0.07, 0.08, 0.1),
		Glow:          core.NewVec3(0.4, 0.7, 0.9),
		GlowSharpness: 3,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{Iterations: p.Iterations(), CrossWidth: 1.0 / 6, ScaleFactor: 4, Albedo: core.NewVec3(0.55, 0.75, 0.9)}
		},
	},
	{
		Name:          "menger-breathing",
		Background:    core.NewVec3(0.05, 0.05, 0.07),
		Glow:          core.NewVec3(0.9, 0.4, 0.3),
		GlowSharpness: 4,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{
				Iterations:  p.Iterations(),
				CrossWidth:  AnimateBetween(0.08, 0.24, p.Time),
				ScaleFactor: 3,
				Albedo:      core.NewVec3(0.9, 0.55, 0.4),
			}
		},
	},
	{
		Name:          "menger-pulse",
		Background:    core.NewVec3(0.03, 0.04, 0.06),
		Glow:          core.NewVec3(0.3, 0.8, 0.6),
		GlowSharpness: 4,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{
				Iterations:  p.Iterations(),
				CrossWidth:  1.0 / 6,
				ScaleFactor: AnimateBetween(2.4, 3.6, p.Time),
				Albedo:      core.NewVec3(0.5, 0.85, 0.65),
			}
		},
	},
	{
		Name:          "menger-thin",
		Background:    core.NewVec3(0.06, 0.05, 0.05),
		Glow:          core.NewVec3(0.7, 0.7, 0.3),
		GlowSharpness: 5,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{Iterations: p.Iterations(), CrossWidth: 0.1, ScaleFactor: 3, Albedo: core.NewVec3(0.8, 0.75, 0.5)}
		},
	},
	{
		Name:          "menger-thick",
		Background:    core.NewVec3(0.02, 0.03, 0.04),
		Glow:          core.NewVec3(0.4, 0.5, 0.9),
		GlowSharpness: 3,
		CameraOrbit:   3.5,
		Build: func(p core.Parameters) core.Field {
			return Menger{Iterations: p.Iterations(), CrossWidth: 0.22, ScaleFactor: 3, Albedo: core.NewVec3(0.6, 0.65, 0.85)}
		},
	},
	{
		Name:          "menger-inferno",
		Background:    core.NewVec3(0.08, 0.02, 0.01),
		Glow:          core.NewVec3(1.0, 0.45, 0.1),
		GlowSharpness: 2,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{
				Iterations:  p.Iterations(),
				CrossWidth:  AnimateBetween(0.12, 0.2, p.Time),
				ScaleFactor: AnimateBetween(2.6, 3.4, p.Time),
				Albedo:      core.NewVec3(0.95, 0.5, 0.2),
			}
		},
	},
	{
		Name:          "koch",
		Background:    core.NewVec3(0.04, 0.05, 0.07),
		Glow:          core.NewVec3(0.5, 0.7, 1.0),
		GlowSharpness: 3,
		CameraOrbit:   4,
		Build: func(p core.Parameters) core.Field {
			return Koch{Iterations: p.Iterations(), Albedo: core.NewVec3(0.75, 0.85, 0.95)}
		},
	},
	{
		Name:          "koch-ember",
		Background:    core.NewVec3(0.06, 0.03, 0.02),
		Glow:          core.NewVec3(1.0, 0.5, 0.2),
		GlowSharpness: 2,
		CameraOrbit:   4,
		Build: func(p core.Parameters) core.Field {
			return Koch{Iterations: p.Iterations(), Albedo: core.NewVec3(0.9, 0.6, 0.35)}
		},
	},
	{
		Name:          "mandelbulb",
		Background:    core.NewVec3(0.02, 0.02, 0.03),
		Glow:          core.NewVec3(0.6, 0.4, 0.8),
		GlowSharpness: 3,
		CameraOrbit:   2.8,
		Build: func(p core.Parameters) core.Field {
			return Mandelbulb{Iterations: p.Iterations(), Power: 8, Albedo: core.NewVec3(0.8, 0.7, 0.85)}
		},
	},
	{
		Name:          "mandelbulb-low",
		Background:    core.NewVec3(0.03, 0.03, 0.02),
		Glow:          core.NewVec3(0.8, 0.7, 0.3),
		GlowSharpness: 3,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Mandelbulb{Iterations: p.Iterations(), Power: 3, Albedo: core.NewVec3(0.85, 0.8, 0.55)}
		},
	},
	{
		Name:          "mandelbulb-high",
		Background:    core.NewVec3(0.01, 0.02, 0.03),
		Glow:          core.NewVec3(0.3, 0.6, 0.9),
		GlowSharpness: 4,
		CameraOrbit:   2.8,
		Build: func(p core.Parameters) core.Field {
			return Mandelbulb{Iterations: p.Iterations(), Power: 12, Albedo: core.NewVec3(0.6, 0.75, 0.9)}
		},
	},
	{
		Name:          "mandelbulb-morph",
		Background:    core.NewVec3(0.02, 0.01, 0.03),
		Glow:          core.NewVec3(0.8, 0.3, 0.7),
		GlowSharpness: 3,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Mandelbulb{
				Iterations: p.Iterations(),
				Power:      AnimateBetween(2, 9, p.Time),
				Albedo:     core.NewVec3(0.85, 0.55, 0.8),
			}
		},
	},
	{
		Name:          "mandelbulb-void",
		Background:    core.NewVec3(0, 0, 0),
		Glow:          core.NewVec3(0.9, 0.9, 1.0),
		GlowSharpness: 1.5,
		CameraOrbit:   2.8,
		Build: func(p core.Parameters) core.Field {
			return Mandelbulb{Iterations: p.Iterations(), Power: 8, Albedo: core.NewVec3(0.4, 0.45, 0.55)}
		},
	},
	{
		Name:          "sierpinski-ember",
		Background:    core.NewVec3(0.05, 0.02, 0.01),
		Glow:          core.NewVec3(1.0, 0.4, 0.15),
		GlowSharpness: 2,
		CameraOrbit:   8,
		Build: func(p core.Parameters) core.Field {
			return Sierpinski{Iterations: p.Iterations(), Albedo: core.NewVec3(0.9, 0.5, 0.3)}
		},
	},
	{
		Name:          "sierpinski-night",
		Background:    core.NewVec3(0, 0, 0.01),
		Glow:          core.NewVec3(0.2, 0.4, 1.0),
		GlowSharpness: 2,
		CameraOrbit:   8,
		Build: func(p core.Parameters) core.Field {
			return Sierpinski{Iterations: p.Iterations(), Albedo: core.NewVec3(0.5, 0.6, 0.9)}
		},
	},
	{
		Name:          "menger-night",
		Background:    core.NewVec3(0.01, 0.01, 0.02),
		Glow:          core.NewVec3(0.5, 0.6, 1.0),
		GlowSharpness: 2,
		CameraOrbit:   3,
		Build: func(p core.Parameters) core.Field {
			return Menger{Iterations: p.Iterations(), CrossWidth: 1.0 / 6, ScaleFactor: 3, Albedo: core.NewVec3(0.45, 0.5, 0.7)}
		},
	},
}

// Count returns the number of scene presets.
func Count() int {
	return len(presets)
}

// Lookup returns the preset for a scene index. Unknown indices fall back to
// the first preset instead of failing.
func Lookup(index uint32) Preset {
	if int(index) >= len(presets) {
		return presets[0]
	}
	return presets[index]
}

// FromParameters resolves the frame's preset and builds its field.
func FromParameters(params core.Parameters) (core.Field, Preset) {
	preset := Lookup(params.SceneIndex)
	return preset.Build(params), preset
}

// Names lists all preset names in index order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
