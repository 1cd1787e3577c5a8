package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/integrator"
	"github.com/MariusDoe/fractal-ray-marching/pkg/scene"
	"github.com/MariusDoe/fractal-ray-marching/pkg/shading"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	TileSize   int         // size of the square tiles handed to workers
	NumWorkers int         // number of parallel workers (0 = use CPU count)
	Logger     core.Logger // progress logging (nil = stdout)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// Renderer evaluates one frame: for each pixel it builds a camera ray,
// sphere-traces it through the frame's fractal field and shades the result.
// All per-frame state is immutable, so pixels render concurrently without
// synchronization.
type Renderer struct {
	params core.Parameters
	field  core.Field
	env    shading.Environment
	camera *Camera
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for a single frame described by params.
func NewRenderer(params core.Parameters, width, height int, config Config) *Renderer {
	if config.Logger == nil {
		config.Logger = NewDefaultLogger()
	}
	field, preset := scene.FromParameters(params)
	return &Renderer{
		params: params,
		field:  field,
		env: shading.Environment{
			Background:    preset.Background,
			Glow:          preset.Glow,
			GlowSharpness: preset.GlowSharpness,
		},
		camera: NewCamera(params),
		width:  width,
		height: height,
		config: config,
		logger: config.Logger,
	}
}

// MarchPixel traces the primary ray for a normalized screen coordinate in
// [-1,1]^2 and returns the raw march result, exposed for inspection tools.
func (r *Renderer) MarchPixel(u, v float64) (core.Ray, core.MarchResult) {
	ray := r.camera.GetRay(u, v)
	return ray, integrator.March(r.field, ray.Origin, ray.Direction)
}

// PixelColor computes the final color for a normalized screen coordinate.
func (r *Renderer) PixelColor(u, v float64) core.Vec3 {
	ray, result := r.MarchPixel(u, v)
	return shading.Shade(r.field, r.env, ray.Direction, result)
}

// Normal estimates the field's surface normal at p.
func (r *Renderer) Normal(p core.Vec3) core.Vec3 {
	return integrator.Normal(r.field, p)
}

// screenCoord maps a pixel center to the normalized [-1,1] range.
func (r *Renderer) screenCoord(x, y int) (float64, float64) {
	u := 2*(float64(x)+0.5)/float64(r.width) - 1
	v := 2*(float64(y)+0.5)/float64(r.height) - 1
	return u, v
}

// renderBounds renders the pixels within bounds into img. Tiles have
// non-overlapping bounds, so concurrent calls are safe without locks.
func (r *Renderer) renderBounds(img *image.RGBA, bounds image.Rectangle) RenderStats {
	var stats RenderStats
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			u, v := r.screenCoord(x, y)
			ray, result := r.MarchPixel(u, v)
			colorVec := shading.Shade(r.field, r.env, ray.Direction, result)
			img.SetRGBA(x, y, vec3ToColor(colorVec))
			stats.addPixel(result.Steps, result.Hit)
		}
	}
	return stats
}

// RenderFrame renders the full frame in parallel across tiles.
func (r *Renderer) RenderFrame() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	tiles := tileBounds(r.width, r.height, r.config.TileSize)

	pool := newWorkerPool(r, img, len(tiles), r.config.NumWorkers)
	pool.start()
	for _, bounds := range tiles {
		pool.submit(TileTask{Bounds: bounds})
	}
	stats := pool.wait(len(tiles))
	stats.finalize()
	r.logger.Printf("Rendered %dx%d: %d/%d hit pixels, %.1f avg steps (max %d)\n",
		r.width, r.height, stats.HitPixels, stats.TotalPixels, stats.AverageSteps, stats.MaxStepsUsed)
	return img, stats
}

// tileBounds splits the image into tiles of at most tileSize on each side.
func tileBounds(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return tiles
}

// vec3ToColor converts a linear color to RGBA with gamma correction and
// clamping; the alpha channel is always fully opaque
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
