package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/renderer"
	"github.com/MariusDoe/fractal-ray-marching/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneFlag := flag.String("scene", "menger", "Scene preset name or index")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	iterations := flag.Int("iterations", 12, "Fractal iteration count (1-32)")
	timeFlag := flag.Float64("time", 0, "Scene time in seconds, drives animated presets")
	frames := flag.Int("frames", 1, "Number of frames; more than one produces an animated WebP")
	fps := flag.Int("fps", 30, "Frames per second for animated output")
	format := flag.String("format", "png", "Output format: 'png', 'webp' or 'tga'")
	supersample := flag.Int("supersample", 1, "Render at N times the output size and downsample")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	orbit := flag.Float64("orbit", 0, "Camera distance from the origin (0 = preset default)")
	yaw := flag.Float64("yaw", 0.6, "Camera orbit yaw in radians")
	pitch := flag.Float64("pitch", 0.4, "Camera orbit pitch in radians")
	list := flag.Bool("list", false, "List available scene presets")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Fractal Ray Marcher")
		fmt.Println("Usage: fractal-ray-marching [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	if *list {
		fmt.Println("Available scenes:")
		for i, name := range scene.Names() {
			fmt.Printf("  %2d  %s\n", i, name)
		}
		return
	}

	sceneIndex, err := resolveScene(*sceneFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	preset := scene.Lookup(sceneIndex)

	if *frames > 1 && *format != "webp" {
		fmt.Println("Animated output requires WebP, switching format to 'webp'")
		*format = "webp"
	}
	if *supersample < 1 {
		*supersample = 1
	}
	if *frames < 1 {
		*frames = 1
	}
	if *fps < 1 {
		*fps = 1
	}

	orbitDistance := *orbit
	if orbitDistance == 0 {
		orbitDistance = preset.CameraOrbit
	}

	fmt.Printf("Rendering scene '%s' at %dx%d (%d iterations)...\n",
		preset.Name, *width, *height, *iterations)

	renderWidth := *width * *supersample
	renderHeight := *height * *supersample

	params := core.NewParameters()
	params.SceneIndex = sceneIndex
	params.NumIterations = uint32(*iterations)
	params.AspectScale = core.AspectScaleFor(renderWidth, renderHeight)
	params.CameraToWorld = renderer.LookAtOrigin(orbitPosition(orbitDistance, *yaw, *pitch))

	config := renderer.Config{TileSize: 64, NumWorkers: *workers}

	// Render each frame, advancing scene time between them
	startTime := time.Now()
	images := make([]image.Image, 0, *frames)
	var lastStats renderer.RenderStats
	for frame := 0; frame < *frames; frame++ {
		params.Time = *timeFlag + float64(frame)/float64(*fps)
		r := renderer.NewRenderer(params, renderWidth, renderHeight, config)
		img, stats := r.RenderFrame()
		images = append(images, renderer.Downsample(img, *width, *height))
		lastStats = stats
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Hit pixels: %d/%d, average steps: %.1f (max %d)\n",
		lastStats.HitPixels, lastStats.TotalPixels, lastStats.AverageSteps, lastStats.MaxStepsUsed)

	// Create output directory for this scene
	outputDir := filepath.Join("output", preset.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := encodeOutput(file, images, *format, *fps); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// resolveScene accepts a preset name or a numeric index.
func resolveScene(s string) (uint32, error) {
	for i, name := range scene.Names() {
		if name == s {
			return uint32(i), nil
		}
	}
	index, err := strconv.Atoi(s)
	if err != nil || index < 0 || index >= scene.Count() {
		return 0, fmt.Errorf("unknown scene %q, use -list to see available presets", s)
	}
	return uint32(index), nil
}

// orbitPosition places the camera on a sphere around the origin.
func orbitPosition(distance, yaw, pitch float64) core.Vec3 {
	return core.NewVec3(
		distance*math.Cos(pitch)*math.Sin(yaw),
		distance*math.Sin(pitch),
		-distance*math.Cos(pitch)*math.Cos(yaw),
	)
}

// encodeOutput writes the rendered frames in the requested format. Multiple
// frames become an animated WebP with a uniform frame duration.
func encodeOutput(w io.Writer, images []image.Image, format string, fps int) error {
	if len(images) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if fps < 1 {
		fps = 1
	}
	if len(images) > 1 {
		durations := make([]uint, len(images))
		disposals := make([]uint, len(images))
		for i := range durations {
			durations[i] = uint(1000 / fps)
			disposals[i] = 1
		}
		return nativewebp.EncodeAll(w, &nativewebp.Animation{
			Images:    images,
			Durations: durations,
			Disposals: disposals,
			LoopCount: 0,
		}, nil)
	}

	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, images[0])
	case "webp":
		return nativewebp.Encode(w, images[0], nil)
	case "tga":
		return tga.Encode(w, images[0])
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
