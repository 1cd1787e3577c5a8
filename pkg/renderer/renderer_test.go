package renderer

import (
	"bytes"
	"image"
	"testing"

	"github.com/MariusDoe/fractal-ray-marching/pkg/core"
	"github.com/MariusDoe/fractal-ray-marching/pkg/scene"
)

type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

func testParameters(sceneIndex uint32) core.Parameters {
	params := core.NewParameters()
	params.SceneIndex = sceneIndex
	params.NumIterations = 6
	params.AspectScale = core.AspectScaleFor(64, 48)
	params.CameraToWorld = LookAtOrigin(core.NewVec3(0, 1.5, -scene.Lookup(sceneIndex).CameraOrbit))
	return params
}

func TestRenderFrameIsDeterministic(t *testing.T) {
	params := testParameters(1)
	config := Config{TileSize: 16, NumWorkers: 4, Logger: silentLogger{}}

	first, _ := NewRenderer(params, 64, 48, config).RenderFrame()
	second, _ := NewRenderer(params, 64, 48, config).RenderFrame()

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Errorf("Two renders of the same parameters differ")
	}
}

func TestRenderFrameStats(t *testing.T) {
	params := testParameters(1)
	img, stats := NewRenderer(params, 64, 48, DefaultConfig()).RenderFrame()

	if got := img.Bounds(); got.Dx() != 64 || got.Dy() != 48 {
		t.Fatalf("Expected 64x48 image, got %v", got)
	}
	if stats.TotalPixels != 64*48 {
		t.Errorf("Expected %d pixels, got %d", 64*48, stats.TotalPixels)
	}
	if stats.HitPixels == 0 {
		t.Errorf("Expected the centered sponge to cover some pixels")
	}
	if stats.HitPixels >= stats.TotalPixels {
		t.Errorf("Expected some background pixels around the sponge")
	}
	if stats.AverageSteps <= 0 {
		t.Errorf("Expected positive average step count, got %v", stats.AverageSteps)
	}
	if stats.MaxStepsUsed < 1 {
		t.Errorf("Expected at least one march step, got %d", stats.MaxStepsUsed)
	}
}

func TestRenderFrameAlphaIsOpaque(t *testing.T) {
	params := testParameters(0)
	img, _ := NewRenderer(params, 16, 16, Config{TileSize: 8, Logger: silentLogger{}}).RenderFrame()

	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("Expected opaque alpha everywhere, found %d at offset %d", img.Pix[i], i)
		}
	}
}

func TestPixelColorMatchesRenderedPixel(t *testing.T) {
	params := testParameters(1)
	r := NewRenderer(params, 1, 1, Config{TileSize: 8, Logger: silentLogger{}})

	img, _ := r.RenderFrame()
	expected := vec3ToColor(r.PixelColor(0, 0))

	if got := img.RGBAAt(0, 0); got != expected {
		t.Errorf("Expected pixel %v, got %v", expected, got)
	}
}

func TestUnknownSceneIndexStillRenders(t *testing.T) {
	params := testParameters(0)
	params.SceneIndex = 9999

	img, stats := NewRenderer(params, 16, 16, Config{TileSize: 8, Logger: silentLogger{}}).RenderFrame()
	if img == nil || stats.TotalPixels != 256 {
		t.Errorf("Expected fallback preset to render, got stats %+v", stats)
	}
}

func TestTileBounds(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, tileSize int
		expectedTiles           int
	}{
		{"exact fit", 128, 64, 64, 2},
		{"ragged edges", 100, 70, 64, 4},
		{"single tile", 32, 32, 64, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := tileBounds(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := 0
			for _, tile := range tiles {
				covered += tile.Dx() * tile.Dy()
				if tile.Max.X > tt.width || tile.Max.Y > tt.height {
					t.Errorf("Tile %v exceeds image bounds", tile)
				}
			}
			if covered != tt.width*tt.height {
				t.Errorf("Tiles cover %d pixels, expected %d", covered, tt.width*tt.height)
			}
		})
	}
}

func TestBlitToDisplayFlipsVertically(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{
		255, 0, 0, 255 /**/, 255, 0, 0, 255, // top row red
		0, 0, 255, 255 /**/, 0, 0, 255, 255, // bottom row blue
	}

	dst := BlitToDisplay(src, 2, 2)

	if r := dst.Pix[0]; r != 0 {
		t.Errorf("Expected blue in the top row after the flip, got red=%d", r)
	}
	if dst.Pix[dst.PixOffset(0, 1)] != 255 {
		t.Errorf("Expected red in the bottom row after the flip")
	}
}

func TestBlitToDisplayResizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	dst := BlitToDisplay(src, 16, 12)
	if b := dst.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("Expected 16x12 output, got %v", b)
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	dst := Downsample(src, 16, 16)
	if b := dst.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("Expected 16x16 output, got %v", b)
	}

	same := Downsample(src, 64, 64)
	if same != image.Image(src) {
		t.Errorf("Expected same-size downsample to return the source")
	}
}
