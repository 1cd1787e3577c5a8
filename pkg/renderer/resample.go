package renderer

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// BlitToDisplay resamples a rendered frame onto a display surface of the
// given size. The source is read at UV = flip-vertical((coord+1)*0.5), so
// the output is vertically flipped relative to the render target, matching
// the presentation pass of the interactive host.
func BlitToDisplay(src *image.RGBA, width, height int) *image.RGBA {
	flipped := flipVertical(src)
	if b := flipped.Bounds(); b.Dx() == width && b.Dy() == height {
		return flipped
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), flipped, flipped.Bounds(), draw.Src, nil)
	return dst
}

// Downsample shrinks a supersampled render to the target size with Lanczos
// filtering.
func Downsample(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

func flipVertical(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		srcRow := src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)]
		dstY := b.Max.Y - 1 - (y - b.Min.Y)
		copy(dst.Pix[dst.PixOffset(b.Min.X, dstY):], srcRow)
	}
	return dst
}
