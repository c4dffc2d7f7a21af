package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/isoterrain/internal/terrain"
	"github.com/Faultbox/isoterrain/pkg/heightfield"
)

// Preview renders a height grid as a grayscale image, one pixel per lattice point.
// Heights are stretched so the lowest is black and the highest white.
// A grid shorter than the lattice yields a blank image.
func Preview(heights []float64, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width+1, height+1))
	if n := heightfield.LatticeSize(width, height); n == 0 || len(heights) < n {
		return img
	}

	lo, hi := heightfield.Range(heights)
	span := hi - lo
	for x := 0; x <= width; x++ {
		for y := 0; y <= height; y++ {
			var v float64
			if span > 0 {
				v = (heights[heightfield.Index(x, y, height)] - lo) / span
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}

// ColorPreview renders a height grid through a gradient. Heights are divided by scale first.
func ColorPreview(heights []float64, width, height int, scale float64, gradient terrain.Gradient) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width+1, height+1))
	if n := heightfield.LatticeSize(width, height); n == 0 || len(heights) < n {
		return img
	}
	if scale == 0 {
		scale = 1
	}

	for x := 0; x <= width; x++ {
		for y := 0; y <= height; y++ {
			c := gradient.At(float32(heights[heightfield.Index(x, y, height)] / scale)).RGBA8()
			img.SetRGBA(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]})
		}
	}
	return img
}

// WriteImage encodes img as "png" or "bmp".
func WriteImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png", "":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
