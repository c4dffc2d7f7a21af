package terrain

import (
	"errors"

	"github.com/chewxy/math32"
)

// Common colors.
var (
	White = Color{1, 1, 1, 1}
	Green = Color{0, 1, 0, 1}
	Cyan  = Color{0, 1, 1, 1}
)

// ErrInvalidGradient is returned by Gradient.Validate.
var ErrInvalidGradient = errors.New("invalid gradient")

// Stop is one color stop of a gradient.
type Stop struct {
	Value float32 `yaml:"value" toml:"value" json:"value"`
	Color Color   `yaml:"color" toml:"color" json:"color"`
}

// Gradient is a piecewise linear color ramp. Stops must be sorted by Value.
type Gradient []Stop

// DefaultLandGradient maps normalized land height [0, 1] from beach to snow.
func DefaultLandGradient() Gradient {
	return Gradient{
		{Value: 0, Color: RGB(194, 178, 128)},
		{Value: 0.15, Color: RGB(90, 180, 30)},
		{Value: 0.6, Color: RGB(105, 110, 115)},
		{Value: 1, Color: RGB(220, 220, 220)},
	}
}

// DefaultWaterGradient maps normalized water height [-1, 0] from deep to shallow.
func DefaultWaterGradient() Gradient {
	return Gradient{
		{Value: -1, Color: RGB(0, 50, 115)},
		{Value: -0.25, Color: RGB(0, 75, 130)},
		{Value: 0, Color: RGB(0, 170, 200)},
	}
}

// TwoTone blends from water at 0 to land at 1.
func TwoTone(water, land Color) Gradient {
	return Gradient{{Value: 0, Color: water}, {Value: 1, Color: land}}
}

// RGB converts 8-bit components to an opaque Color.
func RGB(r, g, b uint8) Color {
	const factor = 1.0 / 255
	return Color{float32(r) * factor, float32(g) * factor, float32(b) * factor, 1}
}

// Validate reports whether the gradient is usable.
func (g Gradient) Validate() error {
	if len(g) == 0 {
		return errors.Join(ErrInvalidGradient, errors.New("no stops"))
	}
	for i := 1; i < len(g); i++ {
		if g[i].Value < g[i-1].Value {
			return errors.Join(ErrInvalidGradient, errors.New("stops out of order"))
		}
	}
	return nil
}

// At returns the color at v. Values outside the stops clamp to the nearest end.
func (g Gradient) At(v float32) Color {
	if len(g) == 0 {
		return White
	}
	if v <= g[0].Value || math32.IsNaN(v) {
		return g[0].Color
	}
	last := len(g) - 1
	if v >= g[last].Value {
		return g[last].Color
	}
	for i := 1; i <= last; i++ {
		hi := g[i]
		if v > hi.Value {
			continue
		}
		lo := g[i-1]
		span := hi.Value - lo.Value
		if span <= 0 {
			return hi.Color
		}
		return lo.Color.Lerp(hi.Color, (v-lo.Value)/span)
	}
	return g[last].Color
}

// Lerp blends c toward other by t in [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	t = math32.Max(0, math32.Min(1, t))
	for i := range c {
		c[i] += (other[i] - c[i]) * t
	}
	return c
}

// RGBA8 returns c as 8-bit components.
func (c Color) RGBA8() [4]uint8 {
	var out [4]uint8
	for i, v := range c {
		out[i] = uint8(math32.Floor(math32.Max(0, math32.Min(1, v))*255 + 0.5))
	}
	return out
}

// Colorize maps each vertex's height/depth through the gradient.
// A zero depth maps every vertex to the gradient color at 0.
func Colorize(vertices []Vertex, depth float32, gradient Gradient) []Color {
	colors := make([]Color, len(vertices))
	for i := range vertices {
		var v float32
		if depth != 0 {
			v = vertices[i].Position[1] / depth
		}
		colors[i] = gradient.At(v)
	}
	return colors
}
