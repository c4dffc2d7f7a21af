package terrain

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func approxColor(a, b Color) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > 1e-5 {
			return false
		}
	}
	return true
}

func TestGradientEndpoints(t *testing.T) {
	g := DefaultLandGradient()
	if got := g.At(g[0].Value); got != g[0].Color {
		t.Errorf("At(first) = %v, want %v", got, g[0].Color)
	}
	last := g[len(g)-1]
	if got := g.At(last.Value); got != last.Color {
		t.Errorf("At(last) = %v, want %v", got, last.Color)
	}
}

func TestGradientClamps(t *testing.T) {
	g := DefaultWaterGradient()
	if got := g.At(-5); got != g[0].Color {
		t.Errorf("At(below) = %v, want %v", got, g[0].Color)
	}
	if got := g.At(5); got != g[len(g)-1].Color {
		t.Errorf("At(above) = %v, want %v", got, g[len(g)-1].Color)
	}
}

func TestGradientMidpoint(t *testing.T) {
	g := Gradient{
		{Value: 0, Color: Color{0, 0.2, 1, 1}},
		{Value: 0.5, Color: Color{1, 0.6, 0, 1}},
		{Value: 1, Color: Color{0, 0, 0, 0}},
	}

	tests := []struct {
		v    float32
		want Color
	}{
		{0.25, Color{0.5, 0.4, 0.5, 1}},
		{0.75, Color{0.5, 0.3, 0, 0.5}},
	}

	for _, tt := range tests {
		if got := g.At(tt.v); !approxColor(got, tt.want) {
			t.Errorf("At(%f) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestGradientValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Gradient
		wantErr bool
	}{
		{"default land", DefaultLandGradient(), false},
		{"default water", DefaultWaterGradient(), false},
		{"empty", Gradient{}, true},
		{"unsorted", Gradient{{Value: 1}, {Value: 0}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidGradient) {
				t.Errorf("expected ErrInvalidGradient, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestColorize(t *testing.T) {
	g := TwoTone(Cyan, Green)
	vertices := []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{0, 12, 0}},
		{Position: mgl32.Vec3{0, 24, 0}},
	}

	colors := Colorize(vertices, 24, g)
	if colors[0] != Cyan {
		t.Errorf("sea level color = %v, want cyan", colors[0])
	}
	if colors[2] != Green {
		t.Errorf("peak color = %v, want green", colors[2])
	}
	if !approxColor(colors[1], Color{0, 1, 0.5, 1}) {
		t.Errorf("mid color = %v, want {0 1 0.5 1}", colors[1])
	}

	flat := Colorize(vertices, 0, g)
	for i, c := range flat {
		if c != Cyan {
			t.Errorf("zero depth vertex %d color = %v, want cyan", i, c)
		}
	}
}

func TestRGBA8(t *testing.T) {
	got := RGB(194, 178, 128).RGBA8()
	want := [4]uint8{194, 178, 128, 255}
	if got != want {
		t.Errorf("RGBA8() = %v, want %v", got, want)
	}
}
