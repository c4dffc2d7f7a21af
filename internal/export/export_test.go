package export

import (
	"bufio"
	"bytes"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/generator"
	"github.com/Faultbox/isoterrain/internal/terrain"
)

func testWorld(t *testing.T) *generator.World {
	t.Helper()
	cfg := config.Default()
	cfg.Terrain.Width = 6
	cfg.Terrain.Height = 4
	cfg.Noise.Seed = 42

	w, err := generator.New().Regenerate(cfg)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	return w
}

func TestWriteOBJ(t *testing.T) {
	w := testWorld(t)

	var buf bytes.Buffer
	if err := WriteOBJ(&buf, "land", w.Land); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}

	counts := make(map[string]int)
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		counts[fields[0]]++
		if fields[0] == "f" && len(fields) != 4 {
			t.Errorf("face line has %d fields: %s", len(fields), scanner.Text())
		}
	}

	if counts["o"] != 1 {
		t.Errorf("expected 1 object, got %d", counts["o"])
	}
	if counts["v"] != 7*5 {
		t.Errorf("expected %d vertices, got %d", 7*5, counts["v"])
	}
	if counts["vn"] != 7*5 {
		t.Errorf("expected %d normals, got %d", 7*5, counts["vn"])
	}
	if counts["f"] != 6*4*2 {
		t.Errorf("expected %d faces, got %d", 6*4*2, counts["f"])
	}
}

func TestWriteJSON(t *testing.T) {
	w := testWorld(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, w); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var doc WorldDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.RunID != w.RunID {
		t.Errorf("expected run id %s, got %s", w.RunID, doc.RunID)
	}
	if doc.Seed != 42 {
		t.Errorf("expected seed 42, got %d", doc.Seed)
	}
	if len(doc.Land.Positions) != 7*5*3 {
		t.Errorf("expected %d position floats, got %d", 7*5*3, len(doc.Land.Positions))
	}
	if len(doc.Land.Indices) != 6*4*6 {
		t.Errorf("expected %d indices, got %d", 6*4*6, len(doc.Land.Indices))
	}
	if doc.Water == nil {
		t.Fatal("expected water in document")
	}
	if len(doc.Water.Colors) != 7*5*4 {
		t.Errorf("expected %d color floats, got %d", 7*5*4, len(doc.Water.Colors))
	}
}

func TestPreview(t *testing.T) {
	heights := []float64{
		0, 1, 2,
		3, 4, 5,
	}
	// width 1, height 2: lattice 2x3, index = x*3 + y
	img := Preview(heights, 1, 2)

	b := img.Bounds()
	if b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("expected 2x3 image, got %dx%d", b.Dx(), b.Dy())
	}
	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("lowest point = %d, want 0", got)
	}
	if got := img.GrayAt(1, 2).Y; got != 255 {
		t.Errorf("highest point = %d, want 255", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 153 {
		t.Errorf("point (1, 0) = %d, want 153", got)
	}
}

func TestColorPreview(t *testing.T) {
	g := terrain.TwoTone(terrain.Cyan, terrain.Green)
	img := ColorPreview([]float64{0, 0, 0, 24}, 1, 1, 24, g)

	if c := img.RGBAAt(0, 0); c.R != 0 || c.G != 255 || c.B != 255 {
		t.Errorf("sea level pixel = %v, want cyan", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 0 || c.G != 255 || c.B != 0 {
		t.Errorf("peak pixel = %v, want green", c)
	}
}

func TestPreviewShortGrid(t *testing.T) {
	short := []float64{0, 1}

	gray := Preview(short, 2, 2)
	if b := gray.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("expected 3x3 image, got %dx%d", b.Dx(), b.Dy())
	}
	if got := gray.GrayAt(1, 1).Y; got != 0 {
		t.Errorf("expected a blank image, got %d at (1, 1)", got)
	}

	colored := ColorPreview(short, 2, 2, 1, terrain.DefaultLandGradient())
	if c := colored.RGBAAt(2, 2); c.A != 0 {
		t.Errorf("expected a blank image, got %v at (2, 2)", c)
	}
}

func TestWriteImage(t *testing.T) {
	w := testWorld(t)
	img := Preview(w.Heights, w.Land.Width, w.Land.Height)

	var pngBuf bytes.Buffer
	if err := WriteImage(&pngBuf, img, "png"); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	decoded, err := png.Decode(&pngBuf)
	if err != nil {
		t.Fatalf("png decode failed: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("png bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}

	var bmpBuf bytes.Buffer
	if err := WriteImage(&bmpBuf, img, "bmp"); err != nil {
		t.Fatalf("bmp encode failed: %v", err)
	}
	if _, err := bmp.Decode(&bmpBuf); err != nil {
		t.Fatalf("bmp decode failed: %v", err)
	}

	if err := WriteImage(&bytes.Buffer{}, img, "gif"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
