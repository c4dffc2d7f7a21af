package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/generator"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Terrain.Width = 8
	cfg.Terrain.Height = 8
	cfg.Noise.Seed = 7
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Frames = 5
	return cfg
}

func TestCmdGenerate(t *testing.T) {
	tests := []struct {
		format string
		files  []string
	}{
		{"obj", []string{"island-7-land.obj", "island-7-water.obj"}},
		{"json", []string{"island-7.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Output.Format = tt.format
			if err := cmdGenerate(generator.New(), cfg); err != nil {
				t.Fatalf("cmdGenerate failed: %v", err)
			}
			for _, name := range tt.files {
				if _, err := os.Stat(filepath.Join(cfg.Output.Dir, name)); err != nil {
					t.Errorf("expected %s: %v", name, err)
				}
			}
		})
	}

	cfg := testConfig(t)
	cfg.Output.Format = "fbx"
	if err := cmdGenerate(generator.New(), cfg); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCmdPreview(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Preview = "bmp"
	if err := cmdPreview(generator.New(), cfg); err != nil {
		t.Fatalf("cmdPreview failed: %v", err)
	}
	for _, name := range []string{"island-7-height.bmp", "island-7-color.bmp"} {
		if _, err := os.Stat(filepath.Join(cfg.Output.Dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestCmdAnimate(t *testing.T) {
	cfg := testConfig(t)
	if err := cmdAnimate(generator.New(), cfg); err != nil {
		t.Fatalf("cmdAnimate failed: %v", err)
	}

	cfg.Water.Enabled = false
	if err := cmdAnimate(generator.New(), cfg); err == nil {
		t.Error("expected error when water is disabled")
	}
}

func TestCmdConfigSave(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.Output.Dir, "saved.yaml")
	if err := cmdConfig(cfg, []string{path}); err != nil {
		t.Fatalf("cmdConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected saved config: %v", err)
	}
}

func TestStats(t *testing.T) {
	lo, hi, mean := stats([]float64{-1, 0, 4})
	if lo != -1 || hi != 4 || mean != 1 {
		t.Errorf("stats() = (%f, %f, %f), want (-1, 4, 1)", lo, hi, mean)
	}
}
