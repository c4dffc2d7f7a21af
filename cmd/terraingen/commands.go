package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/export"
	"github.com/Faultbox/isoterrain/internal/generator"
	"github.com/Faultbox/isoterrain/internal/logger"
	"github.com/Faultbox/isoterrain/internal/terrain"
)

func cmdGenerate(gen *generator.Generator, cfg *config.Config) error {
	world, err := gen.Regenerate(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	base := fmt.Sprintf("island-%d", world.Seed)
	switch cfg.Output.Format {
	case "json":
		path := filepath.Join(cfg.Output.Dir, base+".json")
		if err := writeFile(path, func(f *os.File) error { return export.WriteJSON(f, world) }); err != nil {
			return err
		}
		fmt.Printf("Wrote: %s\n", path)
	case "obj", "":
		path := filepath.Join(cfg.Output.Dir, base+"-land.obj")
		if err := writeFile(path, func(f *os.File) error { return export.WriteOBJ(f, "land", world.Land) }); err != nil {
			return err
		}
		fmt.Printf("Wrote: %s\n", path)

		if world.Water != nil {
			path = filepath.Join(cfg.Output.Dir, base+"-water.obj")
			if err := writeFile(path, func(f *os.File) error { return export.WriteOBJ(f, "water", world.Water) }); err != nil {
				return err
			}
			fmt.Printf("Wrote: %s\n", path)
		}
	default:
		return fmt.Errorf("unsupported mesh format %q", cfg.Output.Format)
	}

	fmt.Printf("Seed:      %d\n", world.Seed)
	fmt.Printf("Vertices:  %d\n", len(world.Land.Vertices))
	fmt.Printf("Triangles: %d\n", world.Land.TriangleCount())
	return nil
}

func cmdPreview(gen *generator.Generator, cfg *config.Config) error {
	world, err := gen.Regenerate(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	ext := cfg.Output.Preview
	if ext == "" {
		ext = "png"
	}
	base := filepath.Join(cfg.Output.Dir, fmt.Sprintf("island-%d", world.Seed))

	w, h := cfg.Terrain.Width, cfg.Terrain.Height
	gray := export.Preview(world.Heights, w, h)
	// Water stops cover the negative range, land stops the positive one.
	gradient := make(terrain.Gradient, 0, len(cfg.Water.Gradient)+len(cfg.Terrain.Gradient))
	gradient = append(gradient, cfg.Water.Gradient...)
	gradient = append(gradient, cfg.Terrain.Gradient...)
	colored := export.ColorPreview(world.Heights, w, h, 1, gradient)

	grayPath := base + "-height." + ext
	if err := writeFile(grayPath, func(f *os.File) error { return export.WriteImage(f, gray, ext) }); err != nil {
		return err
	}
	fmt.Printf("Wrote: %s\n", grayPath)

	colorPath := base + "-color." + ext
	if err := writeFile(colorPath, func(f *os.File) error { return export.WriteImage(f, colored, ext) }); err != nil {
		return err
	}
	fmt.Printf("Wrote: %s\n", colorPath)
	return nil
}

func cmdAnimate(gen *generator.Generator, cfg *config.Config) error {
	if _, err := gen.Regenerate(cfg); err != nil {
		return err
	}

	fps := cfg.Output.FPS
	if fps <= 0 {
		fps = 30
	}
	frames := cfg.Output.Frames

	log := logger.Named("animate")
	for frame := 0; frame < frames; frame++ {
		elapsed := float64(frame) / float64(fps)
		heights := gen.Tick(elapsed)
		if heights == nil {
			return fmt.Errorf("nothing to animate: water or waves are disabled")
		}

		lo, hi, mean := stats(heights)
		log.Debug("frame",
			zap.Int("frame", frame),
			zap.Float64("elapsed", elapsed),
			zap.Float64("min", lo),
			zap.Float64("max", hi),
			zap.Float64("mean", mean),
		)
	}

	fmt.Printf("Animated %d frames at %d fps\n", frames, fps)
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Saved: %s\n", args[0])
		return nil
	}

	data, err := cfg.Marshal(false)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func stats(values []float64) (lo, hi, mean float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(values))
}
