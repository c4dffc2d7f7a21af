package config

import (
	"flag"
	"fmt"
	"math"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSeed     = flag.Uint64("seed", 0, "Noise seed, 1 to 4294967295 (0 = random)")
	flagSeedName = flag.String("seed-name", "", "Derive the seed from a name")
	flagWidth    = flag.Int("width", 0, "Grid width in cells")
	flagHeight   = flag.Int("height", 0, "Grid height in cells")
	flagOctaves  = flag.Int("octaves", 0, "Noise octaves")
	flagNoise    = flag.String("noise", "", "Noise backend (perlin, simplex)")
	flagOut      = flag.String("out", "", "Output directory")
	flagFormat   = flag.String("format", "", "Mesh export format (obj, json)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
// A seed that does not fit in 32 bits is rejected rather than truncated.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed > math.MaxUint32 {
		return fmt.Errorf("seed %d out of range (max %d)", *flagSeed, uint64(math.MaxUint32))
	}
	if *flagSeed > 0 {
		cfg.Noise.Seed = uint32(*flagSeed)
	}
	if *flagSeedName != "" {
		cfg.Noise.SeedName = *flagSeedName
	}
	if *flagWidth > 0 {
		cfg.Terrain.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Terrain.Height = *flagHeight
	}
	if *flagOctaves > 0 {
		cfg.Terrain.Octaves = *flagOctaves
	}
	if *flagNoise != "" {
		cfg.Noise.Kind = *flagNoise
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	return nil
}
