// Package config handles terrain generator configuration loading and management.
package config

import "github.com/Faultbox/isoterrain/internal/terrain"

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Water   WaterConfig   `yaml:"water"`
	Noise   NoiseConfig   `yaml:"noise"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds land heightfield settings.
type TerrainConfig struct {
	Width        int              `yaml:"width"`   // Cells along x
	Height       int              `yaml:"height"`  // Cells along z
	Depth        float32          `yaml:"depth"`   // World height of a unit sample
	Octaves      int              `yaml:"octaves"` // fBm layers
	Scale        float64          `yaml:"scale"`
	FalloffScale float64          `yaml:"falloff_scale"`
	Spread       float64          `yaml:"spread"`
	Coherence    float64          `yaml:"coherence"`
	Steps        int              `yaml:"steps"` // 0 = smooth, 1 = blocky
	Parallel     bool             `yaml:"parallel"`
	Gradient     terrain.Gradient `yaml:"gradient"`
}

// WaterConfig holds water surface and wave settings.
type WaterConfig struct {
	Enabled       bool             `yaml:"enabled"`
	Depth         float32          `yaml:"depth"`
	Level         float32          `yaml:"level"`
	WaveScale     float64          `yaml:"wave_scale"`
	WaveSpeed     float64          `yaml:"wave_speed"`
	WaveAmplitude float64          `yaml:"wave_amplitude"`
	Gradient      terrain.Gradient `yaml:"gradient"`
}

// NoiseConfig holds noise backend and seed settings.
type NoiseConfig struct {
	Kind     string  `yaml:"kind"`      // perlin or simplex
	Seed     uint32  `yaml:"seed"`      // 0 picks a random seed
	SeedName string  `yaml:"seed_name"` // Hashed into a seed when Seed is 0
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

// OutputConfig holds export settings for the CLI.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Format  string `yaml:"format"`  // obj or json
	Preview string `yaml:"preview"` // png or bmp
	FPS     int    `yaml:"fps"`
	Frames  int    `yaml:"frames"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Format  string `yaml:"format"` // console or json
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Width:        256,
			Height:       256,
			Depth:        24,
			Octaves:      4,
			Scale:        20,
			FalloffScale: 1,
			Spread:       0.05,
			Coherence:    3,
			Steps:        0,
			Parallel:     true,
			Gradient:     terrain.DefaultLandGradient(),
		},
		Water: WaterConfig{
			Enabled:       true,
			Depth:         2,
			Level:         0,
			WaveScale:     5,
			WaveSpeed:     0.3,
			WaveAmplitude: 0.3,
			Gradient:      terrain.DefaultWaterGradient(),
		},
		Noise: NoiseConfig{
			Kind:    "perlin",
			Seed:    0,
			OffsetX: 100,
			OffsetY: 100,
		},
		Output: OutputConfig{
			Dir:     ".",
			Format:  "obj",
			Preview: "png",
			FPS:     30,
			Frames:  90,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Format:  "console",
		},
	}
}
