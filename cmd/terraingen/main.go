// terraingen is a CLI for generating island terrain meshes and previews.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/isoterrain/internal/config"
	"github.com/Faultbox/isoterrain/internal/generator"
	"github.com/Faultbox/isoterrain/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	gen := generator.New(generator.WithLogger(logger.Named("generator")))

	command := args[0]
	switch command {
	case "generate", "gen":
		err = cmdGenerate(gen, cfg)
	case "preview":
		err = cmdPreview(gen, cfg)
	case "animate":
		err = cmdAnimate(gen, cfg)
	case "config":
		err = cmdConfig(cfg, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraingen - procedural island terrain generator

Usage:
  terraingen [flags] <command> [args]

Commands:
  generate              Build land and water meshes and export them (obj or json)
  preview               Write heightmap previews (png or bmp)
  animate               Run the water animation headless and report wave stats
  config [file]         Print the effective config, or save it to file (.yaml or .toml)

Flags:
  -config <file>        Config file (default: ./terrain.yaml or user config dir)
  -seed <n>             Noise seed, 0 picks one at random
  -seed-name <name>     Derive the seed from a name
  -width, -height <n>   Grid size in cells
  -octaves <n>          Noise octaves
  -noise <kind>         perlin or simplex
  -out <dir>            Output directory
  -format <fmt>         Mesh format: obj or json
  -debug                Debug logging

Examples:
  terraingen -seed 42 generate
  terraingen -seed-name archipelago -width 128 -height 128 preview
  terraingen config ./terrain.toml`)
}
