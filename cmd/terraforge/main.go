package main

import (
	"flag"
	"os"

	"terraforge/internal/config"
	"terraforge/internal/logger"
	"terraforge/internal/profiling"
	"terraforge/internal/render"
	"terraforge/internal/terrain"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML preset to load; defaults apply when empty")
		seed       = flag.Int64("seed", 0, "override the preset seed (0 keeps the preset value)")
		out        = flag.String("out", "", "override the preview output path")
		logLevel   = flag.String("log", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log := logger.New(*logLevel)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *out != "" {
		cfg.Preview.Output = *out
	}

	bands, err := cfg.BiomeBands()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	src, err := terrain.NewSource(cfg.Noise.Backend, cfg.Seed)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	log.Infof("building %dx%d height field (seed=%d backend=%s octaves=%d)",
		cfg.Grid.ResolutionX, cfg.Grid.ResolutionZ, cfg.Seed, cfg.Noise.Backend, cfg.Noise.Octaves)

	hf, err := terrain.BuildHeightFieldFrom(src, cfg.GridSpec(), cfg.FBMParams())
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("height range [%.3f, %.3f]", hf.Min, hf.Max)

	if err := render.WritePNG(cfg.Preview.Output, hf, bands, cfg.Preview.Upscale); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("wrote %s", cfg.Preview.Output)
	log.Debugf("timings: %s", profiling.Summary())
}
