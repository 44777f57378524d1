package config

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	yaml "gopkg.in/yaml.v2"

	"terraforge/internal/biome"
	"terraforge/internal/terrain"
)

// Config is the YAML preset format consumed by the CLI. Fields left out of a
// preset file keep their default values.
type Config struct {
	Seed    int64         `yaml:"seed"`
	Noise   NoiseConfig   `yaml:"noise"`
	Grid    GridConfig    `yaml:"grid"`
	Bands   []BandConfig  `yaml:"bands,omitempty"`
	Preview PreviewConfig `yaml:"preview"`
}

// NoiseConfig shapes the fractal synthesis.
type NoiseConfig struct {
	Backend     string  `yaml:"backend"` // gradient (default) or simplex
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Scale       float64 `yaml:"scale"`
}

// GridConfig describes the sampled window.
type GridConfig struct {
	OriginX     float64 `yaml:"origin_x"`
	OriginZ     float64 `yaml:"origin_z"`
	ExtentX     float64 `yaml:"extent_x"`
	ExtentZ     float64 `yaml:"extent_z"`
	ResolutionX int     `yaml:"resolution_x"`
	ResolutionZ int     `yaml:"resolution_z"`
	HeightScale float64 `yaml:"height_scale"`
}

// BandConfig is one biome band; colors are RGB triples in [0, 1].
type BandConfig struct {
	Name  string    `yaml:"name"`
	Start float64   `yaml:"start"`
	End   float64   `yaml:"end"`
	From  []float64 `yaml:"from,flow"`
	To    []float64 `yaml:"to,flow"`
}

// PreviewConfig controls the PNG export.
type PreviewConfig struct {
	Output  string `yaml:"output"`
	Upscale int    `yaml:"upscale"`
}

// Default returns the built-in preset.
func Default() *Config {
	fbm := terrain.DefaultFBMParams()
	grid := terrain.DefaultGridSpec()
	return &Config{
		Seed: 1337,
		Noise: NoiseConfig{
			Backend:     terrain.BackendGradient,
			Octaves:     fbm.Octaves,
			Persistence: fbm.Persistence,
			Lacunarity:  fbm.Lacunarity,
			Scale:       fbm.Scale,
		},
		Grid: GridConfig{
			OriginX:     grid.OriginX,
			OriginZ:     grid.OriginZ,
			ExtentX:     grid.ExtentX,
			ExtentZ:     grid.ExtentZ,
			ResolutionX: grid.ResX,
			ResolutionZ: grid.ResZ,
			HeightScale: grid.HeightScale,
		},
		Preview: PreviewConfig{
			Output:  "terrain.png",
			Upscale: 1,
		},
	}
}

// Load reads a preset file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the preset to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FBMParams converts the noise section.
func (c *Config) FBMParams() terrain.FBMParams {
	return terrain.FBMParams{
		Octaves:     c.Noise.Octaves,
		Persistence: c.Noise.Persistence,
		Lacunarity:  c.Noise.Lacunarity,
		Scale:       c.Noise.Scale,
	}
}

// GridSpec converts the grid section.
func (c *Config) GridSpec() terrain.GridSpec {
	return terrain.GridSpec{
		OriginX:     c.Grid.OriginX,
		OriginZ:     c.Grid.OriginZ,
		ExtentX:     c.Grid.ExtentX,
		ExtentZ:     c.Grid.ExtentZ,
		ResX:        c.Grid.ResolutionX,
		ResZ:        c.Grid.ResolutionZ,
		HeightScale: c.Grid.HeightScale,
	}
}

// BiomeBands returns the configured palette, validated, or the default one
// when the preset carries no bands section.
func (c *Config) BiomeBands() ([]biome.Band, error) {
	if len(c.Bands) == 0 {
		return biome.DefaultBands(), nil
	}
	bands := make([]biome.Band, len(c.Bands))
	for i, b := range c.Bands {
		if len(b.From) != 3 || len(b.To) != 3 {
			return nil, fmt.Errorf("config: band %q: colors must be RGB triples", b.Name)
		}
		bands[i] = biome.Band{
			Name:  b.Name,
			Start: b.Start,
			End:   b.End,
			From:  mgl64.Vec3{b.From[0], b.From[1], b.From[2]},
			To:    mgl64.Vec3{b.To[0], b.To[1], b.To[2]},
		}
	}
	if err := biome.Validate(bands); err != nil {
		return nil, err
	}
	return bands, nil
}
