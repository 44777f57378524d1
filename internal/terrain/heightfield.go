package terrain

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"

	"terraforge/internal/profiling"
)

// GridSpec describes the world-space window and resolution of a height
// field build.
type GridSpec struct {
	OriginX, OriginZ float64
	ExtentX, ExtentZ float64
	ResX, ResZ       int

	// HeightScale multiplies every sample before storage. Zero produces a
	// flat field, which is a valid output, not an error.
	HeightScale float64
}

// DefaultGridSpec matches the CLI preset.
func DefaultGridSpec() GridSpec {
	return GridSpec{
		ExtentX:     256,
		ExtentZ:     256,
		ResX:        256,
		ResZ:        256,
		HeightScale: 24,
	}
}

// Validate reports the first violated precondition, if any. Two samples per
// axis is the minimum for a meaningful field.
func (s GridSpec) Validate() error {
	if s.ResX < 2 {
		return &ConfigError{Field: "resolutionX", Reason: fmt.Sprintf("must be >= 2, got %d", s.ResX)}
	}
	if s.ResZ < 2 {
		return &ConfigError{Field: "resolutionZ", Reason: fmt.Sprintf("must be >= 2, got %d", s.ResZ)}
	}
	return nil
}

// HeightField is an immutable snapshot of sampled heights in raster order,
// together with the true observed extrema of the sampled set. A parameter
// change produces a fresh field; an existing one is never patched.
type HeightField struct {
	Width, Depth int
	Heights      []float64
	Min, Max     float64
}

// At returns the height at (col, row).
func (h *HeightField) At(col, row int) float64 {
	return h.Heights[row*h.Width+col]
}

// Generator owns the gradient table for one seed and builds height fields
// from it. The table is built once, at construction, and shared read-only.
type Generator struct {
	seed  int64
	table *GradientTable
}

// NewGenerator builds the gradient table for seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed, table: NewGradientTable(seed)}
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// Source returns the native gradient noise bound to this generator's table.
func (g *Generator) Source() Source {
	return NewNoiseField(g.table)
}

// BuildHeightField samples the fractal stack over the grid.
func (g *Generator) BuildHeightField(spec GridSpec, params FBMParams) (*HeightField, error) {
	return BuildHeightFieldFrom(g.Source(), spec, params)
}

// BuildHeightFieldFrom samples src over the grid described by spec. Every
// cell is independent of every other, so rows fan out across the parallel
// executor; the extrema scan afterwards is a plain reduction over the
// finished array.
func BuildHeightFieldFrom(src Source, spec GridSpec, params FBMParams) (*HeightField, error) {
	defer profiling.Track("terrain.BuildHeightField")()

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	synth, err := NewSynthesizer(src, params)
	if err != nil {
		return nil, err
	}

	hf := &HeightField{
		Width:   spec.ResX,
		Depth:   spec.ResZ,
		Heights: make([]float64, spec.ResX*spec.ResZ),
	}
	stepX := spec.ExtentX / float64(spec.ResX-1)
	stepZ := spec.ExtentZ / float64(spec.ResZ-1)

	parallel.For(spec.ResZ, func(row, _ int) {
		z := spec.OriginZ + float64(row)*stepZ
		base := row * spec.ResX
		for col := 0; col < spec.ResX; col++ {
			x := spec.OriginX + float64(col)*stepX
			hf.Heights[base+col] = synth.Sample(x, z) * spec.HeightScale
		}
	})

	hf.Min = math.Inf(1)
	hf.Max = math.Inf(-1)
	for _, v := range hf.Heights {
		hf.Min = math.Min(hf.Min, v)
		hf.Max = math.Max(hf.Max, v)
	}
	return hf, nil
}
