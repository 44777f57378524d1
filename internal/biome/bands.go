package biome

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Band maps one sub-interval of normalized height onto a color ramp. Colors
// are RGB with components in [0, 1].
type Band struct {
	Name  string
	Start float64
	End   float64
	From  mgl64.Vec3
	To    mgl64.Vec3
}

// DefaultBands is the seven-step deep-water-through-snow palette. It is a
// default, not a constant of the algorithm: Classify accepts any band list
// that passes Validate.
func DefaultBands() []Band {
	return []Band{
		{Name: "deep water", Start: 0.00, End: 0.30, From: mgl64.Vec3{0.04, 0.12, 0.35}, To: mgl64.Vec3{0.08, 0.22, 0.50}},
		{Name: "shallow water", Start: 0.30, End: 0.40, From: mgl64.Vec3{0.08, 0.22, 0.50}, To: mgl64.Vec3{0.25, 0.55, 0.75}},
		{Name: "beach", Start: 0.40, End: 0.45, From: mgl64.Vec3{0.93, 0.86, 0.58}, To: mgl64.Vec3{0.86, 0.76, 0.48}},
		{Name: "grassland", Start: 0.45, End: 0.60, From: mgl64.Vec3{0.22, 0.60, 0.20}, To: mgl64.Vec3{0.14, 0.47, 0.14}},
		{Name: "forest", Start: 0.60, End: 0.75, From: mgl64.Vec3{0.14, 0.47, 0.14}, To: mgl64.Vec3{0.07, 0.30, 0.10}},
		{Name: "rock", Start: 0.75, End: 0.90, From: mgl64.Vec3{0.44, 0.40, 0.36}, To: mgl64.Vec3{0.57, 0.55, 0.53}},
		{Name: "snow", Start: 0.90, End: 1.00, From: mgl64.Vec3{0.90, 0.91, 0.93}, To: mgl64.Vec3{1, 1, 1}},
	}
}

// Validate checks that the bands partition [0, 1] in order with no gaps and
// no overlaps.
func Validate(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("biome: band list is empty")
	}
	if bands[0].Start != 0 {
		return fmt.Errorf("biome: first band %q starts at %g, want 0", bands[0].Name, bands[0].Start)
	}
	for i, b := range bands {
		if b.End <= b.Start {
			return fmt.Errorf("biome: band %q has non-positive width [%g, %g]", b.Name, b.Start, b.End)
		}
		if i > 0 && bands[i-1].End != b.Start {
			return fmt.Errorf("biome: gap or overlap between %q and %q", bands[i-1].Name, b.Name)
		}
	}
	if last := bands[len(bands)-1]; last.End != 1 {
		return fmt.Errorf("biome: last band %q ends at %g, want 1", last.Name, last.End)
	}
	return nil
}
