package biome

import "github.com/go-gl/mathgl/mgl64"

// Normalize maps a height into [0, 1] against the observed range. A flat
// field (max == min) maps every height to 0 rather than dividing by zero.
func Normalize(height, min, max float64) float64 {
	if max == min {
		return 0
	}
	t := (height - min) / (max - min)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Classify returns the interpolated band color for a height, given the
// observed range of the field it came from. A boundary value belongs to the
// band that ends there; t=1 falls through to the last band.
func Classify(height, min, max float64, bands []Band) mgl64.Vec3 {
	t := Normalize(height, min, max)
	for i := range bands {
		b := &bands[i]
		if t <= b.End || i == len(bands)-1 {
			f := 0.0
			if w := b.End - b.Start; w > 0 {
				f = (t - b.Start) / w
			}
			return lerpColor(b.From, b.To, f)
		}
	}
	// Unreachable for a validated band list.
	return mgl64.Vec3{}
}

func lerpColor(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
