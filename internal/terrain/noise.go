package terrain

import "math"

// NoiseField evaluates smoothed 2D gradient noise against a shared gradient
// table. It holds no mutable state; Evaluate is safe to call concurrently.
type NoiseField struct {
	table *GradientTable
}

// NewNoiseField binds an evaluation function to a gradient table.
func NewNoiseField(table *GradientTable) NoiseField {
	return NoiseField{table: table}
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at t=0 and t=1, which is what keeps lattice cell
// boundaries invisible.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad picks one of four diagonal gradients from the low two bits of a
// corner hash and returns its dot product with (x, y). Bit 1 swaps which
// axis leads and negates the trailing term; bit 0 negates the leading one.
func grad(hash int, x, y float64) float64 {
	u, v := x, y
	if hash&2 != 0 {
		u, v = y, -x
	}
	if hash&1 != 0 {
		u = -u
	}
	return u + v
}

// Evaluate returns the noise value at (x, y). Cell selection uses the floor,
// not truncation, so the field stays continuous across the zero boundary.
// The output is naturally bounded inside [-1, 1]; nothing is clamped.
func (f NoiseField) Evaluate(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	dx := x - fx
	dy := y - fy

	u := fade(dx)
	v := fade(dy)

	p := &f.table.perm
	aa := p[p[xi]+yi]
	ab := p[p[xi]+yi+1]
	ba := p[p[xi+1]+yi]
	bb := p[p[xi+1]+yi+1]

	x0 := lerp(grad(aa, dx, dy), grad(ba, dx-1, dy), u)
	x1 := lerp(grad(ab, dx, dy-1), grad(bb, dx-1, dy-1), u)
	return lerp(x0, x1, v)
}

// Eval2 satisfies Source.
func (f NoiseField) Eval2(x, y float64) float64 {
	return f.Evaluate(x, y)
}
