package terrain

import "fmt"

// FBMParams shapes the fractal synthesis.
type FBMParams struct {
	Octaves     int     // layer count, must be >= 1
	Persistence float64 // amplitude decay per octave; (0,1] keeps each octave quieter
	Lacunarity  float64 // frequency growth per octave, conventionally > 1
	Scale       float64 // base spatial frequency, must be > 0
}

// DefaultFBMParams matches the CLI preset.
func DefaultFBMParams() FBMParams {
	return FBMParams{
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Scale:       1.0 / 64.0,
	}
}

// Validate reports the first violated precondition, if any.
func (p FBMParams) Validate() error {
	if p.Octaves < 1 {
		return &ConfigError{Field: "octaves", Reason: fmt.Sprintf("must be >= 1, got %d", p.Octaves)}
	}
	if p.Scale <= 0 {
		return &ConfigError{Field: "scale", Reason: fmt.Sprintf("must be > 0, got %g", p.Scale)}
	}
	return nil
}

// Synthesizer sums frequency/amplitude-scaled octaves of a noise source
// into a single value normalized to [-1, 1].
type Synthesizer struct {
	src    Source
	params FBMParams
}

// NewSynthesizer validates params eagerly so Sample never fails afterwards.
func NewSynthesizer(src Source, params FBMParams) (*Synthesizer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{src: src, params: params}, nil
}

// Sample evaluates the octave stack at (x, y). Dividing by the accumulated
// amplitude is what keeps the result inside [-1, 1] for any octave count;
// the single-octave case divides by 1 and degenerates to the plain source.
func (s *Synthesizer) Sample(x, y float64) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := s.params.Scale
	maxAmplitude := 0.0

	for i := 0; i < s.params.Octaves; i++ {
		value += s.src.Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= s.params.Persistence
		frequency *= s.params.Lacunarity
	}
	return value / maxAmplitude
}
